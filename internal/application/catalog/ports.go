package catalog

import (
	"math/rand"
	"time"
)

// JitterSource puerto para la variación aleatoria de la serie de KPIs.
// Inyectable para que los tests puedan fijar la secuencia; en producción se
// usa la fuente pseudoaleatoria estándar.
type JitterSource interface {
	// Jitter devuelve la variación relativa de una muestra, en [-0.10, 0.10).
	Jitter() float64
}

// randomJitter implementación de producción sobre math/rand.
type randomJitter struct {
	rnd *rand.Rand
}

// NewRandomJitter construye la fuente aleatoria, sembrada con el reloj.
func NewRandomJitter() JitterSource {
	return &randomJitter{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (j *randomJitter) Jitter() float64 {
	return j.rnd.Float64()*0.2 - 0.1
}

// FixedJitter fuente determinista: repite en ciclo los valores dados.
// Pensada para tests; con un solo valor la serie es completamente plana.
type FixedJitter struct {
	Values []float64
	next   int
}

func (j *FixedJitter) Jitter() float64 {
	if len(j.Values) == 0 {
		return 0
	}
	v := j.Values[j.next%len(j.Values)]
	j.next++
	return v
}
