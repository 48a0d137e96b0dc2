package entity

// Status clasificación derivada de un producto según stock vs demanda.
// Nunca se persiste: se calcula siempre a partir de (stock, demand).
type Status string

const (
	StatusHealthy  Status = "healthy"  // stock > demand
	StatusLow      Status = "low"      // stock == demand
	StatusCritical Status = "critical" // stock < demand
)

// Valid indica si s es uno de los tres estados conocidos.
func (s Status) Valid() bool {
	switch s {
	case StatusHealthy, StatusLow, StatusCritical:
		return true
	}
	return false
}

// Label devuelve la etiqueta legible del estado (para reportes y exportaciones).
func (s Status) Label() string {
	switch s {
	case StatusHealthy:
		return "Healthy"
	case StatusLow:
		return "Low"
	case StatusCritical:
		return "Critical"
	}
	return string(s)
}

// StatusOf es la única derivación de estado del sistema; servidor y cliente
// comparten esta función en lugar de repetir la comparación en cada vista.
func StatusOf(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// Product representa un SKU del catálogo con su posición de inventario.
// Warehouse referencia a Warehouse.Code; Stock y Demand son las únicas
// propiedades que mutan después del seed.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"` // código de catálogo; no se garantiza único
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
}

// Status devuelve la clasificación derivada del producto.
func (p Product) Status() Status {
	return StatusOf(p.Stock, p.Demand)
}
