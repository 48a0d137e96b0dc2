package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmehta/stockview/internal/domain/entity"
)

// El estado es una función total y excluyente de (stock, demand): para todo
// par aplica exactamente una de las tres clasificaciones.
func TestStatusOf_ParticionExhaustiva(t *testing.T) {
	cases := []struct {
		name          string
		stock, demand int
		want          entity.Status
	}{
		{"stock mayor que demanda", 180, 120, entity.StatusHealthy},
		{"stock igual a demanda", 80, 80, entity.StatusLow},
		{"stock menor que demanda", 24, 120, entity.StatusCritical},
		{"ambos cero", 0, 0, entity.StatusLow},
		{"demanda negativa", 10, -5, entity.StatusHealthy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.StatusOf(tc.stock, tc.demand))
		})
	}
}

func TestProduct_StatusDerivado(t *testing.T) {
	p := entity.Product{ID: "P-1002", Stock: 50, Demand: 80}
	assert.Equal(t, entity.StatusCritical, p.Status())

	// No hay campo almacenado: al mutar stock el estado cambia solo.
	p.Stock = 80
	assert.Equal(t, entity.StatusLow, p.Status())
	p.Stock = 81
	assert.Equal(t, entity.StatusHealthy, p.Status())
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Healthy", entity.StatusHealthy.Label())
	assert.Equal(t, "Low", entity.StatusLow.Label())
	assert.Equal(t, "Critical", entity.StatusCritical.Label())
}
