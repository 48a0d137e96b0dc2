package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmehta/stockview/internal/application/dto"
)

func TestProductFilter_IsZero(t *testing.T) {
	cases := []struct {
		name   string
		filter dto.ProductFilter
		want   bool
	}{
		{"vacío", dto.ProductFilter{}, true},
		{"centinelas all", dto.ProductFilter{Status: dto.FilterAll, Warehouse: dto.FilterAll}, true},
		{"búsqueda activa", dto.ProductFilter{Search: "hex"}, false},
		{"status activo", dto.ProductFilter{Status: "critical"}, false},
		{"bodega activa", dto.ProductFilter{Warehouse: "BLR-A"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.IsZero())
		})
	}
}
