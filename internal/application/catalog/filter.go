package catalog

import (
	"strings"

	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// Filter aplica los tres filtros (bodega, búsqueda, status) con semántica AND
// y preserva el orden relativo de entrada. Es la misma pasada que usa el
// resolver del catálogo y la tabla del dashboard: una sola implementación
// para que ambos lados no diverjan.
func Filter(products []entity.Product, f dto.ProductFilter) []entity.Product {
	if f.IsZero() {
		return append([]entity.Product(nil), products...)
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// Matches evalúa un producto contra el filtro.
func Matches(p entity.Product, f dto.ProductFilter) bool {
	if f.Warehouse != "" && f.Warehouse != dto.FilterAll && p.Warehouse != f.Warehouse {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	// Un status que no es ninguno de los tres conocidos no filtra nada
	// (incluye "" y "all"); solo los valores válidos activan la dimensión.
	if st := entity.Status(f.Status); st.Valid() && p.Status() != st {
		return false
	}
	return true
}

// matchesSearch substring case-insensitive sobre name, sku o id (basta uno).
func matchesSearch(p entity.Product, search string) bool {
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.SKU), q) ||
		strings.Contains(strings.ToLower(p.ID), q)
}
