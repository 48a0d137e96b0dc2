package dto

// FilterAll valor centinela que desactiva un filtro de status o bodega.
const FilterAll = "all"

// ProductFilter criterios de listado de productos. Los tres componen con AND;
// el string vacío (o "all" para Status/Warehouse) desactiva la dimensión.
type ProductFilter struct {
	Search    string // substring case-insensitive sobre name, sku o id (OR)
	Status    string // healthy | low | critical | all
	Warehouse string // código exacto de bodega | all
}

// IsZero true si ningún filtro está activo.
func (f ProductFilter) IsZero() bool {
	return f.Search == "" &&
		(f.Status == "" || f.Status == FilterAll) &&
		(f.Warehouse == "" || f.Warehouse == FilterAll)
}

// Rangos de la serie de KPIs.
const (
	KPIRange7d  = "7d"
	KPIRange14d = "14d"
	KPIRange30d = "30d"
)

// RangeDays traduce el rango pedido a días. Cualquier valor desconocido cae
// en 30 días, igual que el comportamiento original del servicio.
func RangeDays(r string) int {
	switch r {
	case KPIRange7d:
		return 7
	case KPIRange14d:
		return 14
	default:
		return 30
	}
}

// TransferRequest parámetros de la mutación transferStock.
type TransferRequest struct {
	ID   string
	From string
	To   string
	Qty  int
}
