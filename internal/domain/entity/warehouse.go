package entity

// Warehouse representa una bodega. Datos de referencia de solo lectura:
// no existen operaciones de ciclo de vida más allá del seed inicial.
type Warehouse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
