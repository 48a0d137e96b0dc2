package entity

// KPISample un punto de la serie de KPIs: fecha (granularidad día) más los
// agregados de stock y demanda de ese día. La serie es sintética: se fabrica
// a partir de los totales actuales, no es un histórico real.
type KPISample struct {
	Date   string `json:"date"` // formato YYYY-MM-DD
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}
