package dto

import "github.com/kmehta/stockview/internal/domain/entity"

// DashboardSummaryDTO KPIs agregados del dashboard, derivados siempre de la
// lista completa de productos (no de la lista filtrada del servidor).
type DashboardSummaryDTO struct {
	TotalStock  int     `json:"total_stock"`
	TotalDemand int     `json:"total_demand"`
	FillRate    float64 `json:"fill_rate"` // % de demanda cubierta; 0 si no hay demanda

	// Conteos por estado derivado; siempre suman el total de productos.
	HealthyCount  int `json:"healthy_count"`
	LowCount      int `json:"low_count"`
	CriticalCount int `json:"critical_count"`
}

// WarehouseStatsDTO resumen de una bodega para el widget de overview.
type WarehouseStatsDTO struct {
	entity.Warehouse

	ProductCount    int     `json:"product_count"`
	TotalStock      int     `json:"total_stock"`
	TotalDemand     int     `json:"total_demand"`
	CriticalCount   int     `json:"critical_count"`
	UtilizationRate float64 `json:"utilization_rate"` // stock/demanda * 100; 0 si no hay demanda
}
