// Package analytics deriva los KPIs agregados del dashboard a partir de la
// lista de productos que el cliente ya trajo del catálogo. Son funciones
// puras: no consultan repositorios ni dependen del filtrado del servidor.
package analytics

import (
	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// Summarize calcula los KPIs de cabecera del dashboard.
//
// FillRate = Σ min(stock, demand) / Σ demand × 100. El min por producto acota
// el numerador, así que el resultado queda siempre en [0, 100]; con demanda
// total cero se define como 0.
func Summarize(products []entity.Product) dto.DashboardSummaryDTO {
	var s dto.DashboardSummaryDTO
	var fulfilled int

	for _, p := range products {
		s.TotalStock += p.Stock
		s.TotalDemand += p.Demand
		fulfilled += min(p.Stock, p.Demand)

		switch p.Status() {
		case entity.StatusHealthy:
			s.HealthyCount++
		case entity.StatusLow:
			s.LowCount++
		case entity.StatusCritical:
			s.CriticalCount++
		}
	}

	if s.TotalDemand > 0 {
		s.FillRate = float64(fulfilled) / float64(s.TotalDemand) * 100
	}
	return s
}

// OverviewByWarehouse agrega por bodega: número de productos, totales,
// críticos y tasa de utilización (stock sobre demanda). Las bodegas salen en
// el mismo orden de entrada, con stats en cero si no tienen productos.
func OverviewByWarehouse(warehouses []entity.Warehouse, products []entity.Product) []dto.WarehouseStatsDTO {
	out := make([]dto.WarehouseStatsDTO, 0, len(warehouses))
	for _, w := range warehouses {
		stats := dto.WarehouseStatsDTO{Warehouse: w}
		for _, p := range products {
			if p.Warehouse != w.Code {
				continue
			}
			stats.ProductCount++
			stats.TotalStock += p.Stock
			stats.TotalDemand += p.Demand
			if p.Status() == entity.StatusCritical {
				stats.CriticalCount++
			}
		}
		if stats.TotalDemand > 0 {
			stats.UtilizationRate = float64(stats.TotalStock) / float64(stats.TotalDemand) * 100
		}
		out = append(out, stats)
	}
	return out
}
