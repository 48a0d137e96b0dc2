// Package export serializa la selección actual de productos de la tabla en
// CSV, JSON o PDF (acciones masivas del dashboard).
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/kmehta/stockview/internal/application/analytics"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// csvHeader columnas del export tabular, en este orden.
var csvHeader = []string{"ID", "Name", "SKU", "Warehouse", "Stock", "Demand", "Status"}

// UseCase genera los distintos formatos de exportación.
type UseCase struct {
	pdf ReportGenerator
}

// NewUseCase construye el caso de uso. pdf puede ser nil si el formato PDF
// no se ofrece (p. ej. en tests de los formatos planos).
func NewUseCase(pdf ReportGenerator) *UseCase {
	return &UseCase{pdf: pdf}
}

// row representación plana de un producto para CSV/JSON, con el estado ya
// derivado y etiquetado.
type row struct {
	ID        string `json:"ID"`
	Name      string `json:"Name"`
	SKU       string `json:"SKU"`
	Warehouse string `json:"Warehouse"`
	Stock     int    `json:"Stock"`
	Demand    int    `json:"Demand"`
	Status    string `json:"Status"`
}

func toRow(p entity.Product) row {
	return row{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    p.Status().Label(),
	}
}

// CSV devuelve los productos como CSV con fila de cabecera.
func (uc *UseCase) CSV(products []entity.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, p := range products {
		r := toRow(p)
		record := []string{
			r.ID, r.Name, r.SKU, r.Warehouse,
			strconv.Itoa(r.Stock), strconv.Itoa(r.Demand), r.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON devuelve los productos como JSON indentado.
func (uc *UseCase) JSON(products []entity.Product) ([]byte, error) {
	rows := make([]row, 0, len(products))
	for _, p := range products {
		rows = append(rows, toRow(p))
	}
	return json.MarshalIndent(rows, "", "  ")
}

// PDF genera el reporte de inventario con el resumen agregado de la selección.
func (uc *UseCase) PDF(ctx context.Context, products []entity.Product) ([]byte, error) {
	return uc.pdf.GenerateInventoryReport(ctx, products, analytics.Summarize(products))
}
