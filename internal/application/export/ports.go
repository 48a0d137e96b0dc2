package export

import (
	"context"

	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// ReportGenerator puerto para la representación PDF del reporte de
// inventario. Implementado en infrastructure/pdf con Maroto.
type ReportGenerator interface {
	GenerateInventoryReport(
		ctx context.Context,
		products []entity.Product,
		summary dto.DashboardSummaryDTO,
	) ([]byte, error)
}
