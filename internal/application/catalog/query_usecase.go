package catalog

import (
	"time"

	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain/entity"
	"github.com/kmehta/stockview/internal/domain/repository"
)

// QueryUseCase resuelve las consultas de lectura del catálogo: productos
// filtrados, bodegas y la serie sintética de KPIs.
type QueryUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	jitter     JitterSource
	now        func() time.Time
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	jitter JitterSource,
) *QueryUseCase {
	return &QueryUseCase{
		products:   products,
		warehouses: warehouses,
		jitter:     jitter,
		now:        time.Now,
	}
}

// ListProducts lista productos aplicando el filtro. Sin orden ni paginación
// del lado del servidor: el resultado sale en orden de inserción post-filtro.
func (uc *QueryUseCase) ListProducts(filter dto.ProductFilter) ([]entity.Product, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return Filter(products, filter), nil
}

// ListWarehouses devuelve la lista completa de bodegas, sin filtrar.
func (uc *QueryUseCase) ListWarehouses() ([]entity.Warehouse, error) {
	return uc.warehouses.List()
}

// ListKPIs fabrica la serie de KPIs del rango pedido: una muestra por día
// terminando hoy, de la más antigua a la más reciente. Cada muestra son los
// totales actuales con una variación de ±10% tomada de la fuente inyectada;
// la serie no es un histórico y no es reproducible con la fuente aleatoria.
func (uc *QueryUseCase) ListKPIs(rangeKey string) ([]entity.KPISample, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	var totalStock, totalDemand int
	for _, p := range products {
		totalStock += p.Stock
		totalDemand += p.Demand
	}

	days := dto.RangeDays(rangeKey)
	today := uc.now()
	samples := make([]entity.KPISample, 0, days)
	for i := days - 1; i >= 0; i-- {
		variation := uc.jitter.Jitter()
		samples = append(samples, entity.KPISample{
			Date:   today.AddDate(0, 0, -i).Format("2006-01-02"),
			Stock:  int(float64(totalStock) * (1 + variation)),
			Demand: int(float64(totalDemand) * (1 + variation)),
		})
	}
	return samples, nil
}
