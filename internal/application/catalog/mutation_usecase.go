package catalog

import (
	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain"
	"github.com/kmehta/stockview/internal/domain/entity"
	"github.com/kmehta/stockview/internal/domain/repository"
)

// MutationUseCase aplica las dos mutaciones del catálogo sobre el store.
type MutationUseCase struct {
	products repository.ProductRepository
}

// NewMutationUseCase construye el caso de uso.
func NewMutationUseCase(products repository.ProductRepository) *MutationUseCase {
	return &MutationUseCase{products: products}
}

// UpdateDemand sobreescribe la demanda del producto y devuelve el registro
// actualizado. Sin validación de rango: valores negativos se aceptan tal cual
// (comportamiento permisivo heredado, cubierto por test).
func (uc *MutationUseCase) UpdateDemand(id string, demand int) (*entity.Product, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	p.Demand = demand
	if err := uc.products.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// TransferStock mueve qty unidades del producto de la bodega origen a la
// destino. La fila se reubica: cambia Warehouse y se descuenta Stock, no se
// crea un registro en la bodega destino. Es una simplificación deliberada
// frente a inventario multi-ubicación real.
//
// Orden de verificación: producto existente, bodega origen correcta,
// stock suficiente.
func (uc *MutationUseCase) TransferStock(req dto.TransferRequest) (*entity.Product, error) {
	p, err := uc.products.GetByID(req.ID)
	if err != nil {
		return nil, err
	}
	if p.Warehouse != req.From {
		return nil, domain.ErrInvalidState
	}
	if req.Qty > p.Stock {
		return nil, domain.ErrInsufficientStock
	}

	p.Warehouse = req.To
	p.Stock -= req.Qty
	if err := uc.products.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
