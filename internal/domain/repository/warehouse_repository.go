package repository

import "github.com/kmehta/stockview/internal/domain/entity"

// WarehouseRepository define el puerto de acceso a bodegas (DIP).
// Solo lectura: las bodegas son datos de referencia fijos.
type WarehouseRepository interface {
	List() ([]entity.Warehouse, error)
}
