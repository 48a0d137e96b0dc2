package repository

import "github.com/kmehta/stockview/internal/domain/entity"

// ProductRepository define el puerto de acceso al catálogo de productos (DIP).
// List devuelve copias en orden de inserción; GetByID devuelve una copia y
// Update escribe el registro completo de vuelta por ID.
type ProductRepository interface {
	List() ([]entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
}
