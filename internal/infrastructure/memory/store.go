// Package memory implementa los repositorios del catálogo sobre un store en
// proceso. No hay persistencia: los datos se siembran al construir el store y
// se pierden al reiniciar. El manejo de peticiones es de un solo hilo, por lo
// que no hay sincronización.
package memory

import (
	"github.com/kmehta/stockview/internal/domain"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// Store es el dueño del estado del catálogo: un map id -> Product más un
// slice de ids que preserva el orden de inserción (los listados deben salir
// en orden de seed), y la lista fija de bodegas.
type Store struct {
	products   map[string]*entity.Product
	order      []string
	warehouses []entity.Warehouse
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{products: make(map[string]*entity.Product)}
}

// NewSeededStore construye el store con los datos de demostración.
func NewSeededStore() *Store {
	s := NewStore()
	s.Seed(SeedWarehouses(), SeedProducts())
	return s
}

// Seed carga bodegas y productos. Los productos se insertan en el orden dado.
func (s *Store) Seed(warehouses []entity.Warehouse, products []entity.Product) {
	s.warehouses = append(s.warehouses, warehouses...)
	for i := range products {
		p := products[i]
		if _, ok := s.products[p.ID]; ok {
			continue
		}
		s.products[p.ID] = &p
		s.order = append(s.order, p.ID)
	}
}

// Products devuelve el repositorio de productos respaldado por este store.
func (s *Store) Products() *ProductRepository { return &ProductRepository{store: s} }

// Warehouses devuelve el repositorio de bodegas respaldado por este store.
func (s *Store) Warehouses() *WarehouseRepository { return &WarehouseRepository{store: s} }

// ProductRepository implementa repository.ProductRepository en memoria.
type ProductRepository struct {
	store *Store
}

// List devuelve copias de todos los productos en orden de inserción.
func (r *ProductRepository) List() ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.store.order))
	for _, id := range r.store.order {
		out = append(out, *r.store.products[id])
	}
	return out, nil
}

// GetByID devuelve una copia del producto o domain.ErrNotFound.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Update sobreescribe el registro completo. El ID no cambia nunca, así que la
// posición en el orden de inserción se conserva.
func (r *ProductRepository) Update(product *entity.Product) error {
	p, ok := r.store.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	*p = *product
	return nil
}

// WarehouseRepository implementa repository.WarehouseRepository en memoria.
type WarehouseRepository struct {
	store *Store
}

// List devuelve las bodegas en orden de inserción.
func (r *WarehouseRepository) List() ([]entity.Warehouse, error) {
	out := make([]entity.Warehouse, len(r.store.warehouses))
	copy(out, r.store.warehouses)
	return out, nil
}
