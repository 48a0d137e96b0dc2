package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmehta/stockview/internal/domain"
	"github.com/kmehta/stockview/internal/infrastructure/memory"
)

func TestStore_ListaEnOrdenDeSeed(t *testing.T) {
	store := memory.NewSeededStore()

	products, err := store.Products().List()
	require.NoError(t, err)
	require.Len(t, products, 4)

	ids := []string{products[0].ID, products[1].ID, products[2].ID, products[3].ID}
	assert.Equal(t, []string{"P-1001", "P-1002", "P-1003", "P-1004"}, ids)

	warehouses, err := store.Warehouses().List()
	require.NoError(t, err)
	require.Len(t, warehouses, 3)
	assert.Equal(t, "BLR-A", warehouses[0].Code)
}

func TestStore_GetByIDDevuelveCopia(t *testing.T) {
	store := memory.NewSeededStore()
	repo := store.Products()

	p, err := repo.GetByID("P-1001")
	require.NoError(t, err)

	// Mutar la copia no debe tocar el store hasta llamar a Update.
	p.Stock = 0
	again, err := repo.GetByID("P-1001")
	require.NoError(t, err)
	assert.Equal(t, 180, again.Stock)
}

func TestStore_GetByIDNoEncontrado(t *testing.T) {
	store := memory.NewSeededStore()

	_, err := store.Products().GetByID("P-9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_UpdatePersisteYConservaOrden(t *testing.T) {
	store := memory.NewSeededStore()
	repo := store.Products()

	p, err := repo.GetByID("P-1002")
	require.NoError(t, err)
	p.Demand = 999
	require.NoError(t, repo.Update(p))

	products, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, "P-1002", products[1].ID) // misma posición
	assert.Equal(t, 999, products[1].Demand)
}

func TestStore_UpdateDesconocido(t *testing.T) {
	store := memory.NewSeededStore()

	p, err := store.Products().GetByID("P-1001")
	require.NoError(t, err)
	p.ID = "P-0000"
	assert.ErrorIs(t, store.Products().Update(p), domain.ErrNotFound)
}
