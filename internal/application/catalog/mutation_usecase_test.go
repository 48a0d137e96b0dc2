package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmehta/stockview/internal/application/catalog"
	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain"
	"github.com/kmehta/stockview/internal/infrastructure/memory"
)

func newMutationUC() (*catalog.MutationUseCase, *memory.Store) {
	store := memory.NewSeededStore()
	return catalog.NewMutationUseCase(store.Products()), store
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateDemand
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDemand_SobreescribeYPersiste(t *testing.T) {
	uc, store := newMutationUC()

	p, err := uc.UpdateDemand("P-1001", 200)
	require.NoError(t, err)
	assert.Equal(t, 200, p.Demand)
	assert.Equal(t, 180, p.Stock) // el stock no se toca

	stored, err := store.Products().GetByID("P-1001")
	require.NoError(t, err)
	assert.Equal(t, 200, stored.Demand)
}

func TestUpdateDemand_ProductoDesconocido(t *testing.T) {
	uc, _ := newMutationUC()

	_, err := uc.UpdateDemand("P-9999", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Comportamiento permisivo heredado: la demanda negativa se acepta y se
// guarda tal cual. Documentado como posible hueco de validación.
func TestUpdateDemand_NegativaSeAceptaTalCual(t *testing.T) {
	uc, store := newMutationUC()

	p, err := uc.UpdateDemand("P-1003", -40)
	require.NoError(t, err)
	assert.Equal(t, -40, p.Demand)

	stored, err := store.Products().GetByID("P-1003")
	require.NoError(t, err)
	assert.Equal(t, -40, stored.Demand)
}

// ──────────────────────────────────────────────────────────────────────────────
// TransferStock
// ──────────────────────────────────────────────────────────────────────────────

// Caso del contrato: transferir 50 de P-1001 (BLR-A, stock 180) a DEL-B deja
// {warehouse: DEL-B, stock: 130}; repetir con from=BLR-A falla porque la fila
// ya no está en esa bodega.
func TestTransferStock_ReubicaLaFilaYLuegoInvalidState(t *testing.T) {
	uc, _ := newMutationUC()

	p, err := uc.TransferStock(dto.TransferRequest{ID: "P-1001", From: "BLR-A", To: "DEL-B", Qty: 50})
	require.NoError(t, err)
	assert.Equal(t, "DEL-B", p.Warehouse)
	assert.Equal(t, 130, p.Stock)

	_, err = uc.TransferStock(dto.TransferRequest{ID: "P-1001", From: "BLR-A", To: "PNQ-C", Qty: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestTransferStock_ProductoDesconocido(t *testing.T) {
	uc, _ := newMutationUC()

	_, err := uc.TransferStock(dto.TransferRequest{ID: "P-9999", From: "BLR-A", To: "DEL-B", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransferStock_StockInsuficiente(t *testing.T) {
	uc, store := newMutationUC()

	_, err := uc.TransferStock(dto.TransferRequest{ID: "P-1004", From: "DEL-B", To: "BLR-A", Qty: 25})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La fila no se tocó.
	stored, err := store.Products().GetByID("P-1004")
	require.NoError(t, err)
	assert.Equal(t, "DEL-B", stored.Warehouse)
	assert.Equal(t, 24, stored.Stock)
}

func TestTransferStock_TodoElStockEsValido(t *testing.T) {
	uc, _ := newMutationUC()

	p, err := uc.TransferStock(dto.TransferRequest{ID: "P-1004", From: "DEL-B", To: "BLR-A", Qty: 24})
	require.NoError(t, err)
	assert.Equal(t, "BLR-A", p.Warehouse)
	assert.Equal(t, 0, p.Stock)
}
