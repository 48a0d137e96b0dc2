package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmehta/stockview/internal/application/catalog"
	"github.com/kmehta/stockview/internal/infrastructure/memory"
	gqlschema "github.com/kmehta/stockview/internal/interfaces/graphql"
	apphttp "github.com/kmehta/stockview/internal/interfaces/http"
	"github.com/kmehta/stockview/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la app Fiber completa sobre un store recién sembrado.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewSeededStore()
	schema, err := gqlschema.NewSchema(gqlschema.Resolvers{
		Query: catalog.NewQueryUseCase(
			store.Products(), store.Warehouses(), &catalog.FixedJitter{},
		),
		Mutation: catalog.NewMutationUseCase(store.Products()),
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(apphttp.RequestIDMiddleware())
	apphttp.Router(app, apphttp.RouterDeps{
		Schema:  schema,
		Log:     logger.Nop(),
		AppName: "stockview-test",
	})
	return app
}

// doGraphQL lanza un POST /graphql con {query, variables} y decodifica el sobre.
func doGraphQL(t *testing.T, app *fiber.App, query string, variables map[string]interface{}) (int, map[string]json.RawMessage) {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"query": query, "variables": variables})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope
}

func firstErrorMessage(t *testing.T, envelope map[string]json.RawMessage) string {
	t.Helper()
	var errs []struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(envelope["errors"], &errs))
	require.NotEmpty(t, errs)
	return errs[0].Message
}

// ──────────────────────────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────────────────────────

func TestGraphQL_ProductsConFiltro(t *testing.T) {
	app := buildTestApp(t)

	status, envelope := doGraphQL(t, app, `
		query($status: String) {
			products(status: $status) { id warehouse stock demand }
		}`,
		map[string]interface{}{"status": "critical"},
	)
	assert.Equal(t, http.StatusOK, status)

	var data struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	require.Len(t, data.Products, 2)
	assert.Equal(t, "P-1002", data.Products[0].ID)
	assert.Equal(t, "P-1004", data.Products[1].ID)
}

func TestGraphQL_WarehousesYKPIs(t *testing.T) {
	app := buildTestApp(t)

	_, envelope := doGraphQL(t, app, `query { warehouses { code city country } }`, nil)
	var wh struct {
		Warehouses []struct {
			Code string `json:"code"`
		} `json:"warehouses"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &wh))
	require.Len(t, wh.Warehouses, 3)

	_, envelope = doGraphQL(t, app,
		`query($range: String!) { kpis(range: $range) { date stock demand } }`,
		map[string]interface{}{"range": "7d"},
	)
	var kpis struct {
		KPIs []struct {
			Date string `json:"date"`
		} `json:"kpis"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &kpis))
	assert.Len(t, kpis.KPIs, 7)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutations y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestGraphQL_TransferStockYErrorVerbatim(t *testing.T) {
	app := buildTestApp(t)

	transfer := `
		mutation($id: ID!, $from: String!, $to: String!, $qty: Int!) {
			transferStock(id: $id, from: $from, to: $to, qty: $qty) { id warehouse stock }
		}`

	status, envelope := doGraphQL(t, app, transfer, map[string]interface{}{
		"id": "P-1001", "from": "BLR-A", "to": "DEL-B", "qty": 50,
	})
	assert.Equal(t, http.StatusOK, status)

	var data struct {
		TransferStock struct {
			Warehouse string `json:"warehouse"`
			Stock     int    `json:"stock"`
		} `json:"transferStock"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &data))
	assert.Equal(t, "DEL-B", data.TransferStock.Warehouse)
	assert.Equal(t, 130, data.TransferStock.Stock)

	// Repetir con la bodega vieja: el mensaje de dominio llega tal cual.
	status, envelope = doGraphQL(t, app, transfer, map[string]interface{}{
		"id": "P-1001", "from": "BLR-A", "to": "PNQ-C", "qty": 10,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "el producto no está en la bodega de origen", firstErrorMessage(t, envelope))
}

func TestGraphQL_UpdateDemandNoEncontrado(t *testing.T) {
	app := buildTestApp(t)

	_, envelope := doGraphQL(t, app, `
		mutation { updateDemand(id: "P-9999", demand: 10) { id } }`, nil)
	assert.Equal(t, "producto no encontrado", firstErrorMessage(t, envelope))
}

func TestGraphQL_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte("esto no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas auxiliares
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "stockview-test", body["service"])
}

func TestPlayground(t *testing.T) {
	app := buildTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/graphql", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
