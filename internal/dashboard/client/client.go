// Package client implementa el acceso del dashboard al catálogo: un cliente
// GraphQL sobre HTTP con los documentos tipados que usa la interfaz.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// NetworkError envuelve fallos de transporte o parseo (no errores de negocio
// devueltos por el servidor). El error original queda disponible vía Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "error de red: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// Client cliente GraphQL del catálogo.
type Client struct {
	url  string
	http *http.Client
}

// New construye el cliente contra la URL del endpoint (ej. http://host:4000/graphql).
// httpClient puede ser nil para usar http.DefaultClient.
func New(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, http: httpClient}
}

// graphqlResponse sobre de respuesta {data} | {errors:[{message}]}.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Query ejecuta un documento y deserializa data en out. Errores de negocio
// del servidor se devuelven con el primer mensaje tal cual; todo lo demás
// (transporte, status, JSON) se envuelve en NetworkError.
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return &NetworkError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{Err: fmt.Errorf("status HTTP inesperado: %s", resp.Status)}
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &NetworkError{Err: err}
	}
	if len(envelope.Errors) > 0 {
		// Mensaje verbatim: el dashboard lo muestra sin clasificar.
		return errors.New(envelope.Errors[0].Message)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &NetworkError{Err: err}
	}
	return nil
}

// Products lista productos con el filtro dado (los campos vacíos no viajan).
func (c *Client) Products(ctx context.Context, filter dto.ProductFilter) ([]entity.Product, error) {
	vars := map[string]interface{}{}
	if filter.Search != "" {
		vars["search"] = filter.Search
	}
	if filter.Status != "" {
		vars["status"] = filter.Status
	}
	if filter.Warehouse != "" {
		vars["warehouse"] = filter.Warehouse
	}
	var data struct {
		Products []entity.Product `json:"products"`
	}
	if err := c.Query(ctx, productsQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.Products, nil
}

// Warehouses lista todas las bodegas.
func (c *Client) Warehouses(ctx context.Context) ([]entity.Warehouse, error) {
	var data struct {
		Warehouses []entity.Warehouse `json:"warehouses"`
	}
	if err := c.Query(ctx, warehousesQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.Warehouses, nil
}

// KPIs trae la serie del rango pedido ("7d", "14d" o "30d").
func (c *Client) KPIs(ctx context.Context, rangeKey string) ([]entity.KPISample, error) {
	var data struct {
		KPIs []entity.KPISample `json:"kpis"`
	}
	vars := map[string]interface{}{"range": rangeKey}
	if err := c.Query(ctx, kpisQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.KPIs, nil
}

// UpdateDemand fija la demanda de un producto y devuelve el registro nuevo.
func (c *Client) UpdateDemand(ctx context.Context, id string, demand int) (*entity.Product, error) {
	var data struct {
		UpdateDemand entity.Product `json:"updateDemand"`
	}
	vars := map[string]interface{}{"id": id, "demand": demand}
	if err := c.Query(ctx, updateDemandMutation, vars, &data); err != nil {
		return nil, err
	}
	return &data.UpdateDemand, nil
}

// TransferStock mueve stock entre bodegas y devuelve el producto actualizado.
func (c *Client) TransferStock(ctx context.Context, req dto.TransferRequest) (*entity.Product, error) {
	var data struct {
		TransferStock entity.Product `json:"transferStock"`
	}
	vars := map[string]interface{}{
		"id":   req.ID,
		"from": req.From,
		"to":   req.To,
		"qty":  req.Qty,
	}
	if err := c.Query(ctx, transferStockMutation, vars, &data); err != nil {
		return nil, err
	}
	return &data.TransferStock, nil
}
