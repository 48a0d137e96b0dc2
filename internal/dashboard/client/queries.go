package client

// Documentos GraphQL que usa el dashboard. Idénticos al contrato del
// servidor: cualquier cambio de esquema rompe primero aquí.
const (
	productsQuery = `
  query GetProducts($search: String, $status: String, $warehouse: String) {
    products(search: $search, status: $status, warehouse: $warehouse) {
      id
      name
      sku
      warehouse
      stock
      demand
    }
  }`

	warehousesQuery = `
  query GetWarehouses {
    warehouses {
      code
      name
      city
      country
    }
  }`

	kpisQuery = `
  query GetKPIs($range: String!) {
    kpis(range: $range) {
      date
      stock
      demand
    }
  }`

	updateDemandMutation = `
  mutation UpdateDemand($id: ID!, $demand: Int!) {
    updateDemand(id: $id, demand: $demand) {
      id
      name
      sku
      warehouse
      stock
      demand
    }
  }`

	transferStockMutation = `
  mutation TransferStock($id: ID!, $from: String!, $to: String!, $qty: Int!) {
    transferStock(id: $id, from: $from, to: $to, qty: $qty) {
      id
      name
      sku
      warehouse
      stock
      demand
    }
  }`
)
