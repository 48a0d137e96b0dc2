// Package graphql define el esquema del catálogo y sus resolvers. El esquema
// se construye en runtime (graphql-go), igual que el contrato publicado:
//
//	Query.products(search, status, warehouse) -> [Product!]!
//	Query.warehouses() -> [Warehouse!]!
//	Query.kpis(range!) -> [KPI!]!
//	Mutation.updateDemand(id!, demand!) -> Product!
//	Mutation.transferStock(id!, from!, to!, qty!) -> Product!
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/kmehta/stockview/internal/application/catalog"
	"github.com/kmehta/stockview/internal/application/dto"
)

// Resolvers casos de uso que respaldan el esquema.
type Resolvers struct {
	Query    *catalog.QueryUseCase
	Mutation *catalog.MutationUseCase
}

// NewSchema construye el esquema ejecutable del catálogo.
func NewSchema(r Resolvers) (graphql.Schema, error) {
	warehouseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Warehouse",
		Fields: graphql.Fields{
			"code":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"city":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"country": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"sku":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"warehouse": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"stock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"demand":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	kpiType := graphql.NewObject(graphql.ObjectConfig{
		Name: "KPI",
		Fields: graphql.Fields{
			"date":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"stock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"demand": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Args: graphql.FieldConfigArgument{
					"search":    &graphql.ArgumentConfig{Type: graphql.String},
					"status":    &graphql.ArgumentConfig{Type: graphql.String},
					"warehouse": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Query.ListProducts(dto.ProductFilter{
						Search:    stringArg(p, "search"),
						Status:    stringArg(p, "status"),
						Warehouse: stringArg(p, "warehouse"),
					})
				},
			},
			"warehouses": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(warehouseType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Query.ListWarehouses()
				},
			},
			"kpis": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(kpiType))),
				Args: graphql.FieldConfigArgument{
					"range": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Query.ListKPIs(stringArg(p, "range"))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"updateDemand": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"demand": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Mutation.UpdateDemand(stringArg(p, "id"), intArg(p, "demand"))
				},
			},
			"transferStock": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"to":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"qty":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Mutation.TransferStock(dto.TransferRequest{
						ID:   stringArg(p, "id"),
						From: stringArg(p, "from"),
						To:   stringArg(p, "to"),
						Qty:  intArg(p, "qty"),
					})
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// stringArg argumento string opcional; "" si no viene.
func stringArg(p graphql.ResolveParams, key string) string {
	v, _ := p.Args[key].(string)
	return v
}

// intArg argumento entero; 0 si no viene (los NonNull nunca llegan vacíos).
func intArg(p graphql.ResolveParams, key string) int {
	v, _ := p.Args[key].(int)
	return v
}
