package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// Snapshot el estado completo que necesita el dashboard para renderizar:
// productos sin filtrar, bodegas y la serie de KPIs del rango elegido.
type Snapshot struct {
	Products   []entity.Product
	Warehouses []entity.Warehouse
	Chart      []entity.KPISample
}

// Load lanza las tres lecturas en paralelo y espera a todas. Si cualquiera
// falla, falla la carga completa: no hay render parcial. El primer error
// cancela el contexto de las lecturas hermanas.
func (c *Client) Load(ctx context.Context, rangeKey string) (*Snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)
	snap := &Snapshot{}

	g.Go(func() error {
		products, err := c.Products(ctx, dto.ProductFilter{})
		if err != nil {
			return err
		}
		snap.Products = products
		return nil
	})
	g.Go(func() error {
		warehouses, err := c.Warehouses(ctx)
		if err != nil {
			return err
		}
		snap.Warehouses = warehouses
		return nil
	})
	g.Go(func() error {
		chart, err := c.KPIs(ctx, rangeKey)
		if err != nil {
			return err
		}
		snap.Chart = chart
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
