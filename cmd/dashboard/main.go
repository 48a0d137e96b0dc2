// Comando dashboard: versión de terminal del tablero de inventario. Carga el
// snapshot del catálogo (tres lecturas en paralelo), deriva los KPIs
// localmente y pinta las tarjetas, el overview por bodega y la tabla.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kmehta/stockview/internal/application/analytics"
	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/application/export"
	"github.com/kmehta/stockview/internal/dashboard/client"
	"github.com/kmehta/stockview/internal/dashboard/view"
	"github.com/kmehta/stockview/internal/domain/entity"
	"github.com/kmehta/stockview/internal/infrastructure/pdf"
	"github.com/kmehta/stockview/pkg/logger"
)

func main() {
	var (
		url       = flag.String("url", "http://localhost:4000/graphql", "endpoint GraphQL del catálogo")
		rangeKey  = flag.String("range", dto.KPIRange7d, "rango de la serie de KPIs: 7d, 14d o 30d")
		search    = flag.String("search", "", "búsqueda por nombre, sku o id")
		status    = flag.String("status", dto.FilterAll, "filtro de estado: healthy, low, critical o all")
		warehouse = flag.String("warehouse", dto.FilterAll, "filtro por código de bodega, o all")
		pageSize  = flag.Int("page-size", view.DefaultPageSize, "filas por página: 10, 25, 50 o 100")
		page      = flag.Int("page", 1, "página a mostrar (base 1)")
		exportFmt = flag.String("export", "", "exporta la página visible: csv, json o pdf")
		out       = flag.String("out", "", "archivo de salida del export (por defecto stdout para csv/json)")
		setDemand = flag.String("set-demand", "", "actualiza la demanda antes de cargar: ID=N (ej. P-1002=90)")
		transfer  = flag.String("transfer", "", "transfiere stock antes de cargar: ID:ORIGEN:DESTINO:QTY")
	)
	flag.Parse()

	log := logger.New(logger.Config{
		Env:     "development",
		Level:   "warn",
		Service: "stockview-dashboard",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cli := client.New(*url, nil)

	// Las mutaciones corren antes de cargar el snapshot para que las tarjetas
	// y la tabla ya reflejen el cambio, igual que el modal de producto.
	if err := runMutations(ctx, cli, *setDemand, *transfer); err != nil {
		log.Fatal().Err(err).Msg("mutación fallida")
	}

	snap, err := cli.Load(ctx, *rangeKey)
	if err != nil {
		// Sin render parcial: cualquier lectura fallida tumba el tablero entero.
		log.Fatal().Err(err).Msg("no se pudo cargar el dashboard")
	}

	printSummary(analytics.Summarize(snap.Products), *rangeKey, snap.Chart)
	printWarehouses(analytics.OverviewByWarehouse(snap.Warehouses, snap.Products))

	table := view.NewTable(snap.Products)
	table.SetFilter(dto.ProductFilter{Search: *search, Status: *status, Warehouse: *warehouse})
	table.SetPageSize(*pageSize)
	table.SetPage(*page)
	printTable(table)

	if *exportFmt != "" {
		table.ToggleSelectAll() // la exportación opera sobre la selección: la página visible
		if err := runExport(ctx, table, *exportFmt, *out); err != nil {
			log.Fatal().Err(err).Msg("exportación fallida")
		}
	}
}

func runMutations(ctx context.Context, cli *client.Client, setDemand, transfer string) error {
	if setDemand != "" {
		id, demand, err := parseSetDemand(setDemand)
		if err != nil {
			return err
		}
		p, err := cli.UpdateDemand(ctx, id, demand)
		if err != nil {
			return err
		}
		fmt.Printf("Demanda actualizada: %s → %d (%s)\n\n", p.ID, p.Demand, p.Status().Label())
	}
	if transfer != "" {
		req, err := parseTransfer(transfer)
		if err != nil {
			return err
		}
		p, err := cli.TransferStock(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("Transferencia aplicada: %s → bodega %s, stock %d\n\n", p.ID, p.Warehouse, p.Stock)
	}
	return nil
}

// parseSetDemand formato ID=N, ej. "P-1002=90".
func parseSetDemand(arg string) (string, int, error) {
	id, raw, ok := strings.Cut(arg, "=")
	if !ok || id == "" {
		return "", 0, fmt.Errorf("formato de -set-demand inválido: %q (se espera ID=N)", arg)
	}
	demand, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("demanda inválida en -set-demand: %q", raw)
	}
	return id, demand, nil
}

// parseTransfer formato ID:ORIGEN:DESTINO:QTY, ej. "P-1001:BLR-A:DEL-B:50".
func parseTransfer(arg string) (dto.TransferRequest, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 4 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return dto.TransferRequest{}, fmt.Errorf("formato de -transfer inválido: %q (se espera ID:ORIGEN:DESTINO:QTY)", arg)
	}
	qty, err := strconv.Atoi(parts[3])
	if err != nil {
		return dto.TransferRequest{}, fmt.Errorf("cantidad inválida en -transfer: %q", parts[3])
	}
	return dto.TransferRequest{ID: parts[0], From: parts[1], To: parts[2], Qty: qty}, nil
}

func printSummary(s dto.DashboardSummaryDTO, rangeKey string, chart []entity.KPISample) {
	fmt.Println("── KPIs ──────────────────────────────────────────────")
	fmt.Printf("Stock total:    %d\n", s.TotalStock)
	fmt.Printf("Demanda total:  %d\n", s.TotalDemand)
	fmt.Printf("Fill rate:      %.1f%%\n", s.FillRate)
	fmt.Printf("Estados:        %d healthy / %d low / %d critical\n",
		s.HealthyCount, s.LowCount, s.CriticalCount)
	if len(chart) > 0 {
		first, last := chart[0], chart[len(chart)-1]
		fmt.Printf("Serie %s:       %d muestras (%s → %s)\n",
			rangeKey, len(chart), first.Date, last.Date)
	}
	fmt.Println()
}

func printWarehouses(stats []dto.WarehouseStatsDTO) {
	fmt.Println("── Bodegas ───────────────────────────────────────────")
	for _, w := range stats {
		fmt.Printf("%-6s %-14s %3d productos  stock %5d  demanda %5d  crit %d  util %.0f%%\n",
			w.Code, w.Name, w.ProductCount, w.TotalStock, w.TotalDemand,
			w.CriticalCount, w.UtilizationRate)
	}
	fmt.Println()
}

func printTable(t *view.Table) {
	fmt.Println("── Productos ─────────────────────────────────────────")
	fmt.Printf("%-8s %-20s %-12s %-7s %6s %7s  %s\n",
		"ID", "NOMBRE", "SKU", "BODEGA", "STOCK", "DEMANDA", "ESTADO")
	for _, p := range t.PageRows() {
		fmt.Printf("%-8s %-20s %-12s %-7s %6d %7d  %s\n",
			p.ID, p.Name, p.SKU, p.Warehouse, p.Stock, p.Demand, p.Status().Label())
	}
	fmt.Printf("\nPágina %d de %d — filas %d a %d de %d\n\n",
		t.Page(), t.TotalPages(), t.StartItem(), t.EndItem(), t.TotalItems())
}

func runExport(ctx context.Context, t *view.Table, format, out string) error {
	uc := export.NewUseCase(pdf.NewMarotoReportGenerator())
	selected := t.Selected()

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "csv":
		data, err = uc.CSV(selected)
	case "json":
		data, err = uc.JSON(selected)
	case "pdf":
		if out == "" {
			out = fmt.Sprintf("productos-%s.pdf", time.Now().Format("2006-01-02"))
		}
		data, err = uc.PDF(ctx, selected)
	default:
		return fmt.Errorf("formato de export desconocido: %q", format)
	}
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Exportadas %d filas a %s\n", len(selected), out)
	return nil
}
