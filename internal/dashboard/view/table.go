// Package view implementa el estado de la tabla de productos del dashboard:
// una segunda pasada de filtrado del lado del cliente (misma semántica que el
// servidor), más orden, paginación y selección de filas.
package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kmehta/stockview/internal/application/analytics"
	"github.com/kmehta/stockview/internal/application/catalog"
	"github.com/kmehta/stockview/internal/application/dto"
	"github.com/kmehta/stockview/internal/domain/entity"
)

// SortKey columna activa de ordenamiento.
type SortKey string

const (
	SortNone        SortKey = ""
	SortByID        SortKey = "id"
	SortByName      SortKey = "name"
	SortBySKU       SortKey = "sku"
	SortByWarehouse SortKey = "warehouse"
	SortByStock     SortKey = "stock"
	SortByDemand    SortKey = "demand"
)

// PageSizes tamaños de página permitidos.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize tamaño inicial de la tabla.
const DefaultPageSize = 10

// pageWindow máximo de números de página visibles antes de usar elipsis.
const pageWindow = 5

// Ellipsis marcador de hueco en PageNumbers.
const Ellipsis = 0

// Table estado de la vista de tabla. Invariantes que mantiene:
//   - cambiar filtros o tamaño de página vuelve a la página 1 y limpia la selección
//   - cambiar de página limpia la selección
//   - "seleccionar todo" alterna entre vacío y las filas de la página actual
//     (no todas las filtradas)
type Table struct {
	products []entity.Product

	filter   dto.ProductFilter
	sortKey  SortKey
	sortAsc  bool
	page     int
	pageSize int
	selected map[string]struct{}

	collator *collate.Collator
}

// NewTable construye la tabla sobre la lista ya traída del catálogo.
func NewTable(products []entity.Product) *Table {
	return &Table{
		products: products,
		sortAsc:  true,
		page:     1,
		pageSize: DefaultPageSize,
		selected: make(map[string]struct{}),
		collator: collate.New(language.Und),
	}
}

// Reload reemplaza los datos (tras una recarga o una mutación). La selección
// deja de tener sentido sobre datos nuevos, así que se limpia y se vuelve a
// la página 1; filtros y orden se conservan.
func (t *Table) Reload(products []entity.Product) {
	t.products = products
	t.page = 1
	t.clearSelection()
}

// ── Filtros ───────────────────────────────────────────────────────────────────

// Filter filtro activo.
func (t *Table) Filter() dto.ProductFilter { return t.filter }

// SetFilter cambia los filtros: página 1 y selección limpia.
func (t *Table) SetFilter(f dto.ProductFilter) {
	if t.filter == f {
		return
	}
	t.filter = f
	t.page = 1
	t.clearSelection()
}

// ── Orden ─────────────────────────────────────────────────────────────────────

// Sort devuelve la columna activa y su dirección (true = ascendente).
func (t *Table) Sort() (SortKey, bool) { return t.sortKey, t.sortAsc }

// ToggleSort clic en una cabecera: misma columna invierte la dirección,
// columna nueva arranca ascendente.
func (t *Table) ToggleSort(key SortKey) {
	if t.sortKey == key {
		t.sortAsc = !t.sortAsc
		return
	}
	t.sortKey = key
	t.sortAsc = true
}

// less comparador de la columna activa. Columnas de texto comparan con
// collation (orden consciente de locale); numéricas por resta.
func (t *Table) less(a, b entity.Product) bool {
	var cmp int
	switch t.sortKey {
	case SortByID:
		cmp = t.collator.CompareString(a.ID, b.ID)
	case SortByName:
		cmp = t.collator.CompareString(a.Name, b.Name)
	case SortBySKU:
		cmp = t.collator.CompareString(a.SKU, b.SKU)
	case SortByWarehouse:
		cmp = t.collator.CompareString(a.Warehouse, b.Warehouse)
	case SortByStock:
		cmp = a.Stock - b.Stock
	case SortByDemand:
		cmp = a.Demand - b.Demand
	}
	if t.sortAsc {
		return cmp < 0
	}
	return cmp > 0
}

// ── Filas ─────────────────────────────────────────────────────────────────────

// Rows lista filtrada y ordenada completa. El sort es estable: los empates
// conservan el orden relativo previo.
func (t *Table) Rows() []entity.Product {
	rows := catalog.Filter(t.products, t.filter)
	if t.sortKey != SortNone {
		sort.SliceStable(rows, func(i, j int) bool { return t.less(rows[i], rows[j]) })
	}
	return rows
}

// PageRows las filas de la página actual (la última puede ser parcial).
func (t *Table) PageRows() []entity.Product {
	rows := t.Rows()
	start := (t.page - 1) * t.pageSize
	if start >= len(rows) {
		return nil
	}
	end := min(start+t.pageSize, len(rows))
	return rows[start:end]
}

// Summary KPIs de la lista filtrada (para la cabecera de la tabla).
func (t *Table) Summary() dto.DashboardSummaryDTO {
	return analytics.Summarize(t.Rows())
}

// ── Paginación ────────────────────────────────────────────────────────────────

// Page página actual (base 1).
func (t *Table) Page() int { return t.page }

// PageSize tamaño de página actual.
func (t *Table) PageSize() int { return t.pageSize }

// TotalItems total de filas filtradas.
func (t *Table) TotalItems() int { return len(t.Rows()) }

// TotalPages número de páginas; al menos 1 aunque no haya filas.
func (t *Table) TotalPages() int {
	n := (t.TotalItems() + t.pageSize - 1) / t.pageSize
	if n < 1 {
		return 1
	}
	return n
}

// StartItem índice (base 1) de la primera fila visible; 0 si no hay filas.
func (t *Table) StartItem() int {
	if t.TotalItems() == 0 {
		return 0
	}
	return (t.page-1)*t.pageSize + 1
}

// EndItem índice (base 1) de la última fila visible.
func (t *Table) EndItem() int {
	return min(t.page*t.pageSize, t.TotalItems())
}

// SetPage navega a la página n (se acota a [1, TotalPages]). Cambiar de
// página limpia la selección completa.
func (t *Table) SetPage(n int) {
	n = clamp(n, 1, t.TotalPages())
	if n == t.page {
		return
	}
	t.page = n
	t.clearSelection()
}

// SetPageSize cambia el tamaño de página (solo valores de PageSizes); vuelve
// a la página 1 y limpia la selección.
func (t *Table) SetPageSize(size int) {
	if size == t.pageSize || !allowedPageSize(size) {
		return
	}
	t.pageSize = size
	t.page = 1
	t.clearSelection()
}

// PageNumbers ventana de números de página para el paginador; Ellipsis (0)
// marca los huecos. Máximo pageWindow páginas visibles.
func (t *Table) PageNumbers() []int {
	total := t.TotalPages()
	if total <= pageWindow {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}
	switch {
	case t.page <= 3:
		return []int{1, 2, 3, 4, Ellipsis, total}
	case t.page >= total-2:
		return []int{1, Ellipsis, total - 3, total - 2, total - 1, total}
	default:
		return []int{1, Ellipsis, t.page - 1, t.page, t.page + 1, Ellipsis, total}
	}
}

// ── Selección ─────────────────────────────────────────────────────────────────

// ToggleSelect marca o desmarca una fila por id.
func (t *Table) ToggleSelect(id string) {
	if _, ok := t.selected[id]; ok {
		delete(t.selected, id)
		return
	}
	t.selected[id] = struct{}{}
}

// ToggleSelectAll alterna entre selección vacía y todas las filas de la
// página actual. Nunca selecciona más allá de la página visible.
func (t *Table) ToggleSelectAll() {
	if len(t.selected) > 0 {
		t.clearSelection()
		return
	}
	for _, p := range t.PageRows() {
		t.selected[p.ID] = struct{}{}
	}
}

// IsSelected true si la fila está marcada.
func (t *Table) IsSelected(id string) bool {
	_, ok := t.selected[id]
	return ok
}

// SelectedCount número de filas marcadas.
func (t *Table) SelectedCount() int { return len(t.selected) }

// Selected filas marcadas, en el orden visible actual.
func (t *Table) Selected() []entity.Product {
	out := make([]entity.Product, 0, len(t.selected))
	for _, p := range t.Rows() {
		if t.IsSelected(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

func (t *Table) clearSelection() {
	t.selected = make(map[string]struct{})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func allowedPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
