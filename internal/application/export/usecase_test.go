package export_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmehta/stockview/internal/application/export"
	"github.com/kmehta/stockview/internal/domain/entity"
	"github.com/kmehta/stockview/internal/infrastructure/memory"
	"github.com/kmehta/stockview/internal/infrastructure/pdf"
)

func TestCSV_CabeceraYEstadoDerivado(t *testing.T) {
	uc := export.NewUseCase(nil)

	data, err := uc.CSV(memory.SeedProducts())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5) // cabecera + 4 productos
	assert.Equal(t, "ID,Name,SKU,Warehouse,Stock,Demand,Status", lines[0])
	assert.Equal(t, "P-1001,12mm Hex Bolt,HEX-12-100,BLR-A,180,120,Healthy", lines[1])
	assert.Equal(t, "P-1004,Bearing 608ZZ,BRG-608-50,DEL-B,24,120,Critical", lines[4])
}

func TestCSV_SeleccionVacia(t *testing.T) {
	uc := export.NewUseCase(nil)

	data, err := uc.CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,SKU,Warehouse,Stock,Demand,Status", strings.TrimSpace(string(data)))
}

func TestJSON_CamposYEtiquetas(t *testing.T) {
	uc := export.NewUseCase(nil)

	data, err := uc.JSON([]entity.Product{
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
	})
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "P-1003", rows[0]["ID"])
	assert.Equal(t, "Low", rows[0]["Status"])
	assert.Equal(t, float64(80), rows[0]["Stock"])
}

func TestPDF_GeneraDocumento(t *testing.T) {
	uc := export.NewUseCase(pdf.NewMarotoReportGenerator())

	data, err := uc.PDF(context.Background(), memory.SeedProducts())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// Firma mínima de un archivo PDF.
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
