package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/riosdeldesierto/clientes-api/internal/application/usecase"
	"github.com/riosdeldesierto/clientes-api/internal/infrastructure/export"
)

func sampleRecord() usecase.CustomerRecord {
	return usecase.CustomerRecord{
		ID:                 "11111111-2222-3333-4444-555555555555",
		Nombre:             "Juan",
		Apellido:           "Pérez",
		CorreoElectronico:  "juan.perez@example.com",
		TelefonoCelular:    "3001234567",
		FechaNacimiento:    "1985-03-15",
		TipoDocumento:      "CEDULA",
		NumeroDocumento:    "123456789",
		FechaCreacion:      "2026-01-10T08:00:00Z",
		FechaActualizacion: "2026-01-10T08:00:00Z",
	}
}

// El CSV lleva BOM UTF-8 para que Excel detecte la codificación.
func TestRenderCSV_BOMyContenido(t *testing.T) {
	e := export.NewCustomerExporter()

	out, err := e.Render(usecase.FormatCSV, sampleRecord())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("\xEF\xBB\xBF")), "el CSV debe iniciar con BOM UTF-8")

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte("\xEF\xBB\xBF"))))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "encabezado + una fila de datos")

	assert.Equal(t, sampleRecord().Headers(), records[0])
	assert.Equal(t, sampleRecord().Values(), records[1])
}

func TestRenderTXT_Formato(t *testing.T) {
	e := export.NewCustomerExporter()

	out, err := e.Render(usecase.FormatTXT, sampleRecord())
	require.NoError(t, err)

	text := string(out)
	banner := strings.Repeat("=", 50)
	assert.True(t, strings.HasPrefix(text, banner+"\n"), "inicia con banner")
	assert.Contains(t, text, "INFORMACIÓN DEL CLIENTE")
	assert.Contains(t, text, "Nombre: Juan")
	assert.Contains(t, text, "Número Documento: 123456789")
	assert.True(t, strings.HasSuffix(text, banner+"\n"), "termina con banner")
}

func TestRenderXLSX_Reabrible(t *testing.T) {
	e := export.NewCustomerExporter()

	out, err := e.Render(usecase.FormatExcel, sampleRecord())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err, "el XLSX generado debe poder reabrirse")
	defer f.Close()

	const sheet = "Información Cliente"
	assert.Contains(t, f.GetSheetList(), sheet)

	got, err := f.GetCellValue(sheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Nombre", got)
	got, err = f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Juan", got)
}

func TestRender_FormatoDesconocido(t *testing.T) {
	e := export.NewCustomerExporter()

	_, err := e.Render(usecase.ExportFormat("PDF"), sampleRecord())
	require.Error(t, err)
}
