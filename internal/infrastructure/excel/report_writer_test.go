package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/riosdeldesierto/clientes-api/internal/application/loyalty"
	"github.com/riosdeldesierto/clientes-api/internal/infrastructure/excel"
)

const sheet = "Clientes Fidelización"

func sampleReport() *loyalty.Report {
	return &loyalty.Report{
		GeneratedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		Rows: []loyalty.Row{
			{
				Nombre: "María", Apellido: "González",
				Correo: "maria.gonzalez@example.com", Telefono: "3109876543",
				TipoDocumento: "CEDULA", NumeroDocumento: "987654321",
				FechaCompra: "2026-08-24 15:00:00", Producto: "Televisor 65 pulgadas",
				Cantidad:       1,
				PrecioUnitario: decimal.NewFromInt(3_000_000),
				Subtotal:       decimal.NewFromInt(3_000_000),
			},
			{
				Producto: "TOTAL María González",
				Subtotal: decimal.NewFromInt(3_000_000),
				IsTotal:  true,
			},
		},
	}
}

func renderAndReopen(t *testing.T) *excelize.File {
	t.Helper()
	out, err := excel.NewReportWriter().Render(sampleReport())
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err, "el XLSX generado debe poder reabrirse")
	t.Cleanup(func() { f.Close() })
	return f
}

func TestRender_TituloCombinado(t *testing.T) {
	f := renderAndReopen(t)

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte de Fidelización Clientes - Rios del Desierto S.A.S.", title)

	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "K1", merged[0].GetEndAxis(), "el título abarca las 11 columnas")
}

func TestRender_Encabezados(t *testing.T) {
	f := renderAndReopen(t)

	for i, want := range loyalty.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		require.NoError(t, err)
		got, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRender_FilasDeDatosYTotal(t *testing.T) {
	f := renderAndReopen(t)

	nombre, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "María", nombre)

	producto, err := f.GetCellValue(sheet, "H3")
	require.NoError(t, err)
	assert.Equal(t, "Televisor 65 pulgadas", producto)

	// Fila de total: etiqueta en la columna Producto, resto de celdas vacías
	etiqueta, err := f.GetCellValue(sheet, "H4")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL María González", etiqueta)

	vacio, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Empty(t, vacio)

	subtotal, err := f.GetCellValue(sheet, "K4")
	require.NoError(t, err)
	assert.Equal(t, "3000000", subtotal)
}

func TestRender_AnchosDeColumna(t *testing.T) {
	f := renderAndReopen(t)

	// "maria.gonzalez@example.com" (26 runas) + 2
	width, err := f.GetColWidth(sheet, "C")
	require.NoError(t, err)
	assert.InDelta(t, 28, width, 1, "ancho acotado al contenido más largo (el correo)")
}
