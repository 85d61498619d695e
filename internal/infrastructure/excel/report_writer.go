package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/riosdeldesierto/clientes-api/internal/application/loyalty"
)

var _ loyalty.ReportRenderer = (*ReportWriter)(nil)

const (
	reportSheet = "Clientes Fidelización"
	reportTitle = "Reporte de Fidelización Clientes - Rios del Desierto S.A.S."
	maxColWidth = 50
)

// ReportWriter renderiza el reporte de fidelización a XLSX: fila de título
// combinada, encabezados de columna, filas de datos y filas de total por
// cliente en negrita con fondo gris. Anchos de columna ajustados al contenido.
type ReportWriter struct{}

// NewReportWriter construye el renderizador.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Render genera el archivo XLSX en memoria.
func (w *ReportWriter) Render(report *loyalty.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	numCols := len(loyalty.Columns)
	lastCol, err := excelize.CoordinatesToCellName(numCols, 1)
	if err != nil {
		return nil, err
	}

	// Fila 1: título combinado de A1 a la última columna.
	if err := f.MergeCell(reportSheet, "A1", lastCol); err != nil {
		return nil, fmt.Errorf("combinar título: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 18, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(reportSheet, "A1", reportTitle); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", lastCol, titleStyle); err != nil {
		return nil, err
	}
	if err := f.SetRowHeight(reportSheet, 1, 30); err != nil {
		return nil, err
	}

	// Fila 2: encabezados de columna.
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	widths := make([]int, numCols)
	for i, name := range loyalty.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, name); err != nil {
			return nil, err
		}
		widths[i] = len([]rune(name))
	}
	headerEnd, _ := excelize.CoordinatesToCellName(numCols, 2)
	if err := f.SetCellStyle(reportSheet, "A2", headerEnd, headerStyle); err != nil {
		return nil, err
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return nil, err
	}

	// Filas de datos desde la fila 3.
	for i, row := range report.Rows {
		rowNum := i + 3
		values := rowValues(row)
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return nil, err
			}
			if l := len([]rune(fmt.Sprint(v))); l > widths[col] {
				widths[col] = l
			}
		}
		if row.IsTotal {
			start, _ := excelize.CoordinatesToCellName(1, rowNum)
			end, _ := excelize.CoordinatesToCellName(numCols, rowNum)
			if err := f.SetCellStyle(reportSheet, start, end, totalStyle); err != nil {
				return nil, err
			}
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		w := float64(width + 2)
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := f.SetColWidth(reportSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir XLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// rowValues celdas de una fila en el orden de loyalty.Columns; nil deja la celda vacía.
// Las filas de total solo llevan etiqueta (columna Producto) y subtotal.
func rowValues(row loyalty.Row) []any {
	if row.IsTotal {
		return []any{
			nil, nil, nil, nil, nil, nil, nil,
			row.Producto,
			nil, nil,
			row.Subtotal.InexactFloat64(),
		}
	}
	return []any{
		row.Nombre,
		row.Apellido,
		row.Correo,
		row.Telefono,
		row.TipoDocumento,
		row.NumeroDocumento,
		row.FechaCompra,
		row.Producto,
		row.Cantidad,
		row.PrecioUnitario.InexactFloat64(),
		row.Subtotal.InexactFloat64(),
	}
}
