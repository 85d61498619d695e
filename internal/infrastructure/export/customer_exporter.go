package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/riosdeldesierto/clientes-api/internal/application/usecase"
)

var _ usecase.CustomerExporter = (*CustomerExporter)(nil)

const (
	exportSheet = "Información Cliente"
	maxColWidth = 50
)

// CustomerExporter renderiza la ficha plana de un cliente en CSV, TXT o XLSX.
type CustomerExporter struct{}

// NewCustomerExporter construye el exportador.
func NewCustomerExporter() *CustomerExporter {
	return &CustomerExporter{}
}

// Render genera el archivo en memoria según el formato.
func (e *CustomerExporter) Render(format usecase.ExportFormat, rec usecase.CustomerRecord) ([]byte, error) {
	switch format {
	case usecase.FormatCSV:
		return renderCSV(rec)
	case usecase.FormatTXT:
		return renderTXT(rec), nil
	case usecase.FormatExcel:
		return renderXLSX(rec)
	}
	return nil, fmt.Errorf("formato no soportado: %s", format)
}

// renderCSV encabezado + una fila. Se antepone BOM UTF-8 para que Excel en
// Windows detecte la codificación (equivalente a utf-8-sig).
func renderCSV(rec usecase.CustomerRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)
	if err := w.Write(rec.Headers()); err != nil {
		return nil, fmt.Errorf("escribir CSV: %w", err)
	}
	if err := w.Write(rec.Values()); err != nil {
		return nil, fmt.Errorf("escribir CSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("escribir CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTXT(rec usecase.CustomerRecord) []byte {
	banner := strings.Repeat("=", 50)
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("INFORMACIÓN DEL CLIENTE\n")
	b.WriteString(banner + "\n\n")
	headers := rec.Headers()
	values := rec.Values()
	for i, h := range headers {
		b.WriteString(fmt.Sprintf("%s: %s\n", h, values[i]))
	}
	b.WriteString("\n" + banner + "\n")
	return []byte(b.String())
}

func renderXLSX(rec usecase.CustomerRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	headers := rec.Headers()
	values := rec.Values()
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, h := range headers {
		headerCell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, headerCell, h); err != nil {
			return nil, err
		}
		valueCell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, valueCell, values[i]); err != nil {
			return nil, err
		}

		width := len([]rune(h))
		if l := len([]rune(values[i])); l > width {
			width = l
		}
		w := float64(width + 2)
		if w > maxColWidth {
			w = maxColWidth
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(exportSheet, col, col, w); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
