package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

// ExportFormat formato de exportación de la ficha de cliente.
type ExportFormat string

const (
	FormatCSV   ExportFormat = "CSV"
	FormatTXT   ExportFormat = "TXT"
	FormatExcel ExportFormat = "EXCEL"
)

// ParseExportFormat acepta el valor en cualquier caja; cualquier otro valor se
// rechaza antes de generar archivo alguno.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToUpper(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatTXT:
		return FormatTXT, nil
	case FormatExcel:
		return FormatExcel, nil
	}
	return "", fmt.Errorf("%w: formato inválido, valores válidos: CSV, TXT, EXCEL", domain.ErrInvalidInput)
}

// CustomerRecord ficha plana de un cliente para exportación, con los campos
// derivados del documento ya resueltos.
type CustomerRecord struct {
	ID                 string
	Nombre             string
	Apellido           string
	CorreoElectronico  string
	TelefonoCelular    string
	FechaNacimiento    string // ISO o "N/A"
	TipoDocumento      string
	NumeroDocumento    string
	FechaCreacion      string
	FechaActualizacion string
}

// Headers títulos de columna, en el orden de exportación.
func (CustomerRecord) Headers() []string {
	return []string{
		"ID", "Nombre", "Apellido", "Correo Electrónico", "Teléfono Celular",
		"Fecha de Nacimiento", "Tipo Documento", "Número Documento",
		"Fecha Creación", "Fecha Actualización",
	}
}

// Values valores alineados con Headers.
func (r CustomerRecord) Values() []string {
	return []string{
		r.ID, r.Nombre, r.Apellido, r.CorreoElectronico, r.TelefonoCelular,
		r.FechaNacimiento, r.TipoDocumento, r.NumeroDocumento,
		r.FechaCreacion, r.FechaActualizacion,
	}
}

// CustomerExporter puerto de renderizado de la ficha (CSV/TXT/XLSX).
type CustomerExporter interface {
	Render(format ExportFormat, rec CustomerRecord) ([]byte, error)
}

// ExportFile archivo exportado listo para descarga.
type ExportFile struct {
	Name    string
	MIME    string
	Content []byte
}

// ExportUseCase exporta la ficha de un cliente buscado por documento.
type ExportUseCase struct {
	customers repository.CustomerRepository
	documents repository.DocumentRepository
	exporter  CustomerExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(customers repository.CustomerRepository, documents repository.DocumentRepository, exporter CustomerExporter) *ExportUseCase {
	return &ExportUseCase{customers: customers, documents: documents, exporter: exporter}
}

// Export busca el cliente por (tipo, número) y renderiza su ficha en el formato pedido.
// El formato se valida primero: un valor desconocido nunca llega a la búsqueda.
func (uc *ExportUseCase) Export(ctx context.Context, tipoDocumento, numeroDocumento, formato string) (*ExportFile, error) {
	if strings.TrimSpace(formato) == "" {
		return nil, fmt.Errorf("%w: el parámetro 'formato' es requerido, valores válidos: CSV, TXT, EXCEL", domain.ErrInvalidInput)
	}
	f, err := ParseExportFormat(formato)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(tipoDocumento) == "" {
		return nil, fmt.Errorf("%w: el parámetro 'tipo_documento' es requerido", domain.ErrInvalidInput)
	}
	numero := strings.TrimSpace(numeroDocumento)
	if numero == "" {
		return nil, fmt.Errorf("%w: el parámetro 'numero_documento' es requerido", domain.ErrInvalidInput)
	}
	tipoDoc, err := entity.ParseDocumentType(tipoDocumento)
	if err != nil {
		return nil, err
	}

	doc, err := uc.documents.GetByTypeAndNumber(ctx, tipoDoc, numero)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: cliente no encontrado", domain.ErrNotFound)
	}
	customer, err := uc.customers.GetByID(ctx, doc.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente no encontrado", domain.ErrNotFound)
	}

	rec := buildRecord(customer, doc)
	content, err := uc.exporter.Render(f, rec)
	if err != nil {
		return nil, fmt.Errorf("renderizar exportación: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("cliente_%s_%s_%s.%s", customer.FirstName, customer.LastName, stamp, extension(f))
	return &ExportFile{Name: name, MIME: mimeType(f), Content: content}, nil
}

func buildRecord(c *entity.Customer, d *entity.Document) CustomerRecord {
	fechaNacimiento := "N/A"
	if c.BirthDate != nil {
		fechaNacimiento = c.BirthDate.Format("2006-01-02")
	}
	return CustomerRecord{
		ID:                 c.ID,
		Nombre:             c.FirstName,
		Apellido:           c.LastName,
		CorreoElectronico:  c.Email,
		TelefonoCelular:    c.Phone,
		FechaNacimiento:    fechaNacimiento,
		TipoDocumento:      string(d.Type),
		NumeroDocumento:    d.Number,
		FechaCreacion:      c.CreatedAt.Format(time.RFC3339),
		FechaActualizacion: c.UpdatedAt.Format(time.RFC3339),
	}
}

func extension(f ExportFormat) string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTXT:
		return "txt"
	default:
		return "xlsx"
	}
}

func mimeType(f ExportFormat) string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatTXT:
		return "text/plain"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}
