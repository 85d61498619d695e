package loyalty

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

// Columns títulos de columna del reporte, en orden.
var Columns = []string{
	"Nombre", "Apellido", "Correo Electrónico", "Teléfono",
	"Tipo Documento", "Número Documento", "Fecha Compra", "Producto",
	"Cantidad", "Precio Unitario (COP)", "Subtotal (COP)",
}

// Row una fila del reporte: una línea de detalle de compra, o la fila sintética
// de total de un cliente (IsTotal). En filas de total solo Producto (etiqueta)
// y Subtotal llevan valor.
type Row struct {
	Nombre          string
	Apellido        string
	Correo          string
	Telefono        string
	TipoDocumento   string
	NumeroDocumento string
	FechaCompra     string // "2006-01-02 15:04:05", vacío en totales
	Producto        string // nombre del producto o "TOTAL <nombre> <apellido>"
	Cantidad        int64
	PrecioUnitario  decimal.Decimal
	Subtotal        decimal.Decimal
	IsTotal         bool
}

// Report reporte de fidelización ensamblado, listo para renderizar.
type Report struct {
	GeneratedAt time.Time
	Rows        []Row
}

type customerGroup struct {
	firstName string
	lastName  string
	rows      []repository.LoyaltyReportRow
}

// BuildReport agrupa las líneas por cliente (apellido y nombre con colación en
// español), ordena cada grupo por fecha de compra descendente (producto como
// desempate) y agrega una fila de total por cliente con la suma de subtotales
// del grupo. Entrada vacía retorna ErrNoData: nunca se genera un archivo vacío.
func BuildReport(rows []repository.LoyaltyReportRow, generatedAt time.Time) (*Report, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no hay productos que cumplan el criterio de fidelización", domain.ErrNoData)
	}

	groupsByID := make(map[string]*customerGroup)
	var order []string
	for _, r := range rows {
		g, ok := groupsByID[r.CustomerID]
		if !ok {
			g = &customerGroup{firstName: r.FirstName, lastName: r.LastName}
			groupsByID[r.CustomerID] = g
			order = append(order, r.CustomerID)
		}
		g.rows = append(g.rows, r)
	}

	groups := make([]*customerGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, groupsByID[id])
	}
	col := collate.New(language.Spanish)
	sort.SliceStable(groups, func(i, j int) bool {
		if c := col.CompareString(groups[i].lastName, groups[j].lastName); c != 0 {
			return c < 0
		}
		return col.CompareString(groups[i].firstName, groups[j].firstName) < 0
	})

	report := &Report{GeneratedAt: generatedAt}
	for _, g := range groups {
		sort.SliceStable(g.rows, func(i, j int) bool {
			if !g.rows[i].PurchaseDate.Equal(g.rows[j].PurchaseDate) {
				return g.rows[i].PurchaseDate.After(g.rows[j].PurchaseDate)
			}
			return g.rows[i].ProductName < g.rows[j].ProductName
		})

		total := decimal.Zero
		for _, r := range g.rows {
			subtotal := r.UnitPrice.Mul(decimal.NewFromInt(r.Quantity))
			total = total.Add(subtotal)
			report.Rows = append(report.Rows, Row{
				Nombre:          r.FirstName,
				Apellido:        r.LastName,
				Correo:          r.Email,
				Telefono:        r.Phone,
				TipoDocumento:   r.DocumentType,
				NumeroDocumento: r.DocumentNumber,
				FechaCompra:     r.PurchaseDate.Format("2006-01-02 15:04:05"),
				Producto:        r.ProductName,
				Cantidad:        r.Quantity,
				PrecioUnitario:  r.UnitPrice,
				Subtotal:        subtotal,
			})
		}
		report.Rows = append(report.Rows, Row{
			Producto: fmt.Sprintf("TOTAL %s %s", g.firstName, g.lastName),
			Subtotal: total,
			IsTotal:  true,
		})
	}
	return report, nil
}
