package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerTotal total de compras COMPLETADA de un cliente dentro de la ventana.
type CustomerTotal struct {
	CustomerID string
	Total      decimal.Decimal
}

// LoyaltyReportRow una línea de detalle de compra enriquecida con los datos del
// cliente y su documento, tal como aparece en el reporte de fidelización.
type LoyaltyReportRow struct {
	CustomerID     string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DocumentType   string
	DocumentNumber string
	PurchaseDate   time.Time
	ProductName    string
	Quantity       int64
	UnitPrice      decimal.Decimal
}

// LoyaltyRepository consultas de solo lectura para el reporte de fidelización.
type LoyaltyRepository interface {
	// CustomerTotalsSince suma monto_total por cliente sobre compras COMPLETADA
	// con fecha >= since. Clientes sin compras que califiquen no aparecen.
	CustomerTotalsSince(ctx context.Context, since time.Time) ([]CustomerTotal, error)

	// PurchaseItemsForCustomers detalles de compra (con producto, cliente y documento)
	// de los clientes indicados, restringidos a COMPLETADA dentro de la misma ventana.
	PurchaseItemsForCustomers(ctx context.Context, since time.Time, customerIDs []string) ([]LoyaltyReportRow, error)
}
