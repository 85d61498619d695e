package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
)

// PurchaseStatus estado de una compra. Solo las COMPLETADA cuentan para fidelización.
type PurchaseStatus string

const (
	PurchaseStatusCompleted PurchaseStatus = "COMPLETADA"
	PurchaseStatusCancelled PurchaseStatus = "CANCELADA"
	PurchaseStatusRefunded  PurchaseStatus = "REEMBOLSADA"
)

// ParsePurchaseStatus acepta el valor en cualquier caja y lo normaliza.
func ParsePurchaseStatus(s string) (PurchaseStatus, error) {
	switch PurchaseStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case PurchaseStatusCompleted:
		return PurchaseStatusCompleted, nil
	case PurchaseStatusCancelled:
		return PurchaseStatusCancelled, nil
	case PurchaseStatusRefunded:
		return PurchaseStatusRefunded, nil
	}
	return "", fmt.Errorf("%w: estado de compra inválido, valores válidos: COMPLETADA, CANCELADA, REEMBOLSADA", domain.ErrInvalidInput)
}

// Purchase compra de un cliente con una o más líneas de detalle.
// Total es denormalizado: se recalcula desde los detalles al crear la compra
// y debe ser > 0; las lecturas confían en el valor almacenado.
type Purchase struct {
	ID         string
	CustomerID string
	Date       time.Time
	Total      decimal.Decimal
	Status     PurchaseStatus
	Items      []PurchaseItem
}

// PurchaseItem línea de detalle: un producto dentro de una compra.
// Un producto no puede repetirse dentro de la misma compra (par compra+producto único).
type PurchaseItem struct {
	ID         string
	PurchaseID string
	ProductID  string
	Quantity   int64           // > 0
	UnitPrice  decimal.Decimal // >= 0
}

// Subtotal cantidad × precio unitario de la línea.
func (i PurchaseItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// ComputeTotal suma de subtotales de los detalles de la compra.
func (p Purchase) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
