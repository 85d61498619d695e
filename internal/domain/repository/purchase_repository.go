package repository

import (
	"context"

	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para Purchase y sus detalles.
type PurchaseRepository interface {
	// Create inserta la compra y todos sus detalles. Debe ejecutarse dentro de
	// una transacción (ver postgres.TxRunner) para que no queden compras sin detalles.
	Create(ctx context.Context, purchase *entity.Purchase) error
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Purchase, error)
}
