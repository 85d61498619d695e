package repository

import (
	"context"

	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// Delete elimina el cliente; documento y compras caen en cascada (FK).
	Delete(ctx context.Context, id string) error
}
