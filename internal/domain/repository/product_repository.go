package repository

import (
	"context"

	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	// Delete retorna domain.ErrConflict si el producto está referenciado por detalles de compra.
	Delete(ctx context.Context, id string) error
}
