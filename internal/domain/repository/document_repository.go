package repository

import (
	"context"

	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
)

// DocumentRepository puerto de persistencia para Document (1:1 con Customer).
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	// GetByTypeAndNumber búsqueda principal: el par (tipo, número) es único global.
	GetByTypeAndNumber(ctx context.Context, docType entity.DocumentType, number string) (*entity.Document, error)
	GetByCustomerID(ctx context.Context, customerID string) (*entity.Document, error)
}
