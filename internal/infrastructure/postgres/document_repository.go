package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste el documento de un cliente.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documentos (id, tipo_documento, numero_documento, cliente_id)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, d.ID, string(d.Type), d.Number, d.CustomerID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// GetByTypeAndNumber busca un documento por el par único (tipo, número).
func (r *DocumentRepo) GetByTypeAndNumber(ctx context.Context, docType entity.DocumentType, number string) (*entity.Document, error) {
	query := `
		SELECT id, tipo_documento, numero_documento, cliente_id
		FROM documentos WHERE tipo_documento = $1 AND numero_documento = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, string(docType), number))
}

// GetByCustomerID obtiene el documento de un cliente (relación 1:1).
func (r *DocumentRepo) GetByCustomerID(ctx context.Context, customerID string) (*entity.Document, error) {
	query := `
		SELECT id, tipo_documento, numero_documento, cliente_id
		FROM documentos WHERE cliente_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, customerID))
}

func (r *DocumentRepo) scanOne(row pgx.Row) (*entity.Document, error) {
	var d entity.Document
	var tipo string
	err := row.Scan(&d.ID, &tipo, &d.Number, &d.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	d.Type = entity.DocumentType(tipo)
	return &d, nil
}
