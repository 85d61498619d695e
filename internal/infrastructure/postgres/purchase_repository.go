package postgres

import (
	"context"
	"fmt"

	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create inserta la compra y todos sus detalles. Llamar dentro de una transacción.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO compras (id, cliente_id, fecha, monto_total, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, p.ID, p.CustomerID, p.Date, p.Total, string(p.Status))
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}

	itemQuery := `
		INSERT INTO detalles_compra (id, compra_id, producto_id, cantidad_compra, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range p.Items {
		_, err := r.q.Exec(ctx, itemQuery, it.ID, p.ID, it.ProductID, it.Quantity, it.UnitPrice)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate // producto repetido en la misma compra
			}
			return fmt.Errorf("insert detalle de compra: %w", err)
		}
	}
	return nil
}

// ListByCustomer devuelve las compras de un cliente con sus detalles, más reciente primero.
func (r *PurchaseRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Purchase, error) {
	query := `
		SELECT id, cliente_id, fecha, monto_total, status
		FROM compras WHERE cliente_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	byID := make(map[string]*entity.Purchase)
	for rows.Next() {
		var p entity.Purchase
		var status string
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.Date, &p.Total, &status); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		p.Status = entity.PurchaseStatus(status)
		list = append(list, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	itemQuery := `
		SELECT d.id, d.compra_id, d.producto_id, d.cantidad_compra, d.precio_unitario
		FROM detalles_compra d
		JOIN compras c ON c.id = d.compra_id
		WHERE c.cliente_id = $1`
	itemRows, err := r.q.Query(ctx, itemQuery, customerID)
	if err != nil {
		return nil, fmt.Errorf("list detalles de compra: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.PurchaseItem
		if err := itemRows.Scan(&it.ID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan detalle de compra: %w", err)
		}
		if p, ok := byID[it.PurchaseID]; ok {
			p.Items = append(p.Items, it)
		}
	}
	return list, itemRows.Err()
}
