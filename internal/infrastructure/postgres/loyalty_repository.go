package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

var _ repository.LoyaltyRepository = (*LoyaltyRepo)(nil)

// LoyaltyRepo consultas de solo lectura para el reporte de fidelización.
type LoyaltyRepo struct {
	q Querier
}

// NewLoyaltyRepository construye el adaptador de fidelización.
func NewLoyaltyRepository(q Querier) *LoyaltyRepo {
	return &LoyaltyRepo{q: q}
}

// CustomerTotalsSince suma monto_total por cliente sobre compras COMPLETADA desde `since`.
// El filtro por umbral se aplica en la capa de aplicación; aquí solo se agrupa.
func (r *LoyaltyRepo) CustomerTotalsSince(ctx context.Context, since time.Time) ([]repository.CustomerTotal, error) {
	const query = `
	SELECT co.cliente_id, SUM(co.monto_total) AS total
	FROM compras co
	WHERE co.fecha >= $1
	  AND co.status = $2
	GROUP BY co.cliente_id`

	rows, err := r.q.Query(ctx, query, since, string(entity.PurchaseStatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("loyalty.CustomerTotalsSince: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerTotal
	for rows.Next() {
		var row repository.CustomerTotal
		if err := rows.Scan(&row.CustomerID, &row.Total); err != nil {
			return nil, fmt.Errorf("loyalty.CustomerTotalsSince scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PurchaseItemsForCustomers une compras → detalles → productos → clientes → documentos
// para los clientes indicados, restringido a COMPLETADA dentro de la ventana.
// El documento se une con LEFT JOIN y COALESCE a 'N/A' por si faltara.
func (r *LoyaltyRepo) PurchaseItemsForCustomers(ctx context.Context, since time.Time, customerIDs []string) ([]repository.LoyaltyReportRow, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}
	const query = `
	SELECT
	    cl.id,
	    cl.nombre,
	    cl.apellido,
	    cl.correo_electronico,
	    cl.telefono_celular,
	    COALESCE(d.tipo_documento,   'N/A') AS tipo_documento,
	    COALESCE(d.numero_documento, 'N/A') AS numero_documento,
	    co.fecha,
	    p.nombre AS producto,
	    dc.cantidad_compra,
	    dc.precio_unitario
	FROM compras co
	JOIN detalles_compra dc ON dc.compra_id   = co.id
	JOIN productos       p  ON p.id           = dc.producto_id
	JOIN clientes        cl ON cl.id          = co.cliente_id
	LEFT JOIN documentos d  ON d.cliente_id   = cl.id
	WHERE co.fecha >= $1
	  AND co.status = $2
	  AND co.cliente_id = ANY($3)
	ORDER BY co.fecha DESC, p.nombre`

	rows, err := r.q.Query(ctx, query, since, string(entity.PurchaseStatusCompleted), customerIDs)
	if err != nil {
		return nil, fmt.Errorf("loyalty.PurchaseItemsForCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.LoyaltyReportRow
	for rows.Next() {
		var row repository.LoyaltyReportRow
		if err := rows.Scan(
			&row.CustomerID,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.Phone,
			&row.DocumentType,
			&row.DocumentNumber,
			&row.PurchaseDate,
			&row.ProductName,
			&row.Quantity,
			&row.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("loyalty.PurchaseItemsForCustomers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
