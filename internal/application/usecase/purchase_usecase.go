package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/riosdeldesierto/clientes-api/internal/application/dto"
	"github.com/riosdeldesierto/clientes-api/internal/domain"
	"github.com/riosdeldesierto/clientes-api/internal/domain/entity"
	"github.com/riosdeldesierto/clientes-api/internal/domain/repository"
)

// PurchaseTxRunner puerto de transacciones para registrar compra + detalles atómicamente.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// PurchaseUseCase registro y consulta de compras.
// El monto total siempre se recalcula desde los detalles: el valor almacenado
// nunca puede divergir de la suma cantidad × precio unitario.
type PurchaseUseCase struct {
	tx        PurchaseTxRunner
	customers repository.CustomerRepository
	purchases repository.PurchaseRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(tx PurchaseTxRunner, customers repository.CustomerRepository, purchases repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{tx: tx, customers: customers, purchases: purchases}
}

// Create valida y registra una compra con sus detalles en una sola transacción.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	clienteID := strings.TrimSpace(in.ClienteID)
	if clienteID == "" {
		return nil, fmt.Errorf("%w: el campo 'clienteId' es requerido", domain.ErrInvalidInput)
	}
	if len(in.Detalles) == 0 {
		return nil, fmt.Errorf("%w: la compra debe tener al menos un detalle", domain.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(in.Detalles))
	for _, d := range in.Detalles {
		if strings.TrimSpace(d.ProductoID) == "" {
			return nil, fmt.Errorf("%w: cada detalle requiere 'productoId'", domain.ErrInvalidInput)
		}
		if d.Cantidad <= 0 {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
		}
		if d.PrecioUnitario != nil && d.PrecioUnitario.IsNegative() {
			return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
		}
		if seen[d.ProductoID] {
			return nil, fmt.Errorf("%w: el producto '%s' está repetido en los detalles", domain.ErrInvalidInput, d.ProductoID)
		}
		seen[d.ProductoID] = true
	}

	status := entity.PurchaseStatusCompleted
	if strings.TrimSpace(in.Status) != "" {
		var err error
		status, err = entity.ParsePurchaseStatus(in.Status)
		if err != nil {
			return nil, err
		}
	}

	fecha := time.Now().UTC()
	if strings.TrimSpace(in.Fecha) != "" {
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(in.Fecha))
		if err != nil {
			return nil, fmt.Errorf("%w: formato de fecha inválido, use RFC3339", domain.ErrInvalidInput)
		}
		fecha = parsed.UTC()
	}

	customer, err := uc.customers.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente no encontrado", domain.ErrNotFound)
	}

	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		CustomerID: clienteID,
		Date:       fecha,
		Status:     status,
	}

	err = uc.tx.RunPurchase(ctx, func(purchaseRepo repository.PurchaseRepository, productRepo repository.ProductRepository) error {
		for _, d := range in.Detalles {
			product, err := productRepo.GetByID(ctx, d.ProductoID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: producto '%s' no encontrado", domain.ErrNotFound, d.ProductoID)
			}
			precio := product.Price
			if d.PrecioUnitario != nil {
				precio = *d.PrecioUnitario
			}
			purchase.Items = append(purchase.Items, entity.PurchaseItem{
				ID:         uuid.New().String(),
				PurchaseID: purchase.ID,
				ProductID:  d.ProductoID,
				Quantity:   d.Cantidad,
				UnitPrice:  precio,
			})
		}
		purchase.Total = purchase.ComputeTotal()
		if !purchase.Total.IsPositive() {
			return fmt.Errorf("%w: el monto total de la compra debe ser mayor que cero", domain.ErrInvalidInput)
		}
		return purchaseRepo.Create(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}

	return purchaseResponse(purchase), nil
}

// ListByCustomer devuelve el historial de compras de un cliente.
func (uc *PurchaseUseCase) ListByCustomer(ctx context.Context, clienteID string) ([]*dto.PurchaseResponse, error) {
	customer, err := uc.customers.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente no encontrado", domain.ErrNotFound)
	}
	list, err := uc.purchases.ListByCustomer(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, purchaseResponse(p))
	}
	return out, nil
}

func purchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:         p.ID,
		ClienteID:  p.CustomerID,
		Fecha:      p.Date.Format(time.RFC3339),
		MontoTotal: p.Total,
		Status:     string(p.Status),
	}
	for _, it := range p.Items {
		resp.Detalles = append(resp.Detalles, dto.PurchaseItemResponse{
			ID:             it.ID,
			ProductoID:     it.ProductID,
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice,
			Subtotal:       it.Subtotal(),
		})
	}
	return resp
}
