package dto

import "github.com/shopspring/decimal"

// PurchaseItemRequest línea de detalle en la creación de compra.
// Si PrecioUnitario se omite se usa el precio actual del producto.
type PurchaseItemRequest struct {
	ProductoID     string           `json:"productoId"`
	Cantidad       int64            `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario,omitempty"`
}

// CreatePurchaseRequest cuerpo de POST /api/v1/compras.
// Fecha opcional en RFC3339 (por defecto ahora); Status opcional (por defecto COMPLETADA).
type CreatePurchaseRequest struct {
	ClienteID string                `json:"clienteId"`
	Fecha     string                `json:"fecha,omitempty"`
	Status    string                `json:"status,omitempty"`
	Detalles  []PurchaseItemRequest `json:"detalles"`
}

// PurchaseItemResponse línea de detalle en respuestas.
type PurchaseItemResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"productoId"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra en respuestas.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	ClienteID  string                 `json:"clienteId"`
	Fecha      string                 `json:"fecha"`
	MontoTotal decimal.Decimal        `json:"montoTotal"`
	Status     string                 `json:"status"`
	Detalles   []PurchaseItemResponse `json:"detalles"`
}
