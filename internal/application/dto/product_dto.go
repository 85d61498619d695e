package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cuerpo de POST /api/v1/productos.
type CreateProductRequest struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}
