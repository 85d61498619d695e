package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Puede aparecer en muchos detalles de compra;
// no se puede eliminar mientras algún detalle lo referencie (FK RESTRICT).
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta en COP, >= 0
	CreatedAt time.Time
}
