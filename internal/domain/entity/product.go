package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de la tienda.
// Stock es el saldo actual en unidades; lo mantiene el kardex en cada
// movimiento (entrada, salida, edición o anulación), nunca se escribe directo.
type Product struct {
	ID          string
	Code        string // código único del producto
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Stock       int64           // unidades disponibles
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
