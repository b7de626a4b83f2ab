package entity

import "time"

// Tipos de movimiento del kardex.
const (
	MovementKindEntrada = "ENTRADA" // entrada de mercancía (reposición)
	MovementKindSalida  = "SALIDA"  // salida de mercancía (venta o retiro manual)
)

// Origen del movimiento.
const (
	MovementSourceManual = "MANUAL" // registrado a mano desde la app
	MovementSourceVenta  = "VENTA"  // generado por una venta del POS
)

// Movement representa un movimiento de inventario de un producto.
//
// AvailableAfter es una caché desnormalizada del saldo acumulado justo después
// del movimiento; la fuente de verdad es el recorrido cronológico de los
// movimientos del producto y se recalcula cuando cambia un movimiento anterior.
//
// Un movimiento anulado (Voided) aporta 0 a saldos y resúmenes pero conserva
// su Quantity original para auditoría. La anulación es definitiva: una vez
// fijados VoidReason/VoidedAt/VoidedBy no se modifican ni se revierte.
type Movement struct {
	ID             string
	ProductID      string
	Kind           string // ENTRADA | SALIDA
	Quantity       int64  // > 0 al crearse; se conserva al anular
	Description    string
	UserName       string // quien registró el movimiento
	Timestamp      time.Time
	Source         string // MANUAL | VENTA
	AvailableAfter int64  // saldo del producto inmediatamente después del movimiento
	Voided         bool
	VoidReason     string // obligatorio y no vacío cuando Voided es true
	VoidedAt       *time.Time
	VoidedBy       string
}

// EffectiveQuantity devuelve la cantidad que aporta el movimiento a saldos y
// resúmenes: 0 si está anulado, Quantity en caso contrario.
func (m *Movement) EffectiveQuantity() int64 {
	if m.Voided {
		return 0
	}
	return m.Quantity
}

// Delta devuelve el efecto del movimiento sobre el stock con su signo
// (positivo para ENTRADA, negativo para SALIDA); 0 si está anulado.
func (m *Movement) Delta() int64 {
	q := m.EffectiveQuantity()
	if m.Kind == MovementKindSalida {
		return -q
	}
	return q
}
