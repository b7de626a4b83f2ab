// Package ledger contiene la lógica pura del kardex: saldos acumulados y
// resúmenes mensuales derivados de la lista de movimientos de un producto.
// No toca persistencia; opera sobre slices en memoria (servicio de dominio).
package ledger

import (
	"sort"
	"time"

	"github.com/lagotita/inventario-api/internal/domain/entity"
)

// MonthSummary es el agregado mensual de un producto. Es una vista derivada:
// se calcula siempre desde los movimientos, nunca se persiste por separado.
type MonthSummary struct {
	Month     int   // 0 = enero .. 11 = diciembre
	Entries   int64 // unidades entradas (sin anulados)
	Exits     int64 // unidades salidas (sin anulados)
	Total     int64 // Entries - Exits
	Available int64 // max(Total, 0)
	HasStock  bool  // Available > 0
}

// SummarizeYear calcula los 12 resúmenes mensuales de un año a partir de los
// movimientos del producto. Los movimientos anulados aportan 0 sin importar
// su cantidad original; movimientos de otros años se ignoran.
func SummarizeYear(movements []*entity.Movement, year int) [12]MonthSummary {
	var out [12]MonthSummary
	for i := range out {
		out[i].Month = i
	}
	for _, m := range movements {
		if m.Timestamp.Year() != year || m.Voided {
			continue
		}
		s := &out[int(m.Timestamp.Month())-1]
		switch m.Kind {
		case entity.MovementKindEntrada:
			s.Entries += m.Quantity
		case entity.MovementKindSalida:
			s.Exits += m.Quantity
		}
	}
	for i := range out {
		s := &out[i]
		s.Total = s.Entries - s.Exits
		s.Available = s.Total
		if s.Available < 0 {
			s.Available = 0
		}
		s.HasStock = s.Available > 0
	}
	return out
}

// InMonth informa si el movimiento cae en el mes (0-11) y año calendario dados.
func InMonth(m *entity.Movement, month, year int) bool {
	return m.Timestamp.Year() == year && int(m.Timestamp.Month())-1 == month
}

// MonthRange devuelve [desde, hasta) para un mes (0-11) y año calendario,
// en la zona horaria indicada.
func MonthRange(month, year int, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// RecomputeBalances recalcula AvailableAfter de todos los movimientos en orden
// cronológico partiendo de un saldo inicial. Muta los movimientos recibidos y
// devuelve el saldo final. Los anulados conservan el saldo vigente (aportan 0).
func RecomputeBalances(movements []*entity.Movement, opening int64) int64 {
	ordered := make([]*entity.Movement, len(movements))
	copy(ordered, movements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})
	balance := opening
	for _, m := range ordered {
		balance += m.Delta()
		m.AvailableAfter = balance
	}
	return balance
}
