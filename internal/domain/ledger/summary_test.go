package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagotita/inventario-api/internal/domain/entity"
	"github.com/lagotita/inventario-api/internal/domain/ledger"
)

func mov(kind string, qty int64, ts time.Time) *entity.Movement {
	return &entity.Movement{
		ID:        "m-" + ts.Format("20060102150405"),
		ProductID: "p1",
		Kind:      kind,
		Quantity:  qty,
		Timestamp: ts,
		Source:    entity.MovementSourceManual,
	}
}

func enero(day int) time.Time {
	return time.Date(2025, time.January, day, 10, 0, 0, 0, time.UTC)
}

func TestSummarizeYear_Devuelve12MesesOrdenados(t *testing.T) {
	out := ledger.SummarizeYear(nil, 2025)

	require.Len(t, out[:], 12, "siempre deben salir 12 resúmenes")
	for i, s := range out {
		assert.Equal(t, i, s.Month, "el índice de mes debe ser 0..11")
		assert.Zero(t, s.Entries)
		assert.Zero(t, s.Exits)
		assert.False(t, s.HasStock)
	}
}

func TestSummarizeYear_AgregaPorMes(t *testing.T) {
	movs := []*entity.Movement{
		mov(entity.MovementKindEntrada, 10, enero(5)),
		mov(entity.MovementKindSalida, 4, enero(10)),
		mov(entity.MovementKindEntrada, 7, time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)),
		// Otro año: no debe contar
		mov(entity.MovementKindEntrada, 99, time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)),
	}

	out := ledger.SummarizeYear(movs, 2025)

	assert.Equal(t, int64(10), out[0].Entries)
	assert.Equal(t, int64(4), out[0].Exits)
	assert.Equal(t, int64(6), out[0].Total)
	assert.Equal(t, int64(6), out[0].Available)
	assert.True(t, out[0].HasStock)

	assert.Equal(t, int64(7), out[2].Entries)
	assert.True(t, out[2].HasStock)
}

// Invariantes: Total = Entries - Exits y Available = max(Total, 0).
func TestSummarizeYear_AvailableNuncaNegativo(t *testing.T) {
	movs := []*entity.Movement{
		mov(entity.MovementKindEntrada, 3, enero(1)),
		mov(entity.MovementKindSalida, 8, enero(2)),
	}

	out := ledger.SummarizeYear(movs, 2025)

	assert.Equal(t, int64(-5), out[0].Total, "el total sí puede ser negativo")
	assert.Equal(t, int64(0), out[0].Available, "available se trunca en 0")
	assert.False(t, out[0].HasStock)
}

func TestSummarizeYear_AnuladosAportanCero(t *testing.T) {
	salida := mov(entity.MovementKindSalida, 4, enero(10))
	now := enero(11)
	salida.Voided = true
	salida.VoidReason = "registro duplicado"
	salida.VoidedAt = &now
	salida.VoidedBy = "Carmen"

	movs := []*entity.Movement{
		mov(entity.MovementKindEntrada, 10, enero(5)),
		salida,
	}

	out := ledger.SummarizeYear(movs, 2025)

	assert.Equal(t, int64(10), out[0].Entries)
	assert.Equal(t, int64(0), out[0].Exits, "la salida anulada no debe sumar")
	assert.Equal(t, int64(10), out[0].Available)
	assert.Equal(t, int64(4), salida.Quantity, "la cantidad original se conserva para auditoría")
}

func TestRecomputeBalances_RecorreCronologicamente(t *testing.T) {
	m1 := mov(entity.MovementKindEntrada, 10, enero(1))
	m2 := mov(entity.MovementKindSalida, 4, enero(2))
	m3 := mov(entity.MovementKindEntrada, 5, enero(3))

	// Desordenados a propósito: debe ordenar por fecha antes de recorrer.
	final := ledger.RecomputeBalances([]*entity.Movement{m3, m1, m2}, 0)

	assert.Equal(t, int64(10), m1.AvailableAfter)
	assert.Equal(t, int64(6), m2.AvailableAfter)
	assert.Equal(t, int64(11), m3.AvailableAfter)
	assert.Equal(t, int64(11), final)
}

func TestRecomputeBalances_IgnoraAnulados(t *testing.T) {
	m1 := mov(entity.MovementKindEntrada, 10, enero(1))
	m2 := mov(entity.MovementKindSalida, 4, enero(2))
	m2.Voided = true
	m2.VoidReason = "error de digitación"

	final := ledger.RecomputeBalances([]*entity.Movement{m1, m2}, 0)

	assert.Equal(t, int64(10), m1.AvailableAfter)
	assert.Equal(t, int64(10), m2.AvailableAfter, "el anulado hereda el saldo vigente")
	assert.Equal(t, int64(10), final)
}

func TestRecomputeBalances_SaldoInicial(t *testing.T) {
	m1 := mov(entity.MovementKindSalida, 2, enero(1))

	final := ledger.RecomputeBalances([]*entity.Movement{m1}, 5)

	assert.Equal(t, int64(3), m1.AvailableAfter)
	assert.Equal(t, int64(3), final)
}

func TestMonthRange_CubreElMesCompleto(t *testing.T) {
	from, to := ledger.MonthRange(0, 2025, time.UTC)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), to)

	assert.True(t, ledger.InMonth(mov(entity.MovementKindEntrada, 1, enero(31)), 0, 2025))
	assert.False(t, ledger.InMonth(mov(entity.MovementKindEntrada, 1, enero(31)), 1, 2025))
}
