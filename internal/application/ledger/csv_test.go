package ledger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagotita/inventario-api/internal/domain"
	"github.com/lagotita/inventario-api/internal/domain/entity"
)

// parseCsvRow deshace una fila del export: la descripción va siempre entre
// comillas dobles, el resto de campos no lleva comas.
func parseCsvRow(t *testing.T, row string) (fecha, tipo, cantidad, descripcion, usuario, fuente string) {
	t.Helper()
	open := strings.Index(row, `,"`)
	closeIdx := strings.LastIndex(row, `",`)
	require.Greater(t, open, 0, "fila sin descripción entre comillas: %s", row)
	require.Greater(t, closeIdx, open)

	head := strings.SplitN(row[:open], ",", 3)
	require.Len(t, head, 3)
	tail := strings.SplitN(row[closeIdx+2:], ",", 2)
	require.Len(t, tail, 2)

	return head[0], head[1], head[2], row[open+2 : closeIdx], tail[0], tail[1]
}

func TestExportMonthlyCSV_FormatoYOrden(t *testing.T) {
	uc, _, _ := newTestLedger(t, 0)
	ctx := context.Background()

	_, err := uc.RecordEntry(ctx, "p1", 10, "caja de 10", "Carmen")
	require.NoError(t, err)
	_, err = uc.RecordExit(ctx, "p1", 4, "venta mostrador", "Luis", entity.MovementSourceVenta)
	require.NoError(t, err)

	out, err := uc.ExportMonthlyCSV(ctx, "p1", 0, 2025)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "cabecera + 2 movimientos")
	assert.Equal(t, "Fecha,Tipo,Cantidad,Descripción,Usuario,Fuente", lines[0])

	fecha, tipo, cantidad, desc, usuario, fuente := parseCsvRow(t, lines[1])
	assert.Regexp(t, `^\d{2}/\d{2}/\d{4} \d{2}:\d{2}$`, fecha)
	assert.Equal(t, "Entrada", tipo)
	assert.Equal(t, "10", cantidad)
	assert.Equal(t, "caja de 10", desc)
	assert.Equal(t, "Carmen", usuario)
	assert.Equal(t, "Manual", fuente)

	_, tipo2, _, _, _, fuente2 := parseCsvRow(t, lines[2])
	assert.Equal(t, "Salida", tipo2, "orden cronológico ascendente: la salida va después")
	assert.Equal(t, "Venta", fuente2)
}

// Round-trip: exportar y parsear devuelve las mismas tuplas, módulo el
// escape de comillas (" → '').
func TestExportMonthlyCSV_RoundTripConEscapes(t *testing.T) {
	uc, _, _ := newTestLedger(t, 0)
	ctx := context.Background()

	_, err := uc.RecordEntry(ctx, "p1", 3, `botellón "retornable", 20L`, "Carmen")
	require.NoError(t, err)

	out, err := uc.ExportMonthlyCSV(ctx, "p1", 0, 2025)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	_, _, cantidad, desc, usuario, _ := parseCsvRow(t, lines[1])
	assert.Equal(t, "3", cantidad)
	assert.Equal(t, "botellón ''retornable'', 20L", desc, "comilla doble escapada como ''")
	assert.Equal(t, "Carmen", usuario)
}

func TestExportMonthlyCSV_MesVacioSoloCabecera(t *testing.T) {
	uc, _, _ := newTestLedger(t, 0)

	out, err := uc.ExportMonthlyCSV(context.Background(), "p1", 7, 2025)
	require.NoError(t, err)
	assert.Equal(t, "Fecha,Tipo,Cantidad,Descripción,Usuario,Fuente\n", out)
}

func TestExportMonthlyCSV_MesInvalido(t *testing.T) {
	uc, _, _ := newTestLedger(t, 0)

	_, err := uc.ExportMonthlyCSV(context.Background(), "p1", 12, 2025)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportMonthlyCSV_IncluyeAnuladosConCantidadOriginal(t *testing.T) {
	uc, _, _ := newTestLedger(t, 0)
	ctx := context.Background()

	entrada, err := uc.RecordEntry(ctx, "p1", 5, "", "Carmen")
	require.NoError(t, err)
	require.NoError(t, uc.VoidMovement(ctx, entrada.ID, "error", "Carmen"))

	out, err := uc.ExportMonthlyCSV(ctx, "p1", 0, 2025)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2, "el export es detalle: los anulados aparecen")
	_, _, cantidad, _, _, _ := parseCsvRow(t, lines[1])
	assert.Equal(t, "5", cantidad)
}
