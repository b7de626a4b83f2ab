package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagotita/inventario-api/internal/application/report"
	"github.com/lagotita/inventario-api/internal/domain"
	"github.com/lagotita/inventario-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error      { r.movements = append(r.movements, m); return nil }
func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) { return nil, nil }
func (r *fakeMovementRepo) ListByProductAndRange(productID string, from, to time.Time) ([]*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) Update(m *entity.Movement) error               { return nil }
func (r *fakeMovementRepo) UpdateBalances(movs []*entity.Movement) error  { return nil }

type fakeProductRepo struct {
	product *entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.product != nil && r.product.ID == id {
		return r.product, nil
	}
	return nil, nil
}
func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error)      { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                      { return nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error)     { return r.GetByID(id) }
func (r *fakeProductRepo) AdjustStock(id string, delta int64) error            { return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error)   { return nil, nil }

// fakeGenerator captura el reporte recibido y devuelve bytes fijos.
type fakeGenerator struct {
	got *report.AnnualReport
}

func (g *fakeGenerator) GenerateAnnualReportPDF(_ context.Context, r *report.AnnualReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), nil
}

func mov(productID, kind string, qty int64, ts time.Time, voided bool) *entity.Movement {
	return &entity.Movement{
		ID:        productID + ts.String(),
		ProductID: productID,
		Kind:      kind,
		Quantity:  qty,
		Timestamp: ts,
		Source:    entity.MovementSourceManual,
		Voided:    voided,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildAnnualReport_UnidadesYMontos(t *testing.T) {
	product := &entity.Product{
		ID:    "p1",
		Code:  "A-001",
		Name:  "Botellón 20L",
		Price: decimal.RequireFromString("2.50"),
		Stock: 11,
	}
	movs := &fakeMovementRepo{}
	jan := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)
	movs.movements = []*entity.Movement{
		mov("p1", entity.MovementKindEntrada, 10, jan, false),
		mov("p1", entity.MovementKindSalida, 4, jan.Add(time.Hour), false),
		// Anulado: no debe sumar ni en unidades ni en montos
		mov("p1", entity.MovementKindEntrada, 5, time.Date(2025, time.March, 1, 9, 0, 0, 0, time.Local), true),
		// Otro año: fuera del reporte
		mov("p1", entity.MovementKindEntrada, 99, time.Date(2024, time.December, 31, 9, 0, 0, 0, time.Local), false),
	}

	uc := report.NewPDFUseCase(movs, &fakeProductRepo{product: product}, &fakeGenerator{})
	got, err := uc.BuildAnnualReport(context.Background(), "p1", 2025)
	require.NoError(t, err)

	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, int64(10), got.Months[0].Entries, "enero debe sumar la entrada")
	assert.Equal(t, int64(4), got.Months[0].Exits, "enero debe sumar la salida")
	assert.Equal(t, int64(0), got.Months[2].Entries, "el movimiento anulado de marzo no cuenta")

	// Montos = unidades × precio vigente (2.50)
	assert.True(t, got.Values[0].EntriesValue.Equal(decimal.RequireFromString("25.00")),
		"monto de entradas de enero: 10 × 2.50")
	assert.True(t, got.Values[0].ExitsValue.Equal(decimal.RequireFromString("10.00")),
		"monto de salidas de enero: 4 × 2.50")
	assert.True(t, got.Values[0].NetValue.Equal(decimal.RequireFromString("15.00")))

	// Totales del año
	assert.Equal(t, int64(10), got.TotalEntries)
	assert.Equal(t, int64(4), got.TotalExits)
	assert.Equal(t, int64(6), got.TotalNet)
	assert.True(t, got.TotalNetValue.Equal(decimal.RequireFromString("15.00")))
}

func TestGenerateAnnualReport_DelegaAlGenerador(t *testing.T) {
	product := &entity.Product{ID: "p1", Name: "Agua 600ml", Price: decimal.NewFromInt(1)}
	gen := &fakeGenerator{}
	uc := report.NewPDFUseCase(&fakeMovementRepo{}, &fakeProductRepo{product: product}, gen)

	pdfBytes, err := uc.GenerateAnnualReport(context.Background(), "p1", 2025)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	require.NotNil(t, gen.got, "el generador debe recibir el reporte armado")
	assert.Equal(t, "Agua 600ml", gen.got.Product.Name)
}

func TestBuildAnnualReport_ProductoInexistente(t *testing.T) {
	uc := report.NewPDFUseCase(&fakeMovementRepo{}, &fakeProductRepo{}, &fakeGenerator{})
	_, err := uc.BuildAnnualReport(context.Background(), "no-existe", 2025)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
