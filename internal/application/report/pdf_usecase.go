// Package report arma el reporte anual de un producto: unidades por mes,
// montos (cantidad × precio unitario vigente) y totales del año, y delega el
// render a un generador de PDF.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lagotita/inventario-api/internal/domain"
	"github.com/lagotita/inventario-api/internal/domain/ledger"
	"github.com/lagotita/inventario-api/internal/domain/repository"
)

// PDFUseCase caso de uso del reporte anual en PDF.
type PDFUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	generator   ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{movRepo: movRepo, productRepo: productRepo, generator: generator}
}

// GenerateAnnualReport calcula el reporte del año y devuelve los bytes del PDF.
func (uc *PDFUseCase) GenerateAnnualReport(ctx context.Context, productID string, year int) ([]byte, error) {
	report, err := uc.BuildAnnualReport(ctx, productID, year)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateAnnualReportPDF(ctx, report)
}

// BuildAnnualReport deriva los datos del reporte desde el kardex. Los montos
// usan el precio de venta vigente del producto (la app no guarda precios
// históricos por movimiento).
func (uc *PDFUseCase) BuildAnnualReport(ctx context.Context, productID string, year int) (*AnnualReport, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	report := &AnnualReport{
		Product:           product,
		Year:              year,
		Months:            ledger.SummarizeYear(movs, year),
		TotalEntriesValue: decimal.Zero,
		TotalExitsValue:   decimal.Zero,
		TotalNetValue:     decimal.Zero,
	}
	for i, s := range report.Months {
		entriesValue := decimal.NewFromInt(s.Entries).Mul(product.Price)
		exitsValue := decimal.NewFromInt(s.Exits).Mul(product.Price)
		report.Values[i] = MonthValues{
			EntriesValue: entriesValue,
			ExitsValue:   exitsValue,
			NetValue:     entriesValue.Sub(exitsValue),
		}
		report.TotalEntries += s.Entries
		report.TotalExits += s.Exits
		report.TotalEntriesValue = report.TotalEntriesValue.Add(entriesValue)
		report.TotalExitsValue = report.TotalExitsValue.Add(exitsValue)
	}
	report.TotalNet = report.TotalEntries - report.TotalExits
	report.TotalNetValue = report.TotalEntriesValue.Sub(report.TotalExitsValue)
	return report, nil
}
