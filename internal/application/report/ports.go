package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lagotita/inventario-api/internal/domain/entity"
	"github.com/lagotita/inventario-api/internal/domain/ledger"
)

// MonthValues montos mensuales del reporte (cantidad × precio unitario).
type MonthValues struct {
	EntriesValue decimal.Decimal
	ExitsValue   decimal.Decimal
	NetValue     decimal.Decimal
}

// AnnualReport datos listos para render: unidades y montos por mes + totales.
type AnnualReport struct {
	Product *entity.Product
	Year    int
	Months  [12]ledger.MonthSummary
	Values  [12]MonthValues

	TotalEntries int64
	TotalExits   int64
	TotalNet     int64

	TotalEntriesValue decimal.Decimal
	TotalExitsValue   decimal.Decimal
	TotalNetValue     decimal.Decimal
}

// ReportPDFGenerator renderiza el reporte anual a PDF.
type ReportPDFGenerator interface {
	GenerateAnnualReportPDF(ctx context.Context, report *AnnualReport) ([]byte, error)
}
