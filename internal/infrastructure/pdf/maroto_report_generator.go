// Package pdf genera el reporte anual de inventario de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: La Gotita · Reporte anual  │  Producto + Año       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA UNIDADES: Mes | Entradas | Salidas | Total | Disp.   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA VALORES: Mes | Valor entradas | Valor salidas | Neto │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES DEL AÑO                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lagotita/inventario-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 2, Green: 119, Blue: 189} // azul "gotita"
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAnnualReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAnnualReportPDF(_ context.Context, rep *report.AnnualReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte anual de inventario", true).
		WithAuthor("La Gotita", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("UNIDADES POR MES"))
	m.AddRows(unitsHeaderRow())
	for _, r := range unitsRows(rep) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("VALORES POR MES (cantidad × precio unitario)"))
	m.AddRows(valuesHeaderRow())
	for _, r := range valuesRows(rep) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep *report.AnnualReport) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("La Gotita", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte anual de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(rep.Product.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Código: %s   |   Año: %d", rep.Product.Code, rep.Year), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func unitsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Mes", 4, align.Left),
		headerCell("Entradas", 2, align.Right),
		headerCell("Salidas", 2, align.Right),
		headerCell("Total", 2, align.Right),
		headerCell("Disponible", 2, align.Right),
	)
}

func unitsRows(rep *report.AnnualReport) []core.Row {
	rows := make([]core.Row, 0, 12)
	for i, s := range rep.Months {
		rows = append(rows, row.New(5).Add(
			bodyCell(monthNames[i], 4, align.Left),
			bodyCell(fmt.Sprintf("%d", s.Entries), 2, align.Right),
			bodyCell(fmt.Sprintf("%d", s.Exits), 2, align.Right),
			bodyCell(fmt.Sprintf("%d", s.Total), 2, align.Right),
			bodyCell(fmt.Sprintf("%d", s.Available), 2, align.Right),
		))
	}
	return rows
}

func valuesHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Mes", 4, align.Left),
		headerCell("Valor entradas", 3, align.Right),
		headerCell("Valor salidas", 3, align.Right),
		headerCell("Neto", 2, align.Right),
	)
}

func valuesRows(rep *report.AnnualReport) []core.Row {
	rows := make([]core.Row, 0, 12)
	for i, v := range rep.Values {
		rows = append(rows, row.New(5).Add(
			bodyCell(monthNames[i], 4, align.Left),
			bodyCell(money(v.EntriesValue), 3, align.Right),
			bodyCell(money(v.ExitsValue), 3, align.Right),
			bodyCell(money(v.NetValue), 2, align.Right),
		))
	}
	return rows
}

func totalsRow(rep *report.AnnualReport) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("TOTALES DEL AÑO", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Entradas: %d   |   Salidas: %d   |   Total: %d",
				rep.TotalEntries, rep.TotalExits, rep.TotalNet,
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Valor neto del año", props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(money(rep.TotalNetValue), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1,
	}))
}

func money(d decimal.Decimal) string {
	return "$ " + d.StringFixed(2)
}
