package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lagotita/inventario-api/internal/application/report"
)

// ReportHandler reporte anual en PDF (protegido).
type ReportHandler struct {
	uc *report.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// AnnualPDF godoc
// @Summary      Reporte anual del producto en PDF
// @Description  Unidades y montos por mes del año indicado, con totales
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true  "ID del producto"
// @Param        year  query  int     true  "Año"
// @Success      200   {file}    file
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/report/pdf [get]
func (h *ReportHandler) AnnualPDF(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	pdfBytes, err := h.uc.GenerateAnnualReport(c.Context(), c.Params("id"), year)
	if err != nil {
		return ledgerError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte_%d.pdf"`, year))
	return c.Send(pdfBytes)
}
