package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lagotita/inventario-api/internal/application/dto"
	"github.com/lagotita/inventario-api/internal/application/ledger"
	"github.com/lagotita/inventario-api/internal/domain"
	"github.com/lagotita/inventario-api/internal/domain/entity"
)

// LedgerHandler maneja las peticiones HTTP del kardex (protegido).
type LedgerHandler struct {
	uc *ledger.MovementLedger
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.MovementLedger) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de mercancía
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RegisterEntryRequest  true  "quantity, description"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/entries [post]
func (h *LedgerHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RecordEntry(c.Context(), c.Params("id"), in.Quantity, in.Description, GetUserName(c))
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RegisterExit godoc
// @Summary      Registrar salida de mercancía
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RegisterExitRequest  true  "quantity, description, source (MANUAL|VENTA)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/exits [post]
func (h *LedgerHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.uc.RecordExit(c.Context(), c.Params("id"), in.Quantity, in.Description, GetUserName(c), in.Source)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// UpdateMovement godoc
// @Summary      Corregir cantidad/descripción de un movimiento (solo admin)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "quantity, description"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *LedgerHandler) UpdateMovement(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateMovement(c.Context(), c.Params("id"), in.Quantity, in.Description); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento actualizado"})
}

// VoidMovement godoc
// @Summary      Anular un movimiento (solo admin)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.VoidMovementRequest  true  "reason (obligatorio)"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/void [post]
func (h *LedgerHandler) VoidMovement(c *fiber.Ctx) error {
	var in dto.VoidMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.VoidMovement(c.Context(), c.Params("id"), in.Reason, GetUserName(c)); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento anulado"})
}

// ListMovements godoc
// @Summary      Movimientos de un producto en un mes
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        month  query  int     true   "Mes 0-11"
// @Param        year   query  int     true   "Año"
// @Param        kind   query  string  false  "ENTRADA | SALIDA (vacío = ambos)"
// @Success      200    {array}   dto.MovementResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *LedgerHandler) ListMovements(c *fiber.Ctx) error {
	month := c.QueryInt("month", -1)
	year := c.QueryInt("year", 0)
	movs, err := h.uc.ListByProductAndMonth(c.Context(), c.Params("id"), month, year, c.Query("kind"))
	if err != nil {
		return ledgerError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

// SummarizeYear godoc
// @Summary      Resumen mensual del año (12 meses)
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true  "ID del producto"
// @Param        year  query  int     true  "Año"
// @Success      200   {array}   dto.MonthSummaryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/summary [get]
func (h *LedgerHandler) SummarizeYear(c *fiber.Ctx) error {
	summary, err := h.uc.SummarizeYear(c.Context(), c.Params("id"), c.QueryInt("year", 0))
	if err != nil {
		return ledgerError(c, err)
	}
	out := make([]dto.MonthSummaryResponse, 0, 12)
	for _, s := range summary {
		out = append(out, dto.MonthSummaryResponse{
			Month:     s.Month,
			Entries:   s.Entries,
			Exits:     s.Exits,
			Total:     s.Total,
			Available: s.Available,
			HasStock:  s.HasStock,
		})
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Export CSV de los movimientos de un mes
// @Tags         ledger
// @Security     Bearer
// @Produce      text/csv
// @Param        id     path   string  true  "ID del producto"
// @Param        month  query  int     true  "Mes 0-11"
// @Param        year   query  int     true  "Año"
// @Success      200    {string}  string
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/products/{id}/export/csv [get]
func (h *LedgerHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.uc.ExportMonthlyCSV(c.Context(), c.Params("id"), c.QueryInt("month", -1), c.QueryInt("year", 0))
	if err != nil {
		return ledgerError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
	return c.SendString(out)
}

// ledgerError mapea errores de dominio del kardex a códigos HTTP.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o movimiento no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrMovementVoided):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MOVEMENT_VOIDED", Message: "el movimiento ya está anulado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		ProductID:      m.ProductID,
		Kind:           m.Kind,
		Quantity:       m.Quantity,
		Description:    m.Description,
		UserName:       m.UserName,
		Timestamp:      m.Timestamp,
		Source:         m.Source,
		AvailableAfter: m.AvailableAfter,
		Voided:         m.Voided,
		VoidReason:     m.VoidReason,
		VoidedAt:       m.VoidedAt,
		VoidedBy:       m.VoidedBy,
	}
}
