package dto

import "time"

// RegisterEntryRequest body para POST /api/products/:id/entries.
type RegisterEntryRequest struct {
	Quantity    int64  `json:"quantity"`
	Description string `json:"description,omitempty"`
}

// RegisterExitRequest body para POST /api/products/:id/exits.
type RegisterExitRequest struct {
	Quantity    int64  `json:"quantity"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"` // MANUAL (default) | VENTA
}

// UpdateMovementRequest body para PUT /api/movements/:id.
type UpdateMovementRequest struct {
	Quantity    int64  `json:"quantity"`
	Description string `json:"description"`
}

// VoidMovementRequest body para POST /api/movements/:id/void.
type VoidMovementRequest struct {
	Reason string `json:"reason"`
}

// MovementResponse representa un movimiento en respuestas HTTP.
type MovementResponse struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"product_id"`
	Kind           string     `json:"kind"`
	Quantity       int64      `json:"quantity"`
	Description    string     `json:"description,omitempty"`
	UserName       string     `json:"user_name"`
	Timestamp      time.Time  `json:"timestamp"`
	Source         string     `json:"source"`
	AvailableAfter int64      `json:"available_after"`
	Voided         bool       `json:"voided"`
	VoidReason     string     `json:"void_reason,omitempty"`
	VoidedAt       *time.Time `json:"voided_at,omitempty"`
	VoidedBy       string     `json:"voided_by,omitempty"`
}

// MonthSummaryResponse resumen mensual derivado del kardex.
type MonthSummaryResponse struct {
	Month     int   `json:"month"` // 0 = enero .. 11 = diciembre
	Entries   int64 `json:"entries"`
	Exits     int64 `json:"exits"`
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	HasStock  bool  `json:"has_stock"`
}
