package repository

import (
	"time"

	"github.com/lagotita/inventario-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos del kardex.
// El historial es lógicamente append-only: Update existe solo para las
// excepciones explícitas de edición y anulación (y el recálculo de saldos).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// ListByProductAndRange lista movimientos con Timestamp en [from, to),
	// en orden cronológico ascendente.
	ListByProductAndRange(productID string, from, to time.Time) ([]*entity.Movement, error)
	// ListByProduct lista todo el historial del producto en orden cronológico ascendente.
	ListByProduct(productID string) ([]*entity.Movement, error)
	Update(movement *entity.Movement) error
	// UpdateBalances persiste únicamente AvailableAfter de los movimientos dados
	// (recalculo de saldos tras una edición o anulación).
	UpdateBalances(movements []*entity.Movement) error
}
