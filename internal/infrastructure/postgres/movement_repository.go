package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lagotita/inventario-api/internal/domain/entity"
	"github.com/lagotita/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, product_id, kind, quantity, description, user_name, occurred_at, source, available_after, voided, void_reason, voided_at, voided_by`

// Create persiste un movimiento del kardex. El ID viene pre-generado desde el
// caso de uso, así un reintento del caller no duplica el movimiento (PK).
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Kind, movement.Quantity,
		movement.Description, movement.UserName, movement.Timestamp, movement.Source,
		movement.AvailableAfter, movement.Voided, nullable(movement.VoidReason),
		movement.VoidedAt, nullable(movement.VoidedBy),
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByProductAndRange lista movimientos con occurred_at en [from, to),
// cronológico ascendente.
func (r *MovementRepo) ListByProductAndRange(productID string, from, to time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE product_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at ASC`
	return r.list(query, productID, from, to)
}

// ListByProduct lista todo el historial del producto, cronológico ascendente.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE product_id = $1
		ORDER BY occurred_at ASC`
	return r.list(query, productID)
}

// Update persiste cantidad, descripción y campos de anulación del movimiento.
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements
		SET quantity = $2, description = $3, available_after = $4,
		    voided = $5, void_reason = $6, voided_at = $7, voided_by = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Quantity, movement.Description, movement.AvailableAfter,
		movement.Voided, nullable(movement.VoidReason), movement.VoidedAt, nullable(movement.VoidedBy),
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update movement %s: no existe", movement.ID)
	}
	return nil
}

// UpdateBalances persiste los AvailableAfter recalculados.
func (r *MovementRepo) UpdateBalances(movements []*entity.Movement) error {
	query := `UPDATE movements SET available_after = $2 WHERE id = $1`
	for _, m := range movements {
		if _, err := r.q.Exec(context.Background(), query, m.ID, m.AvailableAfter); err != nil {
			return fmt.Errorf("update balance %s: %w", m.ID, err)
		}
	}
	return nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var out []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var voidReason, voidedBy *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.Kind, &m.Quantity, &m.Description, &m.UserName,
		&m.Timestamp, &m.Source, &m.AvailableAfter, &m.Voided,
		&voidReason, &m.VoidedAt, &voidedBy,
	)
	if err != nil {
		return nil, err
	}
	if voidReason != nil {
		m.VoidReason = *voidReason
	}
	if voidedBy != nil {
		m.VoidedBy = *voidedBy
	}
	return &m, nil
}

// nullable mapea "" a NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
