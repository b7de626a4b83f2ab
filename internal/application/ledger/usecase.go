// Package ledger implementa el caso de uso del kardex: registrar entradas y
// salidas, editar y anular movimientos, y derivar listados y resúmenes.
// Toda mutación corre en una transacción con la fila del producto bloqueada
// (SELECT FOR UPDATE), de modo que el stock y los saldos quedan consistentes
// o no cambia nada.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lagotita/inventario-api/internal/domain"
	"github.com/lagotita/inventario-api/internal/domain/entity"
	domledger "github.com/lagotita/inventario-api/internal/domain/ledger"
	"github.com/lagotita/inventario-api/internal/domain/repository"
)

// MovementLedger mantiene el historial ordenado de movimientos por producto y
// expone las operaciones que dejan los saldos consistentes.
type MovementLedger struct {
	txRunner    TxRunner
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewMovementLedger construye el caso de uso. movRepo y productRepo se usan
// para lecturas fuera de transacción (listados, resúmenes, export).
func NewMovementLedger(txRunner TxRunner, movRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementLedger {
	return &MovementLedger{
		txRunner:    txRunner,
		movRepo:     movRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// WithClock sustituye la fuente de tiempo (tests).
func (uc *MovementLedger) WithClock(now func() time.Time) *MovementLedger {
	uc.now = now
	return uc
}

// RecordEntry registra una entrada de mercancía: crea el movimiento ENTRADA
// con su saldo y suma la cantidad al stock del producto, en una sola transacción.
func (uc *MovementLedger) RecordEntry(ctx context.Context, productID string, quantity int64, description, userName string) (*entity.Movement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		previous, err := uc.previousBalance(movRepo, product)
		if err != nil {
			return err
		}
		now := uc.now()
		mov := &entity.Movement{
			ID:             uuid.New().String(),
			ProductID:      productID,
			Kind:           entity.MovementKindEntrada,
			Quantity:       quantity,
			Description:    description,
			UserName:       userName,
			Timestamp:      now,
			Source:         entity.MovementSourceManual,
			AvailableAfter: previous + quantity,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(productID, quantity); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordExit registra una salida de mercancía (venta o retiro manual).
// Rechaza con ErrInsufficientStock si la cantidad supera el saldo disponible.
func (uc *MovementLedger) RecordExit(ctx context.Context, productID string, quantity int64, description, userName, source string) (*entity.Movement, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	switch source {
	case "":
		source = entity.MovementSourceManual
	case entity.MovementSourceManual, entity.MovementSourceVenta:
	default:
		return nil, domain.ErrInvalidInput
	}
	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < quantity {
			return domain.ErrInsufficientStock
		}
		previous, err := uc.previousBalance(movRepo, product)
		if err != nil {
			return err
		}
		now := uc.now()
		mov := &entity.Movement{
			ID:             uuid.New().String(),
			ProductID:      productID,
			Kind:           entity.MovementKindSalida,
			Quantity:       quantity,
			Description:    description,
			UserName:       userName,
			Timestamp:      now,
			Source:         source,
			AvailableAfter: previous - quantity,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(productID, -quantity); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateMovement corrige cantidad y descripción de un movimiento no anulado.
// El stock del producto se ajusta por el delta con el signo del tipo, y los
// AvailableAfter del movimiento editado y de todos los posteriores se
// recalculan en la misma transacción (sin snapshots obsoletos).
func (uc *MovementLedger) UpdateMovement(ctx context.Context, movementID string, newQuantity int64, newDescription string) error {
	if newQuantity <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		found, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if found == nil {
			return domain.ErrNotFound
		}
		if found.Voided {
			return domain.ErrMovementVoided
		}
		product, err := productRepo.GetForUpdate(found.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		history, mov, opening, err := uc.loadHistory(movRepo, found.ProductID, movementID)
		if err != nil {
			return err
		}

		// Delta con signo según el tipo: aumentar una ENTRADA sube stock,
		// aumentar una SALIDA lo baja.
		delta := newQuantity - mov.Quantity
		if mov.Kind == entity.MovementKindSalida {
			delta = -delta
		}
		if product.Stock+delta < 0 {
			return domain.ErrInsufficientStock
		}

		mov.Quantity = newQuantity
		mov.Description = newDescription
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(mov.ProductID, delta); err != nil {
			return err
		}
		domledger.RecomputeBalances(history, opening)
		return movRepo.UpdateBalances(history)
	})
}

// VoidMovement anula un movimiento: transición definitiva que revierte su
// efecto sobre el stock y conserva el registro con su cantidad original.
func (uc *MovementLedger) VoidMovement(ctx context.Context, movementID, reason, voidedBy string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		found, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if found == nil {
			return domain.ErrNotFound
		}
		if found.Voided {
			return domain.ErrMovementVoided
		}
		product, err := productRepo.GetForUpdate(found.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		history, mov, opening, err := uc.loadHistory(movRepo, found.ProductID, movementID)
		if err != nil {
			return err
		}

		// Revertir el efecto: anular una ENTRADA resta del stock, anular una
		// SALIDA lo devuelve.
		delta := -mov.Quantity
		if mov.Kind == entity.MovementKindSalida {
			delta = mov.Quantity
		}
		if product.Stock+delta < 0 {
			return domain.ErrInsufficientStock
		}

		now := uc.now()
		mov.Voided = true
		mov.VoidReason = strings.TrimSpace(reason)
		mov.VoidedAt = &now
		mov.VoidedBy = voidedBy
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		if err := productRepo.AdjustStock(mov.ProductID, delta); err != nil {
			return err
		}
		domledger.RecomputeBalances(history, opening)
		return movRepo.UpdateBalances(history)
	})
}

// ListByProductAndMonth lista los movimientos del producto en un mes (0-11) y
// año, del más reciente al más antiguo. kind filtra por ENTRADA/SALIDA;
// vacío devuelve ambos.
func (uc *MovementLedger) ListByProductAndMonth(ctx context.Context, productID string, month, year int, kind string) ([]*entity.Movement, error) {
	if month < 0 || month > 11 {
		return nil, domain.ErrInvalidInput
	}
	switch kind {
	case "", entity.MovementKindEntrada, entity.MovementKindSalida:
	default:
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	from, to := domledger.MonthRange(month, year, time.Local)
	movs, err := uc.movRepo.ListByProductAndRange(productID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movement, 0, len(movs))
	// El repo entrega orden cronológico ascendente; la vista quiere el más
	// reciente primero.
	for i := len(movs) - 1; i >= 0; i-- {
		if kind != "" && movs[i].Kind != kind {
			continue
		}
		out = append(out, movs[i])
	}
	return out, nil
}

// SummarizeYear deriva los 12 resúmenes mensuales del año para el producto.
// Lectura puntual: no ofrece aislamiento frente a escrituras concurrentes.
func (uc *MovementLedger) SummarizeYear(ctx context.Context, productID string, year int) ([12]domledger.MonthSummary, error) {
	var zero [12]domledger.MonthSummary
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return zero, err
	}
	if product == nil {
		return zero, domain.ErrNotFound
	}
	movs, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return zero, err
	}
	return domledger.SummarizeYear(movs, year), nil
}

// previousBalance devuelve el saldo anterior a un movimiento nuevo: el
// AvailableAfter del último movimiento o, si no hay historial, el stock
// actual del producto.
func (uc *MovementLedger) previousBalance(movRepo repository.MovementRepository, product *entity.Product) (int64, error) {
	movs, err := movRepo.ListByProduct(product.ID)
	if err != nil {
		return 0, err
	}
	if len(movs) == 0 {
		return product.Stock, nil
	}
	return movs[len(movs)-1].AvailableAfter, nil
}

// loadHistory carga el historial completo del producto, localiza el movimiento
// a mutar dentro del slice y calcula el saldo de apertura con los valores aún
// intactos: el AvailableAfter del primer movimiento menos su efecto. Ese saldo
// no cambia con ediciones o anulaciones posteriores.
func (uc *MovementLedger) loadHistory(movRepo repository.MovementRepository, productID, movementID string) ([]*entity.Movement, *entity.Movement, int64, error) {
	history, err := movRepo.ListByProduct(productID)
	if err != nil {
		return nil, nil, 0, err
	}
	var target *entity.Movement
	for _, m := range history {
		if m.ID == movementID {
			target = m
			break
		}
	}
	if target == nil {
		return nil, nil, 0, domain.ErrNotFound
	}
	opening := history[0].AvailableAfter - history[0].Delta()
	return history, target, opening, nil
}
