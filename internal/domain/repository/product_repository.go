package repository

import "github.com/lagotita/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// serializar las mutaciones del kardex sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	// AdjustStock suma delta (puede ser negativo) al stock del producto.
	AdjustStock(id string, delta int64) error
	List(limit, offset int) ([]*entity.Product, error)
}
