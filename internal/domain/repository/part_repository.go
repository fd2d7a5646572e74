package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// PartSearchFilter filtros para la búsqueda paginada de repuestos.
// Offset ya viene calculado desde la página 1-indexada del request.
type PartSearchFilter struct {
	Query        string // subcadena contra name, part_number y description
	CategoryID   *int64
	LowStockOnly bool
	Limit        int
	Offset       int
}

// PartRepository define el puerto de persistencia para Part (DIP).
// El stock NO se modifica por Update; solo vía UpdateStock desde el motor
// de inventario, dentro de la misma transacción SQL que el movimiento.
type PartRepository interface {
	FindAll() ([]*entity.Part, error)
	FindByID(id int64) (*entity.Part, error)
	// FindByIDForUpdate bloquea la fila del repuesto (SELECT ... FOR UPDATE)
	// para serializar mutaciones de stock concurrentes. Usar solo dentro de
	// una transacción.
	FindByIDForUpdate(id int64) (*entity.Part, error)
	Search(filter PartSearchFilter) ([]*entity.Part, int, error)
	FindLowStock() ([]*entity.Part, error)
	Create(part *entity.Part) error
	Update(part *entity.Part) error
	UpdateStock(partID int64, newStock int) error
	Delete(id int64) (bool, error)
}
