package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	FindAll() ([]*entity.Category, error)
	FindByID(id int64) (*entity.Category, error)
	Create(category *entity.Category) error
	Update(category *entity.Category) error
	Delete(id int64) (bool, error)
}
