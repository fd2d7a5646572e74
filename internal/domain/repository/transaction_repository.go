package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// FastMovingPart resultado del ranking de repuestos por salidas (OUT).
type FastMovingPart struct {
	PartID           int64
	PartName         string
	TotalOutQuantity int
	TransactionCount int
	AveragePerMonth  float64
}

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
type TransactionRepository interface {
	FindAll() ([]*entity.Transaction, error)
	FindByID(id int64) (*entity.Transaction, error)
	FindByPartID(partID int64) ([]*entity.Transaction, error)
	Create(tx *entity.Transaction) error
	UpdatePayment(id int64, amountPaid decimal.Decimal, isPaid bool) (*entity.Transaction, error)
	Delete(id int64) (bool, error)
	FastMovingParts(limit int) ([]FastMovingPart, error)
}
