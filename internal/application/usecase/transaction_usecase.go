package usecase

import (
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// TransactionUseCase consultas y operaciones sobre transacciones ya
// registradas. La creación (que muta stock) vive en el paquete inventory.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// List devuelve todas las transacciones, más recientes primero.
func (uc *TransactionUseCase) List() ([]dto.TransactionResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// GetByID obtiene una transacción; nil si no existe.
func (uc *TransactionUseCase) GetByID(id int64) (*dto.TransactionResponse, error) {
	t, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// ListByPart transacciones de un repuesto, más recientes primero.
func (uc *TransactionUseCase) ListByPart(partID int64) ([]dto.TransactionResponse, error) {
	list, err := uc.repo.FindByPartID(partID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// UpdatePayment actualiza solo amountPaid e isPaid; nil si no existe.
func (uc *TransactionUseCase) UpdatePayment(id int64, in dto.PaymentUpdateRequest) (*dto.TransactionResponse, error) {
	t, err := uc.repo.UpdatePayment(id, in.AmountPaid, in.IsPaid)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// Delete elimina una transacción; false si no existía. No revierte el efecto
// del movimiento sobre el stock del repuesto.
func (uc *TransactionUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

// FastMoving ranking de repuestos por cantidad total de salidas (OUT),
// descendente. averagePerMonth divide el total histórico entre 12, sin
// ventana temporal (pendiente de aclaración de producto).
func (uc *TransactionUseCase) FastMoving(limit int) ([]dto.FastMovingPartResponse, error) {
	list, err := uc.repo.FastMovingParts(limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FastMovingPartResponse, 0, len(list))
	for _, f := range list {
		items = append(items, dto.FastMovingPartResponse{
			PartID:           f.PartID,
			PartName:         f.PartName,
			TotalOutQuantity: f.TotalOutQuantity,
			TransactionCount: f.TransactionCount,
			AveragePerMonth:  f.AveragePerMonth,
		})
	}
	return items, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:              t.ID,
		PartID:          t.PartID,
		PartName:        t.PartName,
		Type:            t.Type,
		Quantity:        t.Quantity,
		UnitPrice:       t.UnitPrice,
		TotalAmount:     t.TotalAmount,
		RecipientName:   t.RecipientName,
		Reason:          t.Reason,
		IsPaid:          t.IsPaid,
		AmountPaid:      t.AmountPaid,
		TransactionDate: t.TransactionDate,
		Notes:           t.Notes,
	}
}

func toTransactionResponses(list []*entity.Transaction) []dto.TransactionResponse {
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return items
}
