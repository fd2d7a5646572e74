package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// CreateTransactionUseCase registra movimientos de stock (IN, OUT, ADJUSTMENT)
// de forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre el
// repuesto y Commit/Rollback: la fila de la transacción y el stock actualizado
// se persisten juntos o no se persiste ninguno.
type CreateTransactionUseCase struct {
	txRunner TxRunner
}

// NewCreateTransactionUseCase construye el caso de uso.
func NewCreateTransactionUseCase(txRunner TxRunner) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{txRunner: txRunner}
}

// Create valida y aplica el efecto del movimiento sobre el stock del repuesto:
//
//	IN          stock += quantity
//	OUT         stock -= quantity (requiere stock >= quantity; piso en 0)
//	ADJUSTMENT  stock = quantity (fijación absoluta, sin chequeo de mínimo)
//
// El monto total se calcula como unitPrice × quantity, tomando el precio del
// repuesto cuando el request no trae uno.
func (uc *CreateTransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	var created *entity.Transaction

	err := uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		txRepo repository.TransactionRepository,
	) error {
		// Bloquea la fila del repuesto: serializa salidas concurrentes contra
		// el mismo repuesto mientras dura la validación de stock.
		part, err := partRepo.FindByIDForUpdate(in.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrPartNotFound
		}

		if in.Type == entity.TransactionTypeOUT && part.CurrentStock < in.Quantity {
			return &domain.InsufficientStockError{
				Available: part.CurrentStock,
				Requested: in.Quantity,
			}
		}

		unitPrice := part.UnitPrice
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		totalAmount := unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))

		newStock := applyMovement(part.CurrentStock, in.Type, in.Quantity)

		tx := &entity.Transaction{
			PartID:          in.PartID,
			PartName:        part.Name,
			Type:            in.Type,
			Quantity:        in.Quantity,
			UnitPrice:       &unitPrice,
			TotalAmount:     &totalAmount,
			RecipientName:   in.RecipientName,
			Reason:          in.Reason,
			IsPaid:          in.IsPaid,
			AmountPaid:      in.AmountPaid,
			TransactionDate: now,
			Notes:           in.Notes,
			CreatedAt:       now,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		// Segunda escritura de la unidad atómica: stock derivado y updated_at.
		if err := partRepo.UpdateStock(in.PartID, newStock); err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(created), nil
}

// applyMovement calcula el stock resultante. El piso en 0 para OUT es parte
// de la postcondición garantizada: el stock nunca queda negativo, aunque la
// validación previa ya lo impide.
func applyMovement(current int, txType string, quantity int) int {
	switch txType {
	case entity.TransactionTypeIN:
		return current + quantity
	case entity.TransactionTypeOUT:
		next := current - quantity
		if next < 0 {
			next = 0
		}
		return next
	case entity.TransactionTypeADJUSTMENT:
		return quantity
	}
	return current
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
