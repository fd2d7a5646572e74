package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

func TestTransactionUpdatePayment_SoloCamposDePago(t *testing.T) {
	txRepo := newFakeTransactionRepo(&entity.Transaction{
		ID:       1,
		PartID:   1,
		Type:     entity.TransactionTypeOUT,
		Quantity: 3,
		IsPaid:   false,
	})
	uc := usecase.NewTransactionUseCase(txRepo)

	out, err := uc.UpdatePayment(1, dto.PaymentUpdateRequest{
		AmountPaid: decimal.RequireFromString("76.50"),
		IsPaid:     true,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.IsPaid)
	assert.True(t, out.AmountPaid.Equal(decimal.RequireFromString("76.50")))
	assert.Equal(t, 3, out.Quantity, "el resto de campos queda intacto")
}

func TestTransactionUpdatePayment_Inexistente(t *testing.T) {
	uc := usecase.NewTransactionUseCase(newFakeTransactionRepo())

	out, err := uc.UpdatePayment(99, dto.PaymentUpdateRequest{IsPaid: true})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Eliminar una transacción no recalcula el stock; esa decisión queda en el
// llamador. Aquí solo se verifica el contrato eliminado/no-existía.
func TestTransactionDelete(t *testing.T) {
	txRepo := newFakeTransactionRepo(&entity.Transaction{ID: 1, PartID: 1, Type: entity.TransactionTypeIN})
	uc := usecase.NewTransactionUseCase(txRepo)

	deleted, err := uc.Delete(1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTransactionFastMoving_MapeoYLimite(t *testing.T) {
	txRepo := newFakeTransactionRepo()
	txRepo.fastMoving = []repository.FastMovingPart{
		{PartID: 1, PartName: "Filtro de aceite", TotalOutQuantity: 120, TransactionCount: 14, AveragePerMonth: 10},
		{PartID: 2, PartName: "Bujía", TotalOutQuantity: 36, TransactionCount: 9, AveragePerMonth: 3},
	}
	uc := usecase.NewTransactionUseCase(txRepo)

	out, err := uc.FastMoving(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].PartID)
	assert.Equal(t, 120, out[0].TotalOutQuantity)
	assert.InDelta(t, 10, out[0].AveragePerMonth, 0.001)
}
