package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para registrar un movimiento de stock.
// UnitPrice es opcional: si falta se toma el precio unitario del repuesto.
type CreateTransactionRequest struct {
	PartID        int64            `json:"partId"`
	Type          string           `json:"type"`
	Quantity      int              `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	RecipientName *string          `json:"recipientName"`
	Reason        *string          `json:"reason"`
	IsPaid        bool             `json:"isPaid"`
	AmountPaid    decimal.Decimal  `json:"amountPaid"`
	Notes         *string          `json:"notes"`
}

// PaymentUpdateRequest actualiza solo los campos de pago de una transacción.
type PaymentUpdateRequest struct {
	AmountPaid decimal.Decimal `json:"amountPaid"`
	IsPaid     bool            `json:"isPaid"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID              int64            `json:"id"`
	PartID          int64            `json:"partId"`
	PartName        string           `json:"partName,omitempty"`
	Type            string           `json:"type"`
	Quantity        int              `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unitPrice,omitempty"`
	TotalAmount     *decimal.Decimal `json:"totalAmount,omitempty"`
	RecipientName   *string          `json:"recipientName,omitempty"`
	Reason          *string          `json:"reason,omitempty"`
	IsPaid          bool             `json:"isPaid"`
	AmountPaid      decimal.Decimal  `json:"amountPaid"`
	TransactionDate time.Time        `json:"transactionDate"`
	Notes           *string          `json:"notes,omitempty"`
}

// FastMovingPartResponse entrada del ranking de repuestos con más salidas.
type FastMovingPartResponse struct {
	PartID           int64   `json:"partId"`
	PartName         string  `json:"partName"`
	TotalOutQuantity int     `json:"totalOutQuantity"`
	TransactionCount int     `json:"transactionCount"`
	AveragePerMonth  float64 `json:"averagePerMonth"`
}
