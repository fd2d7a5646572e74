package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypeIN         = "IN"         // entrada: suma al stock
	TransactionTypeOUT        = "OUT"        // salida: resta del stock
	TransactionTypeADJUSTMENT = "ADJUSTMENT" // ajuste: fija el stock en la cantidad indicada
)

// ValidTransactionType verifica que t sea uno de los tipos soportados.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIN || t == TransactionTypeOUT || t == TransactionTypeADJUSTMENT
}

// Transaction registra un movimiento de stock contra un repuesto. Eliminarla
// no revierte su efecto sobre el stock (comportamiento documentado).
type Transaction struct {
	ID              int64
	PartID          int64
	PartName        string // se llena en consultas con JOIN
	Type            string // IN, OUT, ADJUSTMENT
	Quantity        int
	UnitPrice       *decimal.Decimal
	TotalAmount     *decimal.Decimal
	RecipientName   *string
	Reason          *string
	IsPaid          bool
	AmountPaid      decimal.Decimal
	TransactionDate time.Time
	Notes           *string
	CreatedAt       time.Time
}
