package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del inventario, identificado por un número de
// parte único. CurrentStock es el total derivado de sus transacciones y solo
// se modifica a través del motor de inventario, nunca por el CRUD.
type Part struct {
	ID           int64
	Name         string
	Description  *string
	PartNumber   string
	CategoryID   int64
	CategoryName string // se llena en consultas con JOIN, no es columna de parts
	UnitPrice    decimal.Decimal
	CurrentStock int
	MinimumStock int
	MaxStock     *int
	Location     *string
	Supplier     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el repuesto está en o por debajo de su mínimo (inclusivo).
func (p *Part) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}
