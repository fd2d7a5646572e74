package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddPartRequest entrada para crear un repuesto. Si InitialStock > 0 se
// siembra una transacción IN "Initial stock" en la misma transacción SQL.
type AddPartRequest struct {
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	PartNumber   string          `json:"partNumber"`
	CategoryID   int64           `json:"categoryId"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	InitialStock int             `json:"initialStock"`
	MinimumStock int             `json:"minimumStock"`
	MaxStock     *int            `json:"maxStock"`
	Location     *string         `json:"location"`
	Supplier     *string         `json:"supplier"`
}

// UpdatePartRequest actualización parcial de un repuesto. El stock nunca se
// actualiza por aquí; solo vía transacciones.
type UpdatePartRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	MinimumStock *int             `json:"minimumStock"`
	MaxStock     *int             `json:"maxStock"`
	Location     *string          `json:"location"`
	Supplier     *string          `json:"supplier"`
}

// SearchPartsRequest búsqueda filtrada y paginada (página 1-indexada).
type SearchPartsRequest struct {
	Query      *string `json:"query"`
	CategoryID *int64  `json:"categoryId"`
	LowStock   *bool   `json:"lowStock"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

// Defaults normaliza página y límite.
func (r *SearchPartsRequest) Defaults() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
}

// PartResponse salida de un repuesto.
type PartResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	PartNumber   string          `json:"partNumber"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	CurrentStock int             `json:"currentStock"`
	MinimumStock int             `json:"minimumStock"`
	MaxStock     *int            `json:"maxStock,omitempty"`
	Location     *string         `json:"location,omitempty"`
	Supplier     *string         `json:"supplier,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PaginatedPartsResponse página de resultados de búsqueda.
type PaginatedPartsResponse struct {
	Data       []PartResponse `json:"data"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}
