package dto

import "github.com/shopspring/decimal"

// CategoryStatsResponse agregados de una categoría.
type CategoryStatsResponse struct {
	CategoryID    int64           `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	PartCount     int             `json:"partCount"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	LowStockCount int             `json:"lowStockCount"`
}

// InventoryStatsResponse dashboard global del inventario.
type InventoryStatsResponse struct {
	TotalCategories int                      `json:"totalCategories"`
	TotalParts      int                      `json:"totalParts"`
	TotalValue      decimal.Decimal          `json:"totalValue"`
	LowStockParts   []PartResponse           `json:"lowStockParts"`
	FastMovingParts []FastMovingPartResponse `json:"fastMovingParts"`
	TopCategories   []CategoryStatsResponse  `json:"topCategories"`
}
