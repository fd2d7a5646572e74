package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// CategoryStatsResult agregados por categoría (conteo de repuestos, valor del
// inventario de la categoría y cuántos repuestos están en stock bajo).
type CategoryStatsResult struct {
	CategoryID    int64
	CategoryName  string
	PartCount     int
	TotalValue    decimal.Decimal
	LowStockCount int
}

// InventoryStatsResult agregados globales del inventario para el dashboard.
type InventoryStatsResult struct {
	TotalCategories int
	TotalParts      int
	TotalValue      decimal.Decimal
	LowStockParts   []*entity.Part
	FastMovingParts []FastMovingPart
	TopCategories   []CategoryStatsResult
}

// StatsRepository consultas de solo lectura para estadísticas agregadas.
type StatsRepository interface {
	InventoryStats(ctx context.Context) (*InventoryStatsResult, error)
	CategoryStats(ctx context.Context) ([]CategoryStatsResult, error)
}
