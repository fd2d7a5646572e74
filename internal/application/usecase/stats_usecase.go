package usecase

import (
	"context"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// StatsUseCase consultas agregadas para el dashboard de inventario.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// InventoryStats agregados globales: conteos, valor total del inventario
// (Σ stock × precio unitario), stock bajo, top-5 de salidas y top-5 de
// categorías por cantidad de repuestos.
func (uc *StatsUseCase) InventoryStats(ctx context.Context) (*dto.InventoryStatsResponse, error) {
	stats, err := uc.repo.InventoryStats(ctx)
	if err != nil {
		return nil, err
	}
	fast := make([]dto.FastMovingPartResponse, 0, len(stats.FastMovingParts))
	for _, f := range stats.FastMovingParts {
		fast = append(fast, dto.FastMovingPartResponse{
			PartID:           f.PartID,
			PartName:         f.PartName,
			TotalOutQuantity: f.TotalOutQuantity,
			TransactionCount: f.TransactionCount,
			AveragePerMonth:  f.AveragePerMonth,
		})
	}
	return &dto.InventoryStatsResponse{
		TotalCategories: stats.TotalCategories,
		TotalParts:      stats.TotalParts,
		TotalValue:      stats.TotalValue,
		LowStockParts:   toPartResponses(stats.LowStockParts),
		FastMovingParts: fast,
		TopCategories:   toCategoryStatsResponses(stats.TopCategories),
	}, nil
}

// CategoryStats agregados por categoría, ordenados por cantidad de repuestos.
func (uc *StatsUseCase) CategoryStats(ctx context.Context) ([]dto.CategoryStatsResponse, error) {
	stats, err := uc.repo.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryStatsResponses(stats), nil
}

func toCategoryStatsResponses(list []repository.CategoryStatsResult) []dto.CategoryStatsResponse {
	items := make([]dto.CategoryStatsResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.CategoryStatsResponse{
			CategoryID:    s.CategoryID,
			CategoryName:  s.CategoryName,
			PartCount:     s.PartCount,
			TotalValue:    s.TotalValue,
			LowStockCount: s.LowStockCount,
		})
	}
	return items
}
