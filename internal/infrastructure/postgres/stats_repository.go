package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

const statsTopN = 5

// StatsRepo consultas de solo lectura para estadísticas agregadas del
// inventario.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// InventoryStats agregados globales del dashboard: conteos, valor total del
// inventario (Σ stock × precio unitario), repuestos en stock bajo, top-5 de
// salidas y top-5 de categorías por cantidad de repuestos.
func (r *StatsRepo) InventoryStats(ctx context.Context) (*repository.InventoryStatsResult, error) {
	const totalsQuery = `
	SELECT
	    (SELECT COUNT(*) FROM categories)                     AS total_categories,
	    COUNT(*)                                              AS total_parts,
	    COALESCE(SUM(p.current_stock * p.unit_price), 0)      AS total_value
	FROM parts p`

	var stats repository.InventoryStatsResult
	err := r.pool.QueryRow(ctx, totalsQuery).Scan(
		&stats.TotalCategories, &stats.TotalParts, &stats.TotalValue,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.InventoryStats totals: %w", err)
	}

	lowStock, err := r.lowStockParts(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockParts = lowStock

	fast, err := r.fastMovingParts(ctx, statsTopN)
	if err != nil {
		return nil, err
	}
	stats.FastMovingParts = fast

	top, err := r.categoryStats(ctx, statsTopN)
	if err != nil {
		return nil, err
	}
	stats.TopCategories = top

	return &stats, nil
}

// CategoryStats agregados de todas las categorías, ordenados por cantidad de
// repuestos descendente.
func (r *StatsRepo) CategoryStats(ctx context.Context) ([]repository.CategoryStatsResult, error) {
	return r.categoryStats(ctx, 0)
}

// categoryStats agrupa repuestos por categoría. Una categoría sin repuestos
// cuenta cero con valor cero (LEFT JOIN). limit 0 = sin límite.
func (r *StatsRepo) categoryStats(ctx context.Context, limit int) ([]repository.CategoryStatsResult, error) {
	query := `
	SELECT
	    c.id,
	    c.name,
	    COUNT(p.id)                                                          AS part_count,
	    COALESCE(SUM(p.current_stock * p.unit_price), 0)                     AS total_value,
	    COUNT(p.id) FILTER (WHERE p.current_stock <= p.minimum_stock)        AS low_stock_count
	FROM categories c
	LEFT JOIN parts p ON p.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY COUNT(p.id) DESC, c.id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats.CategoryStats: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryStatsResult
	for rows.Next() {
		var row repository.CategoryStatsResult
		if err := rows.Scan(
			&row.CategoryID, &row.CategoryName, &row.PartCount,
			&row.TotalValue, &row.LowStockCount,
		); err != nil {
			return nil, fmt.Errorf("stats.CategoryStats scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *StatsRepo) lowStockParts(ctx context.Context) ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p JOIN categories c ON c.id = p.category_id
		WHERE p.current_stock <= p.minimum_stock
		ORDER BY p.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.lowStockParts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("stats.lowStockParts scan: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *StatsRepo) fastMovingParts(ctx context.Context, limit int) ([]repository.FastMovingPart, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(t.quantity), 0), COUNT(t.id)
		FROM transactions t
		JOIN parts p ON p.id = t.part_id
		WHERE t.type = 'OUT'
		GROUP BY p.id, p.name
		ORDER BY SUM(t.quantity) DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.fastMovingParts: %w", err)
	}
	defer rows.Close()
	var list []repository.FastMovingPart
	for rows.Next() {
		var f repository.FastMovingPart
		if err := rows.Scan(&f.PartID, &f.PartName, &f.TotalOutQuantity, &f.TransactionCount); err != nil {
			return nil, fmt.Errorf("stats.fastMovingParts scan: %w", err)
		}
		f.AveragePerMonth = float64(f.TotalOutQuantity) / 12.0
		list = append(list, f)
	}
	return list, rows.Err()
}
