package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// Columnas de transactions más el nombre del repuesto (JOIN).
const transactionColumns = `
	t.id, t.part_id, p.name, t.type, t.quantity, t.unit_price, t.total_amount,
	t.recipient_name, t.reason, t.is_paid, t.amount_paid, t.transaction_date,
	t.notes, t.created_at`

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.PartID, &t.PartName, &t.Type, &t.Quantity, &t.UnitPrice, &t.TotalAmount,
		&t.RecipientName, &t.Reason, &t.IsPaid, &t.AmountPaid, &t.TransactionDate,
		&t.Notes, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) queryTransactions(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// FindAll lista todas las transacciones, más recientes primero.
func (r *TransactionRepo) FindAll() ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t JOIN parts p ON p.id = t.part_id
		ORDER BY t.created_at DESC, t.id DESC`
	return r.queryTransactions(query)
}

// FindByID obtiene una transacción por ID; nil si no existe.
func (r *TransactionRepo) FindByID(id int64) (*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t JOIN parts p ON p.id = t.part_id
		WHERE t.id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// FindByPartID transacciones de un repuesto, más recientes primero.
func (r *TransactionRepo) FindByPartID(partID int64) ([]*entity.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t JOIN parts p ON p.id = t.part_id
		WHERE t.part_id = $1
		ORDER BY t.created_at DESC, t.id DESC`
	return r.queryTransactions(query, partID)
}

// Create persiste una transacción y asigna el ID generado.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (part_id, type, quantity, unit_price, total_amount,
			recipient_name, reason, is_paid, amount_paid, transaction_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		tx.PartID, tx.Type, tx.Quantity, tx.UnitPrice, tx.TotalAmount,
		tx.RecipientName, tx.Reason, tx.IsPaid, tx.AmountPaid, tx.TransactionDate,
		tx.Notes, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// UpdatePayment actualiza solo los campos de pago; nil si no existe.
func (r *TransactionRepo) UpdatePayment(id int64, amountPaid decimal.Decimal, isPaid bool) (*entity.Transaction, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE transactions SET amount_paid = $2, is_paid = $3 WHERE id = $1`,
		id, amountPaid, isPaid,
	)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

// Delete elimina una transacción por ID; devuelve false si no existía.
// No revierte el efecto del movimiento sobre el stock.
func (r *TransactionRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// FastMovingParts agrupa las salidas (OUT) por repuesto, suma cantidades y
// ordena descendente por el total. averagePerMonth divide el total histórico
// entre 12 (divisor fijo, sin ventana temporal).
func (r *TransactionRepo) FastMovingParts(limit int) ([]repository.FastMovingPart, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(t.quantity), 0), COUNT(t.id)
		FROM transactions t
		JOIN parts p ON p.id = t.part_id
		WHERE t.type = 'OUT'
		GROUP BY p.id, p.name
		ORDER BY SUM(t.quantity) DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("fast moving parts: %w", err)
	}
	defer rows.Close()
	var list []repository.FastMovingPart
	for rows.Next() {
		var f repository.FastMovingPart
		if err := rows.Scan(&f.PartID, &f.PartName, &f.TotalOutQuantity, &f.TransactionCount); err != nil {
			return nil, fmt.Errorf("scan fast moving part: %w", err)
		}
		f.AveragePerMonth = float64(f.TotalOutQuantity) / 12.0
		list = append(list, f)
	}
	return list, rows.Err()
}
