package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// Columnas de parts más el nombre de la categoría (JOIN).
const partColumns = `
	p.id, p.name, p.description, p.part_number, p.category_id, c.name,
	p.unit_price, p.current_stock, p.minimum_stock, p.max_stock,
	p.location, p.supplier, p.created_at, p.updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL
// (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PartNumber, &p.CategoryID, &p.CategoryName,
		&p.UnitPrice, &p.CurrentStock, &p.MinimumStock, &p.MaxStock,
		&p.Location, &p.Supplier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartRepo) queryParts(query string, args ...any) ([]*entity.Part, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// FindAll lista todos los repuestos con el nombre de su categoría.
func (r *PartRepo) FindAll() ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p JOIN categories c ON c.id = p.category_id
		ORDER BY p.id`
	return r.queryParts(query)
}

// FindByID obtiene un repuesto por ID; nil si no existe.
func (r *PartRepo) FindByID(id int64) (*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// FindByIDForUpdate obtiene un repuesto bloqueando su fila (SELECT FOR
// UPDATE). Solo tiene sentido dentro de una transacción: serializa las
// mutaciones de stock concurrentes contra el mismo repuesto.
func (r *PartRepo) FindByIDForUpdate(id int64) (*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
		FOR UPDATE OF p`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part for update: %w", err)
	}
	return p, nil
}

// Search búsqueda filtrada y paginada; devuelve la página y el total de
// coincidencias. La subcadena se compara con ILIKE contra nombre, número de
// parte y descripción.
func (r *PartRepo) Search(filter repository.PartSearchFilter) ([]*entity.Part, int, error) {
	where := ``
	args := []any{}
	pos := 1
	if filter.Query != "" {
		where += fmt.Sprintf(` AND (p.name ILIKE '%%' || $%d || '%%' OR p.part_number ILIKE '%%' || $%d || '%%' OR p.description ILIKE '%%' || $%d || '%%')`, pos, pos, pos)
		args = append(args, filter.Query)
		pos++
	}
	if filter.CategoryID != nil {
		where += fmt.Sprintf(` AND p.category_id = $%d`, pos)
		args = append(args, *filter.CategoryID)
		pos++
	}
	if filter.LowStockOnly {
		where += ` AND p.current_stock <= p.minimum_stock`
	}

	countQuery := `SELECT COUNT(*) FROM parts p WHERE TRUE` + where
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count parts: %w", err)
	}

	pageQuery := `
		SELECT ` + partColumns + `
		FROM parts p JOIN categories c ON c.id = p.category_id
		WHERE TRUE` + where + fmt.Sprintf(`
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	list, err := r.queryParts(pageQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindLowStock repuestos con current_stock <= minimum_stock (inclusivo).
func (r *PartRepo) FindLowStock() ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + `
		FROM parts p JOIN categories c ON c.id = p.category_id
		WHERE p.current_stock <= p.minimum_stock
		ORDER BY p.id`
	return r.queryParts(query)
}

// Create persiste un nuevo repuesto y asigna el ID generado.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (name, description, part_number, category_id, unit_price,
			current_stock, minimum_stock, max_stock, location, supplier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		part.Name, part.Description, part.PartNumber, part.CategoryID, part.UnitPrice,
		part.CurrentStock, part.MinimumStock, part.MaxStock, part.Location, part.Supplier,
		part.CreatedAt, part.UpdatedAt,
	).Scan(&part.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// Update actualiza los campos editables de un repuesto. El stock NO se toca
// por aquí; solo vía UpdateStock desde el motor de inventario.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, description = $3, unit_price = $4,
			minimum_stock = $5, max_stock = $6, location = $7, supplier = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Description, part.UnitPrice,
		part.MinimumStock, part.MaxStock, part.Location, part.Supplier, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateStock fija el stock derivado y refresca updated_at (usado por el
// motor de inventario dentro de la misma transacción que el movimiento).
func (r *PartRepo) UpdateStock(partID int64, newStock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE parts SET current_stock = $2, updated_at = now() WHERE id = $1`,
		partID, newStock,
	)
	if err != nil {
		return fmt.Errorf("update part stock: %w", err)
	}
	return nil
}

// Delete elimina un repuesto por ID; devuelve false si no existía.
func (r *PartRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete part: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
