package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, part_number, part_name, spec, unit, stock, stock_min, stock_max, unit_price, supplier_id, created_at, updated_at`

// PartRepo implementación de PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un repuesto nuevo. Número de parte duplicado → ErrDuplicate.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, part_number, part_name, spec, unit, stock, stock_min, stock_max, unit_price, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.PartNumber, part.Name, part.Spec, part.Unit,
		part.Stock, part.StockMin, part.StockMax, part.UnitPrice, part.SupplierID,
		part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID. Devuelve nil si no existe.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	return r.scanOne(query, id, "get part")
}

// GetForUpdate obtiene el repuesto bloqueando su fila (SELECT ... FOR UPDATE).
// El lock se mantiene hasta el fin de la transacción que contiene al Querier.
func (r *PartRepo) GetForUpdate(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get part for update")
}

func (r *PartRepo) scanOne(query, id, op string) (*entity.Part, error) {
	var p entity.Part
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.PartNumber, &p.Name, &p.Spec, &p.Unit,
		&p.Stock, &p.StockMin, &p.StockMax, &p.UnitPrice, &p.SupplierID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// UpdateStock escribe el nuevo nivel de stock. Solo debe llamarse desde la
// unidad de trabajo del coordinador, con la fila ya bloqueada.
func (r *PartRepo) UpdateStock(id string, stock int) error {
	query := `UPDATE parts SET stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartNotFound
	}
	return nil
}

// Update actualiza los campos descriptivos, límites y proveedor. El stock
// queda fuera a propósito.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts
		SET part_number = $2, part_name = $3, spec = $4, unit = $5,
		    stock_min = $6, stock_max = $7, unit_price = $8, supplier_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.PartNumber, part.Name, part.Spec, part.Unit,
		part.StockMin, part.StockMax, part.UnitPrice, part.SupplierID, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// Delete elimina un repuesto por ID (y, por cascada, su historial en el libro).
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

// List busca por número o nombre (ILIKE) con paginación y proveedor resuelto.
func (r *PartRepo) List(search string, limit, offset int) ([]repository.PartWithSupplier, int, error) {
	where := ""
	args := []any{}
	if search != "" {
		where = `WHERE p.part_number ILIKE '%' || $1 || '%' OR p.part_name ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}

	var total int
	countQuery := `SELECT count(*) FROM parts p ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count parts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.part_number, p.part_name, p.spec, p.unit, p.stock, p.stock_min, p.stock_max,
		       p.unit_price, p.supplier_id, p.created_at, p.updated_at, s.supplier_name
		FROM parts p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		%s
		ORDER BY p.part_name ASC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	list, err := scanPartsWithSupplier(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListAllWithSupplier devuelve todos los repuestos con el nombre del proveedor
// (vista de detalle del inventario).
func (r *PartRepo) ListAllWithSupplier() ([]repository.PartWithSupplier, error) {
	query := `
		SELECT p.id, p.part_number, p.part_name, p.spec, p.unit, p.stock, p.stock_min, p.stock_max,
		       p.unit_price, p.supplier_id, p.created_at, p.updated_at, s.supplier_name
		FROM parts p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.part_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list parts with supplier: %w", err)
	}
	defer rows.Close()
	return scanPartsWithSupplier(rows)
}

func scanPartsWithSupplier(rows pgx.Rows) ([]repository.PartWithSupplier, error) {
	var list []repository.PartWithSupplier
	for rows.Next() {
		var row repository.PartWithSupplier
		p := &row.Part
		if err := rows.Scan(
			&p.ID, &p.PartNumber, &p.Name, &p.Spec, &p.Unit,
			&p.Stock, &p.StockMin, &p.StockMax, &p.UnitPrice, &p.SupplierID,
			&p.CreatedAt, &p.UpdatedAt, &row.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
