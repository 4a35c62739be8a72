package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no hay UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create añade un asiento al libro.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, part_id, user_id, trans_type, quantity, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.PartID, entry.UserID, entry.Type, entry.Quantity, entry.Remark, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// List devuelve movimientos filtrados, más recientes primero, con número y
// nombre del repuesto y username del actor resueltos.
func (r *LedgerRepo) List(filter repository.LedgerFilter) ([]repository.LedgerEntryRow, int, error) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.PartID != "" {
		add("e.part_id = $%d", filter.PartID)
	}
	if filter.UserID != "" {
		add("e.user_id = $%d", filter.UserID)
	}
	if filter.TransType != "" {
		add("e.trans_type = $%d", filter.TransType)
	}
	if filter.From != nil {
		add("e.created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("e.created_at <= $%d", *filter.To)
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT count(*) FROM ledger_entries e ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.part_id, e.user_id, e.trans_type, e.quantity, e.remark, e.created_at,
		       p.part_number, p.part_name, u.user_name
		FROM ledger_entries e
		JOIN parts p ON p.id = e.part_id
		JOIN users u ON u.id = e.user_id
		%s
		ORDER BY e.created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var list []repository.LedgerEntryRow
	for rows.Next() {
		var row repository.LedgerEntryRow
		e := &row.Entry
		if err := rows.Scan(
			&e.ID, &e.PartID, &e.UserID, &e.Type, &e.Quantity, &e.Remark, &e.CreatedAt,
			&row.PartNumber, &row.PartName, &row.Username,
		); err != nil {
			return nil, 0, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, row)
	}
	return list, total, rows.Err()
}

// ExistsByUser indica si el usuario tiene movimientos registrados.
func (r *LedgerRepo) ExistsByUser(userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE user_id = $1)`, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ledger exists by user: %w", err)
	}
	return exists, nil
}
