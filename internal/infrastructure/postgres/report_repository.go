package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y las vistas de
// inventario.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CountParts devuelve el número de repuestos distintos.
func (r *ReportRepo) CountParts() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM parts`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("report.CountParts: %w", err)
	}
	return n, nil
}

// CountEntriesBetween cuenta movimientos de un tipo en [from, to).
func (r *ReportRepo) CountEntriesBetween(transType string, from, to time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT count(*) FROM ledger_entries WHERE trans_type = $1 AND created_at >= $2 AND created_at < $3`,
		transType, from, to,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("report.CountEntriesBetween: %w", err)
	}
	return n, nil
}

// ListLowStock devuelve los repuestos con stock < stock_min, los más críticos
// primero.
func (r *ReportRepo) ListLowStock() ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE stock < stock_min ORDER BY stock ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("report.ListLowStock: %w", err)
	}
	defer rows.Close()

	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(
			&p.ID, &p.PartNumber, &p.Name, &p.Spec, &p.Unit,
			&p.Stock, &p.StockMin, &p.StockMax, &p.UnitPrice, &p.SupplierID,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("report.ListLowStock scan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// StockValuation suma stock × precio unitario de todo el almacén.
// COALESCE devuelve cero si no hay repuestos.
func (r *ReportRepo) StockValuation() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(stock * unit_price), 0) FROM parts`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("report.StockValuation: %w", err)
	}
	return total, nil
}

// InventoryTotals devuelve los agregados globales del inventario en una sola
// pasada.
func (r *ReportRepo) InventoryTotals() (*repository.InventoryTotals, error) {
	const query = `
	SELECT
	    count(*)                                              AS total_parts,
	    COALESCE(SUM(stock), 0)                               AS total_stock,
	    count(*) FILTER (WHERE stock < stock_min)             AS low_stock_parts,
	    count(*) FILTER (WHERE stock = 0)                     AS out_of_stock_parts
	FROM parts`
	var t repository.InventoryTotals
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&t.TotalParts, &t.TotalStock, &t.LowStockParts, &t.OutOfStockParts,
	)
	if err != nil {
		return nil, fmt.Errorf("report.InventoryTotals: %w", err)
	}
	return &t, nil
}

// DailySummary agrupa unidades movidas por día y tipo, orden cronológico.
func (r *ReportRepo) DailySummary(from, to *time.Time) ([]repository.DailySummaryRow, error) {
	query := `
	SELECT DATE_TRUNC('day', created_at) AS date, trans_type, SUM(quantity) AS total_quantity
	FROM ledger_entries
	WHERE ($1::timestamptz IS NULL OR created_at >= $1)
	  AND ($2::timestamptz IS NULL OR created_at <= $2)
	GROUP BY date, trans_type
	ORDER BY date ASC`
	rows, err := r.pool.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.DailySummary: %w", err)
	}
	defer rows.Close()

	var list []repository.DailySummaryRow
	for rows.Next() {
		var row repository.DailySummaryRow
		if err := rows.Scan(&row.Date, &row.TransType, &row.TotalQuantity); err != nil {
			return nil, fmt.Errorf("report.DailySummary scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
