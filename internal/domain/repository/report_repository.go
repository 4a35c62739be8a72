package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// InventoryTotals agregados globales del inventario.
type InventoryTotals struct {
	TotalParts      int
	TotalStock      int
	LowStockParts   int // stock < stock_min
	OutOfStockParts int // stock = 0
}

// DailySummaryRow total de unidades movidas por día y tipo (gráfica del dashboard).
type DailySummaryRow struct {
	Date          time.Time
	TransType     string
	TotalQuantity int
}

// ReportRepository consultas de solo lectura sobre repuestos y libro de
// movimientos. Nunca escribe; el coordinador es el único escritor de stock.
type ReportRepository interface {
	CountParts() (int, error)
	// CountEntriesBetween cuenta movimientos de un tipo en [from, to).
	CountEntriesBetween(transType string, from, to time.Time) (int, error)
	// ListLowStock devuelve los repuestos con stock < stock_min, ordenados
	// del más crítico al menos.
	ListLowStock() ([]*entity.Part, error)
	// StockValuation devuelve la suma de stock × precio unitario.
	StockValuation() (decimal.Decimal, error)
	InventoryTotals() (*InventoryTotals, error)
	DailySummary(from, to *time.Time) ([]DailySummaryRow, error)
}
