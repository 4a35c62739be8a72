package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO agregados del panel principal.
type DashboardSummaryDTO struct {
	PartVarietyCount int             `json:"part_variety_count"`
	TodayInCount     int             `json:"today_in_count"`
	TodayOutCount    int             `json:"today_out_count"`
	StockValuation   decimal.Decimal `json:"stock_valuation"` // Σ stock × precio unitario
	LowStockItems    []PartResponse  `json:"low_stock_items"`
}

// InventoryStatusDTO totales globales del inventario.
type InventoryStatusDTO struct {
	TotalParts      int `json:"total_parts"`
	TotalStock      int `json:"total_stock"`
	LowStockParts   int `json:"low_stock_parts"`
	OutOfStockParts int `json:"out_of_stock_parts"`
}
