package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest body para POST /api/parts.
type CreatePartRequest struct {
	PartNumber string           `json:"part_number"`
	Name       string           `json:"name"`
	Spec       string           `json:"spec,omitempty"`
	Unit       string           `json:"unit,omitempty"` // por defecto "pcs"
	Stock      int              `json:"stock,omitempty"`
	StockMin   int              `json:"stock_min,omitempty"`
	StockMax   *int             `json:"stock_max,omitempty"` // nil = sin techo
	UnitPrice  *decimal.Decimal `json:"unit_price,omitempty"`
	SupplierID *string          `json:"supplier_id,omitempty"`
}

// UpdatePartRequest body para PUT /api/parts/:id. El stock no se actualiza por
// aquí: solo lo muta el coordinador de transacciones.
type UpdatePartRequest struct {
	PartNumber *string          `json:"part_number,omitempty"`
	Name       *string          `json:"name,omitempty"`
	Spec       *string          `json:"spec,omitempty"`
	Unit       *string          `json:"unit,omitempty"`
	StockMin   *int             `json:"stock_min,omitempty"`
	StockMax   *int             `json:"stock_max,omitempty"`
	UnitPrice  *decimal.Decimal `json:"unit_price,omitempty"`
	SupplierID *string          `json:"supplier_id,omitempty"`
}

// PartResponse repuesto con proveedor resuelto.
type PartResponse struct {
	ID           string          `json:"id"`
	PartNumber   string          `json:"part_number"`
	Name         string          `json:"name"`
	Spec         string          `json:"spec,omitempty"`
	Unit         string          `json:"unit"`
	Stock        int             `json:"stock"`
	StockMin     int             `json:"stock_min"`
	StockMax     *int            `json:"stock_max,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	SupplierID   *string         `json:"supplier_id,omitempty"`
	SupplierName *string         `json:"supplier_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PartListResponse listado paginado de repuestos.
type PartListResponse struct {
	Parts []PartResponse `json:"parts"`
	Page  PageResponse   `json:"page"`
}

// PartStatusResponse repuesto con su estado derivado (inventario).
type PartStatusResponse struct {
	PartResponse
	Status string `json:"status"` // normal | low_stock | out_of_stock | over_stock
}
