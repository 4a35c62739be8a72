package dto

import "time"

// SubmitTransactionRequest body para POST /api/transactions.
type SubmitTransactionRequest struct {
	PartID   string `json:"part_id"`
	Type     string `json:"type"` // IN | OUT | ANOMALY
	Quantity int    `json:"quantity"`
	Remark   string `json:"remark,omitempty"`
}

// LedgerEntryResponse asiento confirmado del libro de movimientos.
type LedgerEntryResponse struct {
	ID         string    `json:"id"`
	PartID     string    `json:"part_id"`
	UserID     string    `json:"user_id"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Remark     string    `json:"remark,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	PartNumber string    `json:"part_number,omitempty"`
	PartName   string    `json:"part_name,omitempty"`
	Username   string    `json:"username,omitempty"`
}

// LedgerListResponse listado paginado de movimientos.
type LedgerListResponse struct {
	Transactions []LedgerEntryResponse `json:"transactions"`
	Page         PageResponse          `json:"page"`
}

// DailySummaryDTO total de unidades movidas por día y tipo.
type DailySummaryDTO struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Type          string `json:"type"`
	TotalQuantity int    `json:"total_quantity"`
}
