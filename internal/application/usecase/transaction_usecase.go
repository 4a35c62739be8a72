package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransactionQueryUseCase consultas de solo lectura sobre el libro de
// movimientos (listado filtrado y resumen diario). La escritura vive en el
// coordinador, no aquí.
type TransactionQueryUseCase struct {
	ledgerRepo repository.LedgerRepository
	reportRepo repository.ReportRepository
}

// NewTransactionQueryUseCase construye el caso de uso.
func NewTransactionQueryUseCase(ledgerRepo repository.LedgerRepository, reportRepo repository.ReportRepository) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{ledgerRepo: ledgerRepo, reportRepo: reportRepo}
}

// List devuelve movimientos filtrados por repuesto, usuario, tipo y rango de
// fechas, más recientes primero.
func (uc *TransactionQueryUseCase) List(filter repository.LedgerFilter) (*dto.LedgerListResponse, error) {
	rows, total, err := uc.ledgerRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.LedgerListResponse{
		Transactions: make([]dto.LedgerEntryResponse, 0, len(rows)),
		Page:         dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	}
	for _, row := range rows {
		out.Transactions = append(out.Transactions, dto.LedgerEntryResponse{
			ID:         row.Entry.ID,
			PartID:     row.Entry.PartID,
			UserID:     row.Entry.UserID,
			Type:       row.Entry.Type,
			Quantity:   row.Entry.Quantity,
			Remark:     row.Entry.Remark,
			CreatedAt:  row.Entry.CreatedAt,
			PartNumber: row.PartNumber,
			PartName:   row.PartName,
			Username:   row.Username,
		})
	}
	return out, nil
}

// Summary agrupa las unidades movidas por día y tipo (gráfica del dashboard).
func (uc *TransactionQueryUseCase) Summary(filter repository.LedgerFilter) ([]dto.DailySummaryDTO, error) {
	rows, err := uc.reportRepo.DailySummary(filter.From, filter.To)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailySummaryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.DailySummaryDTO{
			Date:          row.Date.Format("2006-01-02"),
			Type:          row.TransType,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return out, nil
}
