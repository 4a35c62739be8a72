package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// InventoryUseCase vistas agregadas del inventario: totales globales y detalle
// por repuesto con su estado derivado de los límites.
type InventoryUseCase struct {
	partRepo   repository.PartRepository
	reportRepo repository.ReportRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(partRepo repository.PartRepository, reportRepo repository.ReportRepository) *InventoryUseCase {
	return &InventoryUseCase{partRepo: partRepo, reportRepo: reportRepo}
}

// Status devuelve los totales del inventario.
func (uc *InventoryUseCase) Status() (*dto.InventoryStatusDTO, error) {
	totals, err := uc.reportRepo.InventoryTotals()
	if err != nil {
		return nil, err
	}
	return &dto.InventoryStatusDTO{
		TotalParts:      totals.TotalParts,
		TotalStock:      totals.TotalStock,
		LowStockParts:   totals.LowStockParts,
		OutOfStockParts: totals.OutOfStockParts,
	}, nil
}

// Details lista todos los repuestos con proveedor y estado
// (out_of_stock | low_stock | over_stock | normal).
func (uc *InventoryUseCase) Details() ([]dto.PartStatusResponse, error) {
	rows, err := uc.partRepo.ListAllWithSupplier()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartStatusResponse, 0, len(rows))
	for _, row := range rows {
		p := row.Part
		out = append(out, dto.PartStatusResponse{
			PartResponse: *toPartResponse(&p, row.SupplierName),
			Status:       stock.Status(p.Stock, p.StockMin, p.StockMax),
		})
	}
	return out, nil
}
