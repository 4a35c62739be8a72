package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del panel principal: variedad de repuestos,
// movimientos del día, valorización y alertas de stock bajo.
//
// Fuente de datos: ReportRepository (consultas read-only). Las cuatro consultas
// se lanzan en paralelo.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el DashboardSummaryDTO del día en curso.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24 * time.Hour)

	type countResult struct {
		n   int
		err error
	}
	type valuationResult struct {
		total decimal.Decimal
		err   error
	}
	type lowStockResult struct {
		parts []*entity.Part
		err   error
	}

	varietyCh := make(chan countResult, 1)
	inCh := make(chan countResult, 1)
	outCh := make(chan countResult, 1)
	valuationCh := make(chan valuationResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		n, err := uc.reportRepo.CountParts()
		varietyCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountEntriesBetween(entity.TransTypeIN, todayStart, todayEnd)
		inCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountEntriesBetween(entity.TransTypeOUT, todayStart, todayEnd)
		outCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.reportRepo.StockValuation()
		valuationCh <- valuationResult{total, err}
	}()
	go func() {
		parts, err := uc.reportRepo.ListLowStock()
		lowStockCh <- lowStockResult{parts, err}
	}()

	variety := <-varietyCh
	in := <-inCh
	out := <-outCh
	valuation := <-valuationCh
	lowStock := <-lowStockCh

	for _, res := range []error{variety.err, in.err, out.err, valuation.err, lowStock.err} {
		if res != nil {
			return nil, res
		}
	}

	summary := &dto.DashboardSummaryDTO{
		PartVarietyCount: variety.n,
		TodayInCount:     in.n,
		TodayOutCount:    out.n,
		StockValuation:   valuation.total,
		LowStockItems:    make([]dto.PartResponse, 0, len(lowStock.parts)),
	}
	for _, p := range lowStock.parts {
		summary.LowStockItems = append(summary.LowStockItems, *toPartResponse(p, nil))
	}
	return summary, nil
}
