package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PartUseCase CRUD de repuestos. El stock inicial se fija al crear; después
// solo lo muta el coordinador de transacciones, nunca Update.
type PartUseCase struct {
	partRepo     repository.PartRepository
	supplierRepo repository.SupplierRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(partRepo repository.PartRepository, supplierRepo repository.SupplierRepository) *PartUseCase {
	return &PartUseCase{partRepo: partRepo, supplierRepo: supplierRepo}
}

// Create valida y persiste un repuesto nuevo. El stock inicial debe respetar
// los límites desde el primer momento.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.PartNumber == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.StockMin < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMax != nil && in.Stock > *in.StockMax {
		return nil, domain.ErrInvalidInput
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	price := decimal.Zero
	if in.UnitPrice != nil {
		price = *in.UnitPrice
	}
	now := time.Now()
	part := &entity.Part{
		ID:         uuid.New().String(),
		PartNumber: in.PartNumber,
		Name:       in.Name,
		Spec:       in.Spec,
		Unit:       unit,
		Stock:      in.Stock,
		StockMin:   in.StockMin,
		StockMax:   in.StockMax,
		UnitPrice:  price,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.partRepo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part, nil), nil
}

// GetByID devuelve el repuesto con su proveedor resuelto, o nil si no existe.
func (uc *PartUseCase) GetByID(id string) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	var supplierName *string
	if part.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*part.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			supplierName = &supplier.Name
		}
	}
	return toPartResponse(part, supplierName), nil
}

// List busca por número o nombre (case-insensitive) con paginación.
func (uc *PartUseCase) List(search string, limit, offset int) (*dto.PartListResponse, error) {
	rows, total, err := uc.partRepo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PartListResponse{
		Parts: make([]dto.PartResponse, 0, len(rows)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, row := range rows {
		p := row.Part
		out.Parts = append(out.Parts, *toPartResponse(&p, row.SupplierName))
	}
	return out, nil
}

// Update aplica los campos no nulos. Rechaza un techo por debajo del stock
// actual: el invariante stock <= stock_max debe seguir cumpliéndose.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if in.PartNumber != nil {
		part.PartNumber = *in.PartNumber
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Spec != nil {
		part.Spec = *in.Spec
	}
	if in.Unit != nil {
		part.Unit = *in.Unit
	}
	if in.StockMin != nil {
		if *in.StockMin < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.StockMin = *in.StockMin
	}
	if in.StockMax != nil {
		if *in.StockMax < part.Stock {
			return nil, domain.ErrInvalidInput
		}
		part.StockMax = in.StockMax
	}
	if in.UnitPrice != nil {
		part.UnitPrice = *in.UnitPrice
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		part.SupplierID = in.SupplierID
	}
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(part); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina el repuesto. Devuelve ErrNotFound si no existe.
func (uc *PartUseCase) Delete(id string) error {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.partRepo.Delete(id)
}

func toPartResponse(p *entity.Part, supplierName *string) *dto.PartResponse {
	return &dto.PartResponse{
		ID:           p.ID,
		PartNumber:   p.PartNumber,
		Name:         p.Name,
		Spec:         p.Spec,
		Unit:         p.Unit,
		Stock:        p.Stock,
		StockMin:     p.StockMin,
		StockMax:     p.StockMax,
		UnitPrice:    p.UnitPrice,
		SupplierID:   p.SupplierID,
		SupplierName: supplierName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
