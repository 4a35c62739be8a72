package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// memPartRepo repositorio de repuestos en memoria para los tests del caso de uso.
type memPartRepo struct {
	parts map[string]*entity.Part
}

func newMemPartRepo(parts ...*entity.Part) *memPartRepo {
	r := &memPartRepo{parts: make(map[string]*entity.Part)}
	for _, p := range parts {
		cp := *p
		r.parts[p.ID] = &cp
	}
	return r
}

func (r *memPartRepo) Create(part *entity.Part) error {
	for _, p := range r.parts {
		if p.PartNumber == part.PartNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *part
	r.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartRepo) GetForUpdate(id string) (*entity.Part, error) { return r.GetByID(id) }

func (r *memPartRepo) UpdateStock(id string, stock int) error {
	p, ok := r.parts[id]
	if !ok {
		return domain.ErrPartNotFound
	}
	p.Stock = stock
	return nil
}

func (r *memPartRepo) Update(part *entity.Part) error {
	existing, ok := r.parts[part.ID]
	if !ok {
		return domain.ErrPartNotFound
	}
	// El stock no es actualizable por esta vía: se preserva el valor actual.
	stock := existing.Stock
	cp := *part
	cp.Stock = stock
	r.parts[part.ID] = &cp
	return nil
}

func (r *memPartRepo) Delete(id string) error {
	delete(r.parts, id)
	return nil
}

func (r *memPartRepo) List(string, int, int) ([]repository.PartWithSupplier, int, error) {
	var out []repository.PartWithSupplier
	for _, p := range r.parts {
		out = append(out, repository.PartWithSupplier{Part: *p})
	}
	return out, len(out), nil
}

func (r *memPartRepo) ListAllWithSupplier() ([]repository.PartWithSupplier, error) {
	list, _, err := r.List("", 0, 0)
	return list, err
}

// memSupplierRepo proveedor en memoria; solo GetByID importa aquí.
type memSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *memSupplierRepo) Create(*entity.Supplier) error { return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (r *memSupplierRepo) Update(*entity.Supplier) error { return nil }
func (r *memSupplierRepo) Delete(string) error           { return nil }
func (r *memSupplierRepo) List(string, int, int) ([]*entity.Supplier, int, error) {
	return nil, 0, nil
}

func intPtr(n int) *int { return &n }

func TestPartCreate_RequiereNumeroYNombre(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo(), &memSupplierRepo{})

	_, err := uc.Create(dto.CreatePartRequest{PartNumber: "", Name: "Filtro de aceite"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreatePartRequest{PartNumber: "FLT-001", Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPartCreate_StockInicialSobreElTecho(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo(), &memSupplierRepo{})

	_, err := uc.Create(dto.CreatePartRequest{
		PartNumber: "FLT-001",
		Name:       "Filtro de aceite",
		Stock:      120,
		StockMax:   intPtr(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el stock inicial debe respetar el techo desde el alta")
}

func TestPartCreate_ProveedorInexistente(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo(), &memSupplierRepo{})

	supplierID := "no-existe"
	_, err := uc.Create(dto.CreatePartRequest{
		PartNumber: "FLT-001",
		Name:       "Filtro de aceite",
		SupplierID: &supplierID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPartCreate_UnidadPorDefecto(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo(), &memSupplierRepo{})

	out, err := uc.Create(dto.CreatePartRequest{PartNumber: "FLT-001", Name: "Filtro de aceite"})
	require.NoError(t, err)
	assert.Equal(t, "pcs", out.Unit)
	assert.NotEmpty(t, out.ID)
}

func TestPartUpdate_TechoBajoElStockActual(t *testing.T) {
	repo := newMemPartRepo(&entity.Part{
		ID: "p1", PartNumber: "FLT-001", Name: "Filtro de aceite", Unit: "pcs", Stock: 80,
	})
	uc := usecase.NewPartUseCase(repo, &memSupplierRepo{})

	_, err := uc.Update("p1", dto.UpdatePartRequest{StockMax: intPtr(50)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un techo por debajo del stock actual rompería el invariante stock <= stock_max")

	// Un techo igual o por encima del stock actual sí es válido.
	out, err := uc.Update("p1", dto.UpdatePartRequest{StockMax: intPtr(80)})
	require.NoError(t, err)
	require.NotNil(t, out.StockMax)
	assert.Equal(t, 80, *out.StockMax)
}

func TestPartUpdate_NoTocaElStock(t *testing.T) {
	repo := newMemPartRepo(&entity.Part{
		ID: "p1", PartNumber: "FLT-001", Name: "Filtro de aceite", Unit: "pcs", Stock: 80,
	})
	uc := usecase.NewPartUseCase(repo, &memSupplierRepo{})

	name := "Filtro de aceite premium"
	out, err := uc.Update("p1", dto.UpdatePartRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, out.Name)
	assert.Equal(t, 80, out.Stock, "el stock solo lo muta el coordinador de transacciones")
}

func TestPartUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo(), &memSupplierRepo{})

	out, err := uc.Update("no-existe", dto.UpdatePartRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPartDelete_Inexistente(t *testing.T) {
	uc := usecase.NewPartUseCase(newMemPartRepo(), &memSupplierRepo{})
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
