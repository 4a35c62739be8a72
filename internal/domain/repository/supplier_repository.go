package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
// Delete deja en NULL la referencia de los repuestos asociados (relación débil).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	List(search string, limit, offset int) ([]*entity.Supplier, int, error)
}
