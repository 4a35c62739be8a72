package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// PartWithSupplier fila de repuesto con el nombre del proveedor resuelto
// (para listados e inventario).
type PartWithSupplier struct {
	Part         entity.Part
	SupplierName *string
}

// PartRepository puerto de persistencia para repuestos.
//
// UpdateStock es la única escritura del campo stock y solo debe invocarse desde
// la unidad de trabajo del coordinador (repos atados a la transacción).
// Update cubre los campos descriptivos y los límites, nunca el stock.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	// GetForUpdate lee la fila del repuesto bloqueándola (SELECT ... FOR UPDATE)
	// hasta que la transacción que la contiene termine. Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Part, error)
	UpdateStock(id string, stock int) error
	Update(part *entity.Part) error
	Delete(id string) error
	List(search string, limit, offset int) ([]PartWithSupplier, int, error)
	ListAllWithSupplier() ([]PartWithSupplier, error)
}
