package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del almacén.
//
// Stock es el nivel actual y solo lo escribe el coordinador de transacciones
// (nunca un UPDATE directo de otro componente). StockMin es el punto de reorden
// (informativo: clasifica "stock bajo" en reportes, no bloquea movimientos).
// StockMax es el techo opcional: nil significa sin límite superior.
type Part struct {
	ID         string
	PartNumber string // código único
	Name       string
	Spec       string // especificación técnica (medida, modelo, etc.)
	Unit       string // unidad de medida: pcs, caja, litro...
	Stock      int
	StockMin   int
	StockMax   *int
	UnitPrice  decimal.Decimal // precio unitario para valorización de inventario
	SupplierID *string         // referencia débil: borrar el proveedor la deja en nil
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Estados derivados del stock respecto a sus límites (solo reporting).
const (
	StockStatusNormal = "normal"
	StockStatusLow    = "low_stock"
	StockStatusOut    = "out_of_stock"
	StockStatusOver   = "over_stock"
)
