package entity

import "time"

// Supplier representa un proveedor de repuestos. Relación débil con Part:
// borrar un proveedor deja SupplierID en nil en sus repuestos, nunca los borra.
type Supplier struct {
	ID        string
	Name      string // único
	Contact   string // teléfono, email o persona de contacto
	CreatedAt time.Time
}
