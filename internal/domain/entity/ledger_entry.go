package entity

import "time"

// Tipos de movimiento del libro de inventario. Conjunto cerrado: las revisiones
// antiguas del sistema usaban FAULT/DEFECT para mermas; aquí todo eso es ANOMALY.
const (
	TransTypeIN      = "IN"      // entrada
	TransTypeOUT     = "OUT"     // salida deliberada
	TransTypeANOMALY = "ANOMALY" // merma / baja por anomalía
)

// LedgerEntry es un registro inmutable del libro de movimientos: una mutación
// de stock ya confirmada. Solo lo crea el coordinador dentro de su unidad de
// trabajo; nunca se actualiza ni se borra (append-only).
type LedgerEntry struct {
	ID        string
	PartID    string
	UserID    string // quien ejecutó el movimiento
	Type      string // IN, OUT, ANOMALY
	Quantity  int    // siempre > 0; el signo lo da Type
	Remark    string
	CreatedAt time.Time // asignado al confirmar, bajo el lock de la fila
}
