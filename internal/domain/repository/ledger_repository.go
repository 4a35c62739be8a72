package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// LedgerFilter filtros del listado de movimientos. Campos vacíos no filtran.
type LedgerFilter struct {
	PartID    string
	UserID    string
	TransType string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// LedgerEntryRow movimiento con las referencias resueltas para mostrar.
type LedgerEntryRow struct {
	Entry      entity.LedgerEntry
	PartNumber string
	PartName   string
	Username   string
}

// LedgerRepository puerto del libro de movimientos. Append-only: la única
// escritura es Create; no existen Update ni Delete.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	List(filter LedgerFilter) ([]LedgerEntryRow, int, error)
	// ExistsByUser indica si el usuario tiene movimientos registrados
	// (bloquea su eliminación).
	ExistsByUser(userID string) (bool, error)
}
