// Package ledger implementa el coordinador de transacciones de stock: la única
// puerta por la que se muta el stock de un repuesto y se escribe el libro de
// movimientos.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// Coordinator aplica movimientos de stock de forma transaccional: bloquea la
// fila del repuesto (SELECT FOR UPDATE), valida contra la tabla de reglas,
// persiste el nuevo stock y añade el asiento al libro, todo o nada.
type Coordinator struct {
	txRunner TxRunner
}

// NewCoordinator construye el coordinador.
func NewCoordinator(txRunner TxRunner) *Coordinator {
	return &Coordinator{txRunner: txRunner}
}

// SubmitInput entrada de un movimiento. UserID llega ya autenticado por la capa
// HTTP; el coordinador no re-verifica identidad (la FK del libro garantiza
// existencia al confirmar).
type SubmitInput struct {
	PartID   string
	UserID   string
	Type     string // IN, OUT, ANOMALY
	Quantity int
	Remark   string
}

// Submit ejecuta exactamente un intento del movimiento y devuelve el asiento
// confirmado o el rechazo tipado.
//
// Orden estricto:
//  1. Validación de forma (cantidad, tipo) ANTES de tomar ningún lock.
//  2. Dentro de la transacción: relectura de la fila bajo lock exclusivo
//     (nunca se confía en un snapshot previo al lock), tabla de reglas,
//     escritura del stock y append del asiento.
//  3. Commit o rollback completos: ningún estado parcial es observable.
//
// No hay reintentos internos: la contención o el timeout del storage se
// propagan envueltos como fallo de infraestructura y reintentar es decisión
// del caller.
func (co *Coordinator) Submit(ctx context.Context, in SubmitInput) (*entity.LedgerEntry, error) {
	if err := stock.ValidateRequest(in.Type, in.Quantity); err != nil {
		return nil, err
	}

	var entry *entity.LedgerEntry
	err := co.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		part, err := partRepo.GetForUpdate(in.PartID)
		if err != nil {
			return err
		}
		if part == nil {
			return fmt.Errorf("%w: %s", domain.ErrPartNotFound, in.PartID)
		}

		newStock, err := stock.Apply(in.Type, in.Quantity, part.Stock, part.StockMin, part.StockMax)
		if err != nil {
			return err
		}

		if err := partRepo.UpdateStock(part.ID, newStock); err != nil {
			return err
		}

		// Timestamp asignado bajo el lock: los commits secuenciales sobre el
		// mismo repuesto quedan con tiempos no decrecientes.
		entry = &entity.LedgerEntry{
			ID:        uuid.New().String(),
			PartID:    part.ID,
			UserID:    in.UserID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Remark:    in.Remark,
			CreatedAt: time.Now(),
		}
		return ledgerRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
