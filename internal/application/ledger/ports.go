package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera explícita de la unidad de
// trabajo del coordinador: si fn devuelve error (o el proceso aborta), nada de
// lo escrito dentro sobrevive; si devuelve nil, todo se confirma junto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.PartRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
