package inventory

import (
	"context"

	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario: o se persisten la transacción y el nuevo stock, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.PartRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
