package session

import (
	"context"

	"github.com/jhoicas/almacen/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la recepción de
// órdenes: estado de la orden y cantidad de stock cambian juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
	) error) error
}
