package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para StockItem (DIP).
// Los Get devuelven (nil, nil) cuando la fila no existe; el caso de uso decide
// si eso es un error.
type StockRepository interface {
	// Create devuelve domain.ErrDuplicate si el item_id ya existe.
	Create(item *entity.StockItem) error
	GetByID(itemID string) (*entity.StockItem, error)
	// GetByName busca por nombre exacto sin distinguir mayúsculas (no substring).
	GetByName(name string) ([]*entity.StockItem, error)
	List() ([]*entity.StockItem, error)
	// ListBelow devuelve los ítems con quantity estrictamente menor al umbral.
	ListBelow(threshold int64) ([]*entity.StockItem, error)
	UpdateQuantity(itemID string, quantity int64) error
	// UpdatePartial escribe solo los campos no nil del patch.
	UpdatePartial(itemID string, patch entity.StockItemPatch) error
	Delete(itemID string) error
	// TotalValue suma quantity × price sobre todas las filas; cero si no hay stock.
	TotalValue() (decimal.Decimal, error)
}
