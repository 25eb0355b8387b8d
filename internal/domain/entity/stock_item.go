package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpiryDateLayout formato de fecha de vencimiento (YYYY-MM-DD).
const ExpiryDateLayout = "2006-01-02"

// StockItem representa un ítem de inventario identificado por un código externo.
// Quantity nunca debe quedar negativa: toda mutación de cantidad pasa por la
// sesión, que valida antes de persistir.
type StockItem struct {
	ItemID     string
	Name       string
	Quantity   int64
	Price      decimal.Decimal // precio unitario, no negativo
	Location   string
	ExpiryDate *time.Time // opcional
}

// Value devuelve quantity × price para este ítem.
func (s *StockItem) Value() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(s.Quantity))
}

// ExpiryString devuelve la fecha de vencimiento en formato YYYY-MM-DD, o "" si no tiene.
func (s *StockItem) ExpiryString() string {
	if s.ExpiryDate == nil {
		return ""
	}
	return s.ExpiryDate.Format(ExpiryDateLayout)
}

// StockItemPatch campos opcionales para actualización parcial: solo los
// punteros no nil se escriben.
type StockItemPatch struct {
	Name       *string
	Quantity   *int64
	Price      *decimal.Decimal
	Location   *string
	ExpiryDate *time.Time
}

// Empty indica que el patch no modifica ningún campo.
func (p StockItemPatch) Empty() bool {
	return p.Name == nil && p.Quantity == nil && p.Price == nil && p.Location == nil && p.ExpiryDate == nil
}
