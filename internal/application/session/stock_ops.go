package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// AddItem da de alta un ítem de stock. Rechaza id/nombre/ubicación vacíos,
// id duplicado, cantidad negativa y precio negativo. Una fecha de vencimiento
// que no parsea como YYYY-MM-DD se descarta en silencio, como siempre hizo el
// sistema; los front ends avisan antes de llamar.
func (s *Session) AddItem(in dto.AddItemRequest) (*dto.StockItemResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	in.ItemID = strings.TrimSpace(in.ItemID)
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if in.ItemID == "" || in.Name == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.StockItem{
		ItemID:   in.ItemID,
		Name:     in.Name,
		Quantity: in.Quantity,
		Price:    in.Price,
		Location: in.Location,
	}
	if raw := strings.TrimSpace(in.ExpiryDate); raw != "" {
		if t, err := time.Parse(entity.ExpiryDateLayout, raw); err == nil {
			item.ExpiryDate = &t
		} else {
			s.log.Debug().Str("item_id", in.ItemID).Str("expiry", raw).
				Msg("fecha de vencimiento inválida, se descarta")
		}
	}

	if err := s.stockRepo.Create(item); err != nil {
		return nil, err
	}
	s.audit(fmt.Sprintf("Added item %s - %s", item.ItemID, item.Name))
	return toStockResponse(item), nil
}

// UpdateQuantity fija la cantidad de un ítem existente. A diferencia del
// sistema original, este camino también rechaza cantidades negativas: todas
// las mutaciones de cantidad pasan por la misma validación.
func (s *Session) UpdateQuantity(itemID string, quantity int64) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	item, err := s.stockRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := s.stockRepo.UpdateQuantity(itemID, quantity); err != nil {
		return err
	}
	s.audit(fmt.Sprintf("Updated quantity for item %s to %d", itemID, quantity))
	return nil
}

// UpdateItem actualización parcial de un ítem: solo los campos presentes
// cambian. La cantidad, si viene, pasa por la validación común.
func (s *Session) UpdateItem(itemID string, in dto.UpdateItemRequest) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	item, err := s.stockRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	var patch entity.StockItemPatch
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return domain.ErrInvalidInput
		}
		patch.Name = &name
	}
	if in.Quantity != nil {
		if err := validateQuantity(*in.Quantity); err != nil {
			return err
		}
		patch.Quantity = in.Quantity
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
		patch.Price = in.Price
	}
	if in.Location != nil {
		location := strings.TrimSpace(*in.Location)
		if location == "" {
			return domain.ErrInvalidInput
		}
		patch.Location = &location
	}
	if in.ExpiryDate != nil {
		t, err := time.Parse(entity.ExpiryDateLayout, *in.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
		patch.ExpiryDate = &t
	}
	if patch.Empty() {
		return nil
	}
	if err := s.stockRepo.UpdatePartial(itemID, patch); err != nil {
		return err
	}
	s.audit(fmt.Sprintf("Updated item %s", itemID))
	return nil
}

// SearchItem busca primero por id exacto; si no hay, cae a nombre exacto sin
// distinguir mayúsculas (no substring). Disponible para staff.
func (s *Session) SearchItem(query string) ([]dto.StockItemResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := s.stockRepo.GetByID(query)
	if err != nil {
		return nil, err
	}
	if item != nil {
		return []dto.StockItemResponse{*toStockResponse(item)}, nil
	}
	matches, err := s.stockRepo.GetByName(query)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrNotFound
	}
	return toStockResponses(matches), nil
}

// ViewStock lista todo el stock. Disponible para staff.
func (s *Session) ViewStock() ([]dto.StockItemResponse, error) {
	items, err := s.stockRepo.List()
	if err != nil {
		return nil, err
	}
	return toStockResponses(items), nil
}

// DeleteItem borra un ítem existente. El borrado es incondicional: no hay
// guarda referencial, las órdenes que lo citen quedan colgantes.
func (s *Session) DeleteItem(itemID string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	item, err := s.stockRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := s.stockRepo.Delete(itemID); err != nil {
		return err
	}
	s.audit(fmt.Sprintf("Deleted item %s", itemID))
	return nil
}

// LowStockReport devuelve los ítems con cantidad estrictamente menor al umbral.
func (s *Session) LowStockReport(threshold int64) ([]dto.StockItemResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	items, err := s.stockRepo.ListBelow(threshold)
	if err != nil {
		return nil, err
	}
	return toStockResponses(items), nil
}

// TotalInventoryValue suma quantity × price sobre todo el stock, recalculado
// en cada llamada.
func (s *Session) TotalInventoryValue() (decimal.Decimal, error) {
	if err := s.requireAdmin(); err != nil {
		return decimal.Zero, err
	}
	return s.stockRepo.TotalValue()
}

// BarcodeScan simula un escaneo: busca el ítem por código y aplica un delta
// con signo. Cualquier delta que dejaría la cantidad negativa se rechaza.
func (s *Session) BarcodeScan(itemID string, delta int64) (*dto.StockItemResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	item, err := s.stockRepo.GetByID(strings.TrimSpace(itemID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	newQty := item.Quantity + delta
	if err := validateQuantity(newQty); err != nil {
		return nil, err
	}
	if err := s.stockRepo.UpdateQuantity(item.ItemID, newQty); err != nil {
		return nil, err
	}
	item.Quantity = newQty
	s.audit(fmt.Sprintf("Barcode scan updated item %s quantity by %d", item.ItemID, delta))
	return toStockResponse(item), nil
}

// ── mapeo entidad → dto ───────────────────────────────────────────────────────

func toStockResponse(item *entity.StockItem) *dto.StockItemResponse {
	if item == nil {
		return nil
	}
	return &dto.StockItemResponse{
		ItemID:     item.ItemID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Price:      item.Price,
		Location:   item.Location,
		ExpiryDate: item.ExpiryString(),
	}
}

func toStockResponses(items []*entity.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toStockResponse(item))
	}
	return out
}
