package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// CreateOrder crea una orden de compra en estado pending con la fecha actual.
// El ítem y el proveedor deben existir; el chequeo de proveedor aplica
// uniforme en los dos front ends. La cantidad debe ser positiva.
func (s *Session) CreateOrder(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	in.ItemID = strings.TrimSpace(in.ItemID)
	if in.ItemID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := s.stockRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem %s: %w", in.ItemID, domain.ErrNotFound)
	}
	supplier, err := s.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, fmt.Errorf("proveedor %d: %w", in.SupplierID, domain.ErrNotFound)
	}

	order := &entity.PurchaseOrder{
		ItemID:     in.ItemID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		OrderDate:  time.Now(),
		Status:     entity.OrderStatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	s.audit(fmt.Sprintf("Created purchase order for item %s, supplier %d, quantity %d",
		order.ItemID, order.SupplierID, order.Quantity))
	return toOrderResponse(order), nil
}

// ViewOrders lista todas las órdenes de compra.
func (s *Session) ViewOrders() ([]dto.OrderResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ViewPendingOrders lista solo las órdenes pendientes.
func (s *Session) ViewPendingOrders() ([]dto.OrderResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByStatus(entity.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ReceiveOrder marca una orden pendiente como recibida y suma su cantidad al
// stock del ítem, todo dentro de una transacción: un fallo en cualquier paso
// deja orden y stock como estaban.
//
// Orden inexistente → ErrNotFound; ya recibida → ErrConflict; ítem borrado
// después de crear la orden (referencia colgante) → ErrNotFound y rollback.
func (s *Session) ReceiveOrder(ctx context.Context, orderID int64) (*dto.ReceiveOrderResult, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	var result dto.ReceiveOrderResult
	err := s.tx.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		stockRepo repository.StockRepository,
	) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsPending() {
			return domain.ErrConflict
		}
		if err := orderRepo.UpdateStatus(orderID, entity.OrderStatusReceived); err != nil {
			return err
		}
		item, err := stockRepo.GetByID(order.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("ítem %s referenciado por la orden %d: %w",
				order.ItemID, orderID, domain.ErrNotFound)
		}
		newQty := item.Quantity + order.Quantity
		if err := validateQuantity(newQty); err != nil {
			return err
		}
		if err := stockRepo.UpdateQuantity(item.ItemID, newQty); err != nil {
			return err
		}
		result = dto.ReceiveOrderResult{
			OrderID:     orderID,
			ItemID:      item.ItemID,
			NewQuantity: newQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit(fmt.Sprintf("Received purchase order %d", orderID))
	return &result, nil
}

// ── mapeo entidad → dto ───────────────────────────────────────────────────────

func toOrderResponse(o *entity.PurchaseOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		OrderID:    o.OrderID,
		ItemID:     o.ItemID,
		SupplierID: o.SupplierID,
		Quantity:   o.Quantity,
		OrderDate:  o.OrderDate.Format("2006-01-02 15:04:05"),
		Status:     o.Status,
	}
}

func toOrderResponses(orders []*entity.PurchaseOrder) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o))
	}
	return out
}
