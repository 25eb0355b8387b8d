// Package report contiene los casos de uso read-only de reporte: el resumen
// de dashboard y las exportaciones del stock a CSV y PDF.
package report

import (
	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// DefaultLowStockThreshold umbral por defecto del reporte de stock bajo.
const DefaultLowStockThreshold = 5

// Service agrupa los reportes sobre los repositorios de stock y órdenes.
type Service struct {
	stockRepo         repository.StockRepository
	orderRepo         repository.PurchaseOrderRepository
	lowStockThreshold int64
}

// NewService construye el servicio de reportes. Un umbral <= 0 cae al default.
func NewService(
	stockRepo repository.StockRepository,
	orderRepo repository.PurchaseOrderRepository,
	lowStockThreshold int64,
) *Service {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &Service{
		stockRepo:         stockRepo,
		orderRepo:         orderRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// Dashboard arma el agregado read-only: total de ítems, ítems bajos de stock,
// valor total del inventario y órdenes pendientes. Todo se recalcula fresco.
func (s *Service) Dashboard() (*dto.DashboardSummary, error) {
	items, err := s.stockRepo.List()
	if err != nil {
		return nil, err
	}
	low, err := s.stockRepo.ListBelow(s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	total, err := s.stockRepo.TotalValue()
	if err != nil {
		return nil, err
	}
	pending, err := s.orderRepo.CountByStatus(entity.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummary{
		TotalItems:    int64(len(items)),
		LowStockItems: int64(len(low)),
		TotalValue:    total,
		PendingOrders: pending,
	}, nil
}
