package repository

import "github.com/jhoicas/almacen/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	// Create asigna OrderID en la entidad; Status y OrderDate los fija el caso de uso.
	Create(order *entity.PurchaseOrder) error
	GetByID(orderID int64) (*entity.PurchaseOrder, error)
	List() ([]*entity.PurchaseOrder, error)
	ListByStatus(status string) ([]*entity.PurchaseOrder, error)
	UpdateStatus(orderID int64, status string) error
	CountByStatus(status string) (int64, error)
}
