package repository

import "github.com/jhoicas/almacen/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	// Create asigna SupplierID en la entidad al insertar.
	Create(supplier *entity.Supplier) error
	GetByID(supplierID int64) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Delete(supplierID int64) error
}
