package session

import (
	"fmt"
	"strings"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

// AddSupplier da de alta un proveedor. El contacto es opcional.
func (s *Session) AddSupplier(in dto.AddSupplierRequest) (*dto.SupplierResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		Name:    in.Name,
		Contact: strings.TrimSpace(in.Contact),
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	s.audit(fmt.Sprintf("Added supplier %s", supplier.Name))
	return toSupplierResponse(supplier), nil
}

// ViewSuppliers lista todos los proveedores.
func (s *Session) ViewSuppliers() ([]dto.SupplierResponse, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		out = append(out, *toSupplierResponse(sup))
	}
	return out, nil
}

// DeleteSupplier borra un proveedor existente. Sin guarda referencial: las
// órdenes que lo citen quedan colgantes.
func (s *Session) DeleteSupplier(supplierID int64) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	supplier, err := s.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if err := s.supplierRepo.Delete(supplierID); err != nil {
		return err
	}
	s.audit(fmt.Sprintf("Deleted supplier ID %d", supplierID))
	return nil
}

func toSupplierResponse(sup *entity.Supplier) *dto.SupplierResponse {
	if sup == nil {
		return nil
	}
	return &dto.SupplierResponse{
		SupplierID: sup.SupplierID,
		Name:       sup.Name,
		Contact:    sup.Contact,
	}
}
