package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre SQLite.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar DB o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create inserta el proveedor y asigna el SupplierID generado en la entidad.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	res, err := r.q.Exec(
		`INSERT INTO suppliers (name, contact) VALUES (?, ?)`,
		supplier.Name, supplier.Contact,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("supplier id: %w", err)
	}
	supplier.SupplierID = id
	return nil
}

// GetByID obtiene un proveedor por id. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(supplierID int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(
		`SELECT supplier_id, name, contact FROM suppliers WHERE supplier_id = ?`,
		supplierID,
	).Scan(&s.SupplierID, &s.Name, &s.Contact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devuelve todos los proveedores.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.q.Query(`SELECT supplier_id, name, contact FROM suppliers`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.Contact); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por id. Las órdenes que lo referencien quedan colgantes.
func (r *SupplierRepo) Delete(supplierID int64) error {
	if _, err := r.q.Exec(`DELETE FROM suppliers WHERE supplier_id = ?`, supplierID); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
