package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/domain/repository"
)

// timestampLayout formato con el que se guardan fechas con hora en SQLite.
const timestampLayout = "2006-01-02 15:04:05"

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre SQLite
// (usable con DB o tx; la recepción de órdenes corre dentro de una tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes. Pasar DB o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create inserta la orden y asigna el OrderID generado en la entidad.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	res, err := r.q.Exec(`
		INSERT INTO purchase_orders (item_id, supplier_id, quantity, order_date, status)
		VALUES (?, ?, ?, ?, ?)`,
		order.ItemID, order.SupplierID, order.Quantity,
		order.OrderDate.Format(timestampLayout), order.Status,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("purchase order id: %w", err)
	}
	order.OrderID = id
	return nil
}

// GetByID obtiene una orden por id. Devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(orderID int64) (*entity.PurchaseOrder, error) {
	row := r.q.QueryRow(`
		SELECT order_id, item_id, supplier_id, quantity, order_date, status
		FROM purchase_orders WHERE order_id = ?`, orderID)
	order, err := scanPurchaseOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return order, nil
}

// List devuelve todas las órdenes de compra.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(`
		SELECT order_id, item_id, supplier_id, quantity, order_date, status
		FROM purchase_orders`)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return collectPurchaseOrders(rows)
}

// ListByStatus devuelve las órdenes con el estado indicado.
func (r *PurchaseOrderRepo) ListByStatus(status string) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(`
		SELECT order_id, item_id, supplier_id, quantity, order_date, status
		FROM purchase_orders WHERE status = ?`, status)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders by status: %w", err)
	}
	return collectPurchaseOrders(rows)
}

// UpdateStatus fija el estado de una orden. La transición la valida la sesión.
func (r *PurchaseOrderRepo) UpdateStatus(orderID int64, status string) error {
	_, err := r.q.Exec(`UPDATE purchase_orders SET status = ? WHERE order_id = ?`, status, orderID)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// CountByStatus cuenta las órdenes con el estado indicado (dashboard).
func (r *PurchaseOrderRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(`SELECT COUNT(*) FROM purchase_orders WHERE status = ?`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count purchase orders: %w", err)
	}
	return n, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func scanPurchaseOrder(row rowScanner) (*entity.PurchaseOrder, error) {
	var (
		o       entity.PurchaseOrder
		rawDate string
	)
	if err := row.Scan(&o.OrderID, &o.ItemID, &o.SupplierID, &o.Quantity, &rawDate, &o.Status); err != nil {
		return nil, err
	}
	t, err := time.ParseInLocation(timestampLayout, rawDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("fecha de orden corrupta %q: %w", rawDate, err)
	}
	o.OrderDate = t
	return &o, nil
}

func collectPurchaseOrders(rows *sql.Rows) ([]*entity.PurchaseOrder, error) {
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}
