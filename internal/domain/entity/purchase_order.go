package entity

import "time"

// Estados válidos para PurchaseOrder. La transición pending → received ocurre
// exactamente una vez y es irreversible.
const (
	OrderStatusPending  = "pending"
	OrderStatusReceived = "received"
)

// PurchaseOrder representa stock pedido a un proveedor. OrderID lo asigna la
// base de datos; el ítem y el proveedor referenciados existían al crearla, pero
// no hay borrado en cascada: un borrado posterior deja la referencia colgante.
type PurchaseOrder struct {
	OrderID    int64
	ItemID     string
	SupplierID int64
	Quantity   int64
	OrderDate  time.Time
	Status     string // pending, received
}

// IsPending indica si la orden todavía no fue recibida.
func (o *PurchaseOrder) IsPending() bool { return o.Status == OrderStatusPending }
