package dto

// CreateOrderRequest datos para crear una orden de compra.
type CreateOrderRequest struct {
	ItemID     string
	SupplierID int64
	Quantity   int64
}

// OrderResponse fila de orden de compra lista para mostrar.
type OrderResponse struct {
	OrderID    int64
	ItemID     string
	SupplierID int64
	Quantity   int64
	OrderDate  string // YYYY-MM-DD HH:MM:SS
	Status     string
}

// ReceiveOrderResult resumen de una recepción confirmada.
type ReceiveOrderResult struct {
	OrderID     int64
	ItemID      string
	NewQuantity int64
}
