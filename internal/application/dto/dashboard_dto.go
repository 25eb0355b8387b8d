package dto

import "github.com/shopspring/decimal"

// DashboardSummary agregado read-only del estado del inventario.
type DashboardSummary struct {
	TotalItems    int64
	LowStockItems int64
	TotalValue    decimal.Decimal
	PendingOrders int64
}
