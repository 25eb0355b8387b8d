package cli

import (
	"fmt"

	"github.com/jhoicas/almacen/internal/application/dto"
)

// Listados con ancho fijo, mismo formato que siempre tuvo el menú de texto.

func (m *Menu) renderStock(items []dto.StockItemResponse) {
	m.p.printf("%-10s %-20s %-6s %-10s %-15s %-12s\n",
		"ID", "Name", "Qty", "Price", "Location", "Expiry Date")
	m.p.println(divider(75))
	for _, item := range items {
		expiry := item.ExpiryDate
		if expiry == "" {
			expiry = "-"
		}
		m.p.printf("%-10s %-20s %-6d %-10s %-15s %-12s\n",
			item.ItemID, item.Name, item.Quantity, item.Price.StringFixed(2), item.Location, expiry)
	}
}

func (m *Menu) renderLowStock(items []dto.StockItemResponse) {
	m.p.printf("%-10s %-20s %-6s %-15s\n", "ID", "Name", "Qty", "Location")
	m.p.println(divider(55))
	for _, item := range items {
		m.p.printf("%-10s %-20s %-6d %-15s\n", item.ItemID, item.Name, item.Quantity, item.Location)
	}
}

func (m *Menu) renderSuppliers(suppliers []dto.SupplierResponse) {
	m.p.printf("%-5s %-25s %-30s\n", "ID", "Name", "Contact")
	m.p.println(divider(60))
	for _, sup := range suppliers {
		m.p.printf("%-5d %-25s %-30s\n", sup.SupplierID, sup.Name, sup.Contact)
	}
}

func (m *Menu) renderOrders(orders []dto.OrderResponse) {
	m.p.printf("%-8s %-10s %-12s %-6s %-20s %-10s\n",
		"Order ID", "Item ID", "Supplier ID", "Qty", "Order Date", "Status")
	m.p.println(divider(70))
	for _, o := range orders {
		m.p.printf("%-8d %-10s %-12d %-6d %-20s %-10s\n",
			o.OrderID, o.ItemID, o.SupplierID, o.Quantity, o.OrderDate, o.Status)
	}
}

func (m *Menu) renderDashboard(d *dto.DashboardSummary) {
	m.p.printf("Total unique items: %d\n", d.TotalItems)
	m.p.printf("Low stock items: %d\n", d.LowStockItems)
	m.p.printf("Total inventory value: $%s\n", d.TotalValue.StringFixed(2))
	m.p.printf("Pending purchase orders: %d\n", d.PendingOrders)
}

func divider(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}

func title(s string) string {
	return fmt.Sprintf("\n--- %s ---", s)
}
