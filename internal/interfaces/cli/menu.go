package cli

import (
	"context"
	"errors"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/application/session"
	"github.com/jhoicas/almacen/internal/domain"
)

// Config rutas de exportación y umbral por defecto que usa el menú.
type Config struct {
	CSVPath          string
	PDFPath          string
	DefaultThreshold int64
}

// Menu front end de menú numerado. El rol decide qué árbol se muestra; la
// sesión vuelve a chequear el rol en cada operación de todos modos.
type Menu struct {
	p    *prompter
	sess *session.Session
	cfg  Config
}

// NewMenu construye el menú sobre la entrada/salida indicadas.
func NewMenu(in io.Reader, out io.Writer, sess *session.Session, cfg Config) *Menu {
	return &Menu{p: newPrompter(in, out), sess: sess, cfg: cfg}
}

// Run corre el loop principal hasta que el usuario sale o la entrada se cierra.
func (m *Menu) Run() error {
	for {
		var done bool
		var err error
		if m.sess.IsAdmin() {
			done, err = m.adminMenu()
		} else {
			done, err = m.staffMenu()
		}
		if errors.Is(err, io.EOF) || done {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) adminMenu() (done bool, err error) {
	m.p.println(title("Stock Maintenance System"))
	m.p.println("1. Add item")
	m.p.println("2. Update quantity")
	m.p.println("3. Search item")
	m.p.println("4. View stock")
	m.p.println("5. Delete item")
	m.p.println("6. Low stock report")
	m.p.println("7. Total inventory value")
	m.p.println("8. Export stock report to CSV")
	m.p.println("9. Export stock report to PDF")
	m.p.println("10. Supplier management")
	m.p.println("11. Purchase order management")
	m.p.println("12. Barcode scan (simulate)")
	m.p.println("13. Dashboard summary")
	m.p.println("14. Exit")

	choice, err := m.p.readLine("Enter your choice: ")
	if err != nil {
		return false, err
	}
	switch choice {
	case "1":
		m.addItem()
	case "2":
		m.updateQuantity()
	case "3":
		m.searchItem()
	case "4":
		m.viewStock()
	case "5":
		m.deleteItem()
	case "6":
		m.lowStockReport()
	case "7":
		m.totalValue()
	case "8":
		m.exportCSV()
	case "9":
		m.exportPDF()
	case "10":
		if err := m.supplierMenu(); err != nil {
			return false, err
		}
	case "11":
		if err := m.orderMenu(); err != nil {
			return false, err
		}
	case "12":
		m.barcodeScan()
	case "13":
		m.dashboard()
	case "14":
		m.p.println("Exiting system. Goodbye!")
		return true, nil
	default:
		m.p.println("Invalid choice. Please try again.")
	}
	return false, nil
}

func (m *Menu) staffMenu() (done bool, err error) {
	m.p.println(title("Stock Maintenance System"))
	m.p.println("1. View stock")
	m.p.println("2. Search item")
	m.p.println("3. Exit")

	choice, err := m.p.readLine("Enter your choice: ")
	if err != nil {
		return false, err
	}
	switch choice {
	case "1":
		m.viewStock()
	case "2":
		m.searchItem()
	case "3":
		m.p.println("Exiting system. Goodbye!")
		return true, nil
	default:
		m.p.println("Invalid choice. Please try again.")
	}
	return false, nil
}

// ── operaciones de stock ──────────────────────────────────────────────────────

func (m *Menu) addItem() {
	m.p.println(title("Add New Stock Item"))
	itemID, err := m.p.readLine("Enter item ID: ")
	if err != nil {
		return
	}
	if itemID == "" {
		m.p.println("Item ID cannot be empty.")
		return
	}
	name, err := m.p.readLine("Enter item name: ")
	if err != nil {
		return
	}
	if name == "" {
		m.p.println("Item name cannot be empty.")
		return
	}
	quantity, err := m.p.readInt("Enter quantity: ")
	if err != nil {
		m.p.println("Invalid quantity or price. Must be numbers.")
		return
	}
	rawPrice, err := m.p.readLine("Enter price per unit: ")
	if err != nil {
		return
	}
	price, perr := decimal.NewFromString(rawPrice)
	if perr != nil {
		m.p.println("Invalid quantity or price. Must be numbers.")
		return
	}
	location, err := m.p.readLine("Enter location (warehouse/store): ")
	if err != nil {
		return
	}
	expiry, err := m.p.readLine("Enter expiry date (YYYY-MM-DD) or leave blank: ")
	if err != nil {
		return
	}

	item, err := m.sess.AddItem(dto.AddItemRequest{
		ItemID:     itemID,
		Name:       name,
		Quantity:   quantity,
		Price:      price,
		Location:   location,
		ExpiryDate: expiry,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		m.p.println("Item ID already exists.")
	case errors.Is(err, domain.ErrInvalidInput):
		m.p.println("Item ID, Name and Location are required; quantity and price must not be negative.")
	case err != nil:
		m.p.printf("Failed to add item: %v\n", err)
	default:
		if expiry != "" && item.ExpiryDate == "" {
			m.p.println("Invalid date format. Skipping expiry date.")
		}
		m.p.printf("Item '%s' added successfully.\n", item.Name)
	}
}

func (m *Menu) updateQuantity() {
	m.p.println(title("Update Stock Quantity"))
	itemID, err := m.p.readLine("Enter item ID to update: ")
	if err != nil {
		return
	}
	quantity, err := m.p.readInt("Enter new quantity: ")
	if err != nil {
		m.p.println("Invalid quantity. Must be an integer.")
		return
	}
	err = m.sess.UpdateQuantity(itemID, quantity)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m.p.println("Item not found.")
	case errors.Is(err, domain.ErrNegativeStock):
		m.p.println("Quantity cannot be negative.")
	case err != nil:
		m.p.printf("Failed to update quantity: %v\n", err)
	default:
		m.p.println("Quantity updated.")
	}
}

func (m *Menu) searchItem() {
	m.p.println(title("Search Stock Item"))
	query, err := m.p.readLine("Enter item ID or name to search: ")
	if err != nil {
		return
	}
	results, err := m.sess.SearchItem(query)
	if err != nil {
		m.p.println("No matching item found.")
		return
	}
	for _, item := range results {
		expiry := item.ExpiryDate
		if expiry == "" {
			expiry = "-"
		}
		m.p.printf("ID: %s, Name: %s, Quantity: %d, Price: %s, Location: %s, Expiry: %s\n",
			item.ItemID, item.Name, item.Quantity, item.Price.StringFixed(2), item.Location, expiry)
	}
}

func (m *Menu) viewStock() {
	m.p.println(title("Current Stock"))
	items, err := m.sess.ViewStock()
	if err != nil {
		m.p.printf("Failed to list stock: %v\n", err)
		return
	}
	if len(items) == 0 {
		m.p.println("Stock is empty.")
		return
	}
	m.renderStock(items)
}

func (m *Menu) deleteItem() {
	m.p.println(title("Delete Stock Item"))
	itemID, err := m.p.readLine("Enter item ID to delete: ")
	if err != nil {
		return
	}
	err = m.sess.DeleteItem(itemID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m.p.println("Item not found.")
	case err != nil:
		m.p.printf("Failed to delete item: %v\n", err)
	default:
		m.p.println("Item deleted.")
	}
}

func (m *Menu) lowStockReport() {
	m.p.println(title("Low Stock Report"))
	threshold, err := m.p.readIntDefault("Enter low stock threshold (default 5): ", m.cfg.DefaultThreshold)
	if err != nil {
		return
	}
	items, err := m.sess.LowStockReport(threshold)
	if err != nil {
		m.p.printf("Failed to build report: %v\n", err)
		return
	}
	if len(items) == 0 {
		m.p.println("No low stock items.")
		return
	}
	m.renderLowStock(items)
}

func (m *Menu) totalValue() {
	m.p.println(title("Total Inventory Value"))
	total, err := m.sess.TotalInventoryValue()
	if err != nil {
		m.p.printf("Failed to compute value: %v\n", err)
		return
	}
	m.p.printf("Total inventory value: $%s\n", total.StringFixed(2))
}

func (m *Menu) exportCSV() {
	switch err := m.sess.ExportCSV(m.cfg.CSVPath); {
	case errors.Is(err, domain.ErrNotFound):
		m.p.println("No stock data to export.")
	case err != nil:
		m.p.printf("Failed to export CSV: %v\n", err)
	default:
		m.p.printf("Stock data exported successfully to %s\n", m.cfg.CSVPath)
	}
}

func (m *Menu) exportPDF() {
	switch err := m.sess.ExportPDF(m.cfg.PDFPath); {
	case errors.Is(err, domain.ErrNotFound):
		m.p.println("No stock data to export.")
	case err != nil:
		m.p.printf("Failed to export PDF: %v\n", err)
	default:
		m.p.printf("Stock report exported successfully to %s\n", m.cfg.PDFPath)
	}
}

func (m *Menu) barcodeScan() {
	m.p.println(title("Barcode Scan (Simulated)"))
	barcode, err := m.p.readLine("Enter barcode (item ID): ")
	if err != nil {
		return
	}
	results, err := m.sess.SearchItem(barcode)
	if err != nil || len(results) == 0 || results[0].ItemID != barcode {
		m.p.println("Item not found.")
		return
	}
	scanned := results[0]
	m.p.printf("Scanned Item: %s, Quantity: %d, Price: %s\n",
		scanned.Name, scanned.Quantity, scanned.Price.StringFixed(2))
	delta, err := m.p.readInt("Enter quantity change (+ for add, - for remove): ")
	if err != nil {
		m.p.println("Invalid quantity change.")
		return
	}
	item, err := m.sess.BarcodeScan(barcode, delta)
	switch {
	case errors.Is(err, domain.ErrNegativeStock):
		m.p.println("Quantity cannot be negative.")
	case errors.Is(err, domain.ErrNotFound):
		m.p.println("Item not found.")
	case err != nil:
		m.p.printf("Failed to apply scan: %v\n", err)
	default:
		m.p.printf("Updated quantity to %d.\n", item.Quantity)
	}
}

func (m *Menu) dashboard() {
	m.p.println(title("Dashboard Summary"))
	summary, err := m.sess.Dashboard()
	if err != nil {
		m.p.printf("Failed to build dashboard: %v\n", err)
		return
	}
	m.renderDashboard(summary)
}

// receiveCtx contexto para la transacción de recepción de órdenes.
func receiveCtx() context.Context { return context.Background() }
