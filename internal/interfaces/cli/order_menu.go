package cli

import (
	"errors"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
)

// supplierMenu submenú de gestión de proveedores.
func (m *Menu) supplierMenu() error {
	for {
		m.p.println(title("Supplier Management"))
		m.p.println("1. Add supplier")
		m.p.println("2. View suppliers")
		m.p.println("3. Delete supplier")
		m.p.println("4. Back to main menu")
		choice, err := m.p.readLine("Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			m.addSupplier()
		case "2":
			m.viewSuppliers()
		case "3":
			m.deleteSupplier()
		case "4":
			return nil
		default:
			m.p.println("Invalid choice.")
		}
	}
}

func (m *Menu) addSupplier() {
	m.p.println(title("Add Supplier"))
	name, err := m.p.readLine("Enter supplier name: ")
	if err != nil {
		return
	}
	if name == "" {
		m.p.println("Supplier name cannot be empty.")
		return
	}
	contact, err := m.p.readLine("Enter contact info (optional): ")
	if err != nil {
		return
	}
	sup, err := m.sess.AddSupplier(dto.AddSupplierRequest{Name: name, Contact: contact})
	if err != nil {
		m.p.printf("Failed to add supplier: %v\n", err)
		return
	}
	m.p.printf("Supplier '%s' added.\n", sup.Name)
}

func (m *Menu) viewSuppliers() {
	m.p.println(title("Suppliers List"))
	suppliers, err := m.sess.ViewSuppliers()
	if err != nil {
		m.p.printf("Failed to list suppliers: %v\n", err)
		return
	}
	if len(suppliers) == 0 {
		m.p.println("No suppliers found.")
		return
	}
	m.renderSuppliers(suppliers)
}

func (m *Menu) deleteSupplier() {
	m.p.println(title("Delete Supplier"))
	supplierID, err := m.p.readInt("Enter supplier ID to delete: ")
	if err != nil {
		m.p.println("Invalid supplier ID.")
		return
	}
	err = m.sess.DeleteSupplier(supplierID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m.p.println("Supplier not found.")
	case err != nil:
		m.p.printf("Failed to delete supplier: %v\n", err)
	default:
		m.p.println("Supplier deleted.")
	}
}

// orderMenu submenú de órdenes de compra.
func (m *Menu) orderMenu() error {
	for {
		m.p.println(title("Purchase Order Management"))
		m.p.println("1. Create purchase order")
		m.p.println("2. View all purchase orders")
		m.p.println("3. View pending purchase orders")
		m.p.println("4. Receive purchase order")
		m.p.println("5. Back to main menu")
		choice, err := m.p.readLine("Enter your choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			m.createOrder()
		case "2":
			m.viewOrders()
		case "3":
			m.viewPendingOrders()
		case "4":
			m.receiveOrder()
		case "5":
			return nil
		default:
			m.p.println("Invalid choice.")
		}
	}
}

func (m *Menu) createOrder() {
	m.p.println(title("Create Purchase Order"))
	itemID, err := m.p.readLine("Enter item ID to order: ")
	if err != nil {
		return
	}
	m.viewSuppliers()
	supplierID, err := m.p.readInt("Enter supplier ID: ")
	if err != nil {
		m.p.println("Invalid supplier ID.")
		return
	}
	quantity, err := m.p.readInt("Enter order quantity: ")
	if err != nil {
		m.p.println("Invalid quantity.")
		return
	}
	_, err = m.sess.CreateOrder(dto.CreateOrderRequest{
		ItemID:     itemID,
		SupplierID: supplierID,
		Quantity:   quantity,
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		m.p.printf("Cannot create order: %v\n", err)
	case errors.Is(err, domain.ErrInvalidInput):
		m.p.println("Quantity must be a positive integer.")
	case err != nil:
		m.p.printf("Failed to create order: %v\n", err)
	default:
		m.p.println("Purchase order created.")
	}
}

func (m *Menu) viewOrders() {
	m.p.println(title("Purchase Orders"))
	orders, err := m.sess.ViewOrders()
	if err != nil {
		m.p.printf("Failed to list orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		m.p.println("No purchase orders found.")
		return
	}
	m.renderOrders(orders)
}

func (m *Menu) viewPendingOrders() {
	orders, err := m.sess.ViewPendingOrders()
	if err != nil {
		m.p.printf("Failed to list orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		m.p.println("No pending purchase orders.")
		return
	}
	m.renderOrders(orders)
}

func (m *Menu) receiveOrder() {
	m.p.println(title("Receive Purchase Order"))
	orderID, err := m.p.readInt("Enter purchase order ID to mark as received: ")
	if err != nil {
		m.p.println("Invalid order ID.")
		return
	}
	result, err := m.sess.ReceiveOrder(receiveCtx(), orderID)
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		m.p.println("Purchase order not found or already received.")
	case err != nil:
		m.p.printf("Failed to receive order: %v\n", err)
	default:
		m.p.printf("Purchase order marked as received and stock updated (item %s now at %d).\n",
			result.ItemID, result.NewQuantity)
	}
}
