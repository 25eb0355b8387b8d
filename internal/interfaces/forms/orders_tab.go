package forms

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain/entity"
)

var orderColumns = []string{"Order ID", "Item ID", "Supplier ID", "Quantity", "Order Date", "Status"}

func (a *App) buildOrdersTab() tview.Primitive {
	a.orderTable = newTable()
	a.orderTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'c':
			a.orderCreateForm()
			return nil
		case 'v':
			a.orderReceiveConfirm()
			return nil
		case 'r':
			a.refreshOrders()
			return nil
		}
		return event
	})

	help := tview.NewTextView().
		SetText(" c: create order   v: receive selected order   r: refresh")
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.orderTable, 0, 1, true).
		AddItem(help, 1, 0, false)
}

func (a *App) refreshOrders() {
	orders, err := a.sess.ViewOrders()
	if err != nil {
		a.showMessage(userMessage(err))
		return
	}
	fillHeader(a.orderTable, orderColumns)
	for i, o := range orders {
		setRow(a.orderTable, i+1,
			strconv.FormatInt(o.OrderID, 10),
			o.ItemID,
			strconv.FormatInt(o.SupplierID, 10),
			strconv.FormatInt(o.Quantity, 10),
			o.OrderDate,
			o.Status,
		)
	}
}

// selectedOrder devuelve (id, status) de la fila seleccionada, o (0, "").
func (a *App) selectedOrder() (int64, string) {
	row, _ := a.orderTable.GetSelection()
	if row < 1 || row >= a.orderTable.GetRowCount() {
		return 0, ""
	}
	id, err := strconv.ParseInt(a.orderTable.GetCell(row, 0).Text, 10, 64)
	if err != nil {
		return 0, ""
	}
	return id, a.orderTable.GetCell(row, 5).Text
}

func (a *App) orderCreateForm() {
	form := tview.NewForm().
		AddInputField("Item ID", "", 20, nil, nil).
		AddInputField("Supplier ID", "", 10, nil, nil).
		AddInputField("Quantity", "", 10, nil, nil)
	form.AddButton("Create", func() {
		supplierID, err := strconv.ParseInt(fieldText(form, "Supplier ID"), 10, 64)
		if err != nil {
			a.showMessage("Supplier ID must be an integer.")
			return
		}
		quantity, err := strconv.ParseInt(fieldText(form, "Quantity"), 10, 64)
		if err != nil {
			a.showMessage("Quantity must be an integer.")
			return
		}
		_, err = a.sess.CreateOrder(dto.CreateOrderRequest{
			ItemID:     fieldText(form, "Item ID"),
			SupplierID: supplierID,
			Quantity:   quantity,
		})
		if err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.closeModal()
		a.showMessage("Purchase order created.")
	})
	form.AddButton("Cancel", func() { a.closeModal() })
	a.showForm("Create Purchase Order", form)
}

func (a *App) orderReceiveConfirm() {
	id, status := a.selectedOrder()
	if id == 0 {
		a.showMessage("Select an order to receive.")
		return
	}
	if status == entity.OrderStatusReceived {
		a.showMessage("Order already received.")
		return
	}
	a.showConfirm(fmt.Sprintf("Mark order %d as received?", id), func() {
		result, err := a.sess.ReceiveOrder(context.Background(), id)
		if err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.showMessage(fmt.Sprintf("Order received; item %s now at %d.",
			result.ItemID, result.NewQuantity))
	})
}
