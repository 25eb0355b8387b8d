package forms

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/domain"
)

var stockColumns = []string{"ID", "Name", "Quantity", "Price", "Location", "Expiry Date"}

// stockKeyActions teclas habilitadas en la pestaña de stock. Staff solo
// refresca; las acciones de mutación y exportación son de admin.
func (a *App) stockKeyActions() map[rune]func() {
	actions := map[rune]func(){
		'r': a.refreshStock,
	}
	if a.sess.IsAdmin() {
		actions['a'] = a.stockAddForm
		actions['u'] = a.stockUpdateQuantityForm
		actions['e'] = a.stockEditForm
		actions['d'] = a.stockDeleteConfirm
		actions['c'] = a.exportCSV
		actions['p'] = a.exportPDF
	}
	return actions
}

func (a *App) buildStockTab() tview.Primitive {
	a.stockTable = newTable()
	actions := a.stockKeyActions()
	a.stockTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if action, ok := actions[event.Rune()]; ok {
			action()
			return nil
		}
		return event
	})
	a.refreshStock()

	helpText := " r: refresh"
	if a.sess.IsAdmin() {
		helpText = " a: add item   u: update quantity   e: edit item   d: delete   c: export CSV   p: export PDF   r: refresh"
	}
	help := tview.NewTextView().SetText(helpText)
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.stockTable, 0, 1, true).
		AddItem(help, 1, 0, false)
}

func (a *App) refreshStock() {
	items, err := a.sess.ViewStock()
	if err != nil {
		a.showMessage("Failed to list stock: " + err.Error())
		return
	}
	fillHeader(a.stockTable, stockColumns)
	for i, item := range items {
		expiry := item.ExpiryDate
		if expiry == "" {
			expiry = "-"
		}
		setRow(a.stockTable, i+1,
			item.ItemID, item.Name,
			strconv.FormatInt(item.Quantity, 10),
			item.Price.StringFixed(2),
			item.Location, expiry,
		)
	}
}

// selectedItemID devuelve el item_id de la fila seleccionada, o "" si la
// tabla está vacía.
func (a *App) selectedItemID() string {
	row, _ := a.stockTable.GetSelection()
	if row < 1 || row >= a.stockTable.GetRowCount() {
		return ""
	}
	return a.stockTable.GetCell(row, 0).Text
}

func (a *App) stockAddForm() {
	form := tview.NewForm().
		AddInputField("Item ID", "", 20, nil, nil).
		AddInputField("Name", "", 30, nil, nil).
		AddInputField("Quantity", "", 10, nil, nil).
		AddInputField("Price", "", 10, nil, nil).
		AddInputField("Location", "", 20, nil, nil).
		AddInputField("Expiry Date (YYYY-MM-DD)", "", 12, nil, nil)
	form.AddButton("Add", func() {
		quantity, err := strconv.ParseInt(fieldText(form, "Quantity"), 10, 64)
		if err != nil {
			a.showMessage("Quantity must be an integer.")
			return
		}
		price, err := decimal.NewFromString(fieldText(form, "Price"))
		if err != nil {
			a.showMessage("Price must be a number.")
			return
		}
		item, err := a.sess.AddItem(dto.AddItemRequest{
			ItemID:     fieldText(form, "Item ID"),
			Name:       fieldText(form, "Name"),
			Quantity:   quantity,
			Price:      price,
			Location:   fieldText(form, "Location"),
			ExpiryDate: fieldText(form, "Expiry Date (YYYY-MM-DD)"),
		})
		if err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.closeModal()
		a.showMessage(fmt.Sprintf("Item '%s' added.", item.Name))
	})
	form.AddButton("Cancel", func() { a.closeModal() })
	a.showForm("Add New Item", form)
}

func (a *App) stockUpdateQuantityForm() {
	itemID := a.selectedItemID()
	if itemID == "" {
		a.showMessage("Select an item to update.")
		return
	}
	form := tview.NewForm().
		AddInputField("New quantity", "", 10, nil, nil)
	form.AddButton("Update", func() {
		quantity, err := strconv.ParseInt(fieldText(form, "New quantity"), 10, 64)
		if err != nil {
			a.showMessage("Quantity must be an integer.")
			return
		}
		if err := a.sess.UpdateQuantity(itemID, quantity); err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.closeModal()
		a.showMessage("Quantity updated.")
	})
	form.AddButton("Cancel", func() { a.closeModal() })
	a.showForm(fmt.Sprintf("Update Quantity: %s", itemID), form)
}

// stockEditForm actualización parcial: los campos que quedan vacíos no cambian.
func (a *App) stockEditForm() {
	itemID := a.selectedItemID()
	if itemID == "" {
		a.showMessage("Select an item to edit.")
		return
	}
	form := tview.NewForm().
		AddInputField("Name", "", 30, nil, nil).
		AddInputField("Quantity", "", 10, nil, nil).
		AddInputField("Price", "", 10, nil, nil).
		AddInputField("Location", "", 20, nil, nil).
		AddInputField("Expiry Date (YYYY-MM-DD)", "", 12, nil, nil)
	form.AddButton("Save", func() {
		var req dto.UpdateItemRequest
		if v := fieldText(form, "Name"); v != "" {
			req.Name = &v
		}
		if v := fieldText(form, "Quantity"); v != "" {
			quantity, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				a.showMessage("Quantity must be an integer.")
				return
			}
			req.Quantity = &quantity
		}
		if v := fieldText(form, "Price"); v != "" {
			price, err := decimal.NewFromString(v)
			if err != nil {
				a.showMessage("Price must be a number.")
				return
			}
			req.Price = &price
		}
		if v := fieldText(form, "Location"); v != "" {
			req.Location = &v
		}
		if v := fieldText(form, "Expiry Date (YYYY-MM-DD)"); v != "" {
			req.ExpiryDate = &v
		}
		if err := a.sess.UpdateItem(itemID, req); err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.closeModal()
		a.showMessage("Item updated.")
	})
	form.AddButton("Cancel", func() { a.closeModal() })
	a.showForm(fmt.Sprintf("Edit Item: %s", itemID), form)
}

func (a *App) stockDeleteConfirm() {
	itemID := a.selectedItemID()
	if itemID == "" {
		a.showMessage("Select an item to delete.")
		return
	}
	a.showConfirm(fmt.Sprintf("Are you sure you want to delete item %s?", itemID), func() {
		if err := a.sess.DeleteItem(itemID); err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.showMessage("Item deleted.")
	})
}

func (a *App) exportCSV() {
	switch err := a.sess.ExportCSV(a.cfg.CSVPath); {
	case errors.Is(err, domain.ErrNotFound):
		a.showMessage("No stock data to export.")
	case err != nil:
		a.showMessage("Failed to export CSV: " + err.Error())
	default:
		a.showMessage("Stock data exported to " + a.cfg.CSVPath)
	}
}

func (a *App) exportPDF() {
	switch err := a.sess.ExportPDF(a.cfg.PDFPath); {
	case errors.Is(err, domain.ErrNotFound):
		a.showMessage("No stock data to export.")
	case err != nil:
		a.showMessage("Failed to export PDF: " + err.Error())
	default:
		a.showMessage("Stock report exported to " + a.cfg.PDFPath)
	}
}
