package forms

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jhoicas/almacen/internal/application/dto"
)

var supplierColumns = []string{"ID", "Name", "Contact"}

func (a *App) buildSuppliersTab() tview.Primitive {
	a.supplierTable = newTable()
	a.supplierTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'a':
			a.supplierAddForm()
			return nil
		case 'd':
			a.supplierDeleteConfirm()
			return nil
		case 'r':
			a.refreshSuppliers()
			return nil
		}
		return event
	})

	help := tview.NewTextView().
		SetText(" a: add supplier   d: delete supplier   r: refresh")
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.supplierTable, 0, 1, true).
		AddItem(help, 1, 0, false)
}

func (a *App) refreshSuppliers() {
	suppliers, err := a.sess.ViewSuppliers()
	if err != nil {
		a.showMessage(userMessage(err))
		return
	}
	fillHeader(a.supplierTable, supplierColumns)
	for i, sup := range suppliers {
		setRow(a.supplierTable, i+1,
			strconv.FormatInt(sup.SupplierID, 10), sup.Name, sup.Contact)
	}
}

// selectedSupplier devuelve (id, nombre) de la fila seleccionada, o (0, "").
func (a *App) selectedSupplier() (int64, string) {
	row, _ := a.supplierTable.GetSelection()
	if row < 1 || row >= a.supplierTable.GetRowCount() {
		return 0, ""
	}
	id, err := strconv.ParseInt(a.supplierTable.GetCell(row, 0).Text, 10, 64)
	if err != nil {
		return 0, ""
	}
	return id, a.supplierTable.GetCell(row, 1).Text
}

func (a *App) supplierAddForm() {
	form := tview.NewForm().
		AddInputField("Name", "", 30, nil, nil).
		AddInputField("Contact", "", 30, nil, nil)
	form.AddButton("Add", func() {
		sup, err := a.sess.AddSupplier(dto.AddSupplierRequest{
			Name:    fieldText(form, "Name"),
			Contact: fieldText(form, "Contact"),
		})
		if err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.closeModal()
		a.showMessage(fmt.Sprintf("Supplier '%s' added.", sup.Name))
	})
	form.AddButton("Cancel", func() { a.closeModal() })
	a.showForm("Add Supplier", form)
}

func (a *App) supplierDeleteConfirm() {
	id, name := a.selectedSupplier()
	if id == 0 {
		a.showMessage("Select a supplier to delete.")
		return
	}
	a.showConfirm(fmt.Sprintf("Are you sure you want to delete supplier %s?", name), func() {
		if err := a.sess.DeleteSupplier(id); err != nil {
			a.showMessage(userMessage(err))
			return
		}
		a.showMessage("Supplier deleted.")
	})
}
