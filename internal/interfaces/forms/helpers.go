package forms

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jhoicas/almacen/internal/domain"
)

// newTable tabla con fila de cabecera fija y selección por fila.
func newTable() *tview.Table {
	t := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	t.SetBorder(true)
	return t
}

// fillHeader limpia la tabla y escribe la cabecera no seleccionable.
func fillHeader(t *tview.Table, columns []string) {
	t.Clear()
	for c, name := range columns {
		t.SetCell(0, c, tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}
}

// setRow escribe una fila de datos.
func setRow(t *tview.Table, row int, values ...string) {
	for c, v := range values {
		t.SetCell(row, c, tview.NewTableCell(v).SetExpansion(1))
	}
}

// fieldText devuelve el texto de un input field del formulario.
func fieldText(form *tview.Form, label string) string {
	return form.GetFormItemByLabel(label).(*tview.InputField).GetText()
}

// userMessage traduce errores de dominio a texto para el diálogo.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return "That ID already exists."
	case errors.Is(err, domain.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return "Invalid input: required fields missing or values out of range."
	case errors.Is(err, domain.ErrNegativeStock):
		return "Quantity cannot be negative."
	case errors.Is(err, domain.ErrConflict):
		return "Order already received."
	case errors.Is(err, domain.ErrForbidden):
		return "Your role does not allow this operation."
	default:
		return err.Error()
	}
}
