// Package forms implementa el front end de formularios sobre tview: cuatro
// pestañas (Stock, Suppliers, Purchase Orders, Dashboard) con tablas
// refrescables, formularios modales para altas y diálogos de confirmación
// para borrados y recepción de órdenes. Es el equivalente del GUI de
// escritorio original, sin salir de la terminal.
//
// Igual que el menú de texto, es puro pegamento: cada acción llama a la
// sesión y muestra el resultado; la sesión vuelve a chequear el rol.
package forms

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jhoicas/almacen/internal/application/session"
)

// Config rutas de exportación que usan los botones de la pestaña Stock.
type Config struct {
	CSVPath string
	PDFPath string
}

// Nombres de las páginas (pestañas y modales).
const (
	pageStock     = "stock"
	pageSuppliers = "suppliers"
	pageOrders    = "orders"
	pageDashboard = "dashboard"
	pageModal     = "modal"
)

var tabLabels = map[string]string{
	pageStock:     "Stock",
	pageSuppliers: "Suppliers",
	pageOrders:    "Purchase Orders",
	pageDashboard: "Dashboard",
}

// Teclas de función que rotan por las pestañas visibles, en orden.
var tabKeys = []tcell.Key{tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4}

// App aplicación de formularios.
type App struct {
	app   *tview.Application
	pages *tview.Pages
	nav   *tview.TextView
	sess  *session.Session
	cfg   Config

	// Pestañas visibles para el rol de la sesión. El rol también se chequea
	// adentro de la sesión; acá solo se decide qué se muestra.
	tabs []string

	stockTable    *tview.Table
	supplierTable *tview.Table
	orderTable    *tview.Table
	dashboardView *tview.TextView

	current string
}

// New construye la aplicación con las pestañas que el rol permite ver: staff
// solo consulta el stock; admin ve las cuatro.
func New(sess *session.Session, cfg Config) *App {
	a := &App{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		nav:     tview.NewTextView().SetDynamicColors(true),
		sess:    sess,
		cfg:     cfg,
		current: pageStock,
	}

	a.tabs = []string{pageStock}
	a.pages.AddPage(pageStock, a.buildStockTab(), true, true)
	if sess.IsAdmin() {
		a.tabs = append(a.tabs, pageSuppliers, pageOrders, pageDashboard)
		a.pages.AddPage(pageSuppliers, a.buildSuppliersTab(), true, false)
		a.pages.AddPage(pageOrders, a.buildOrdersTab(), true, false)
		a.pages.AddPage(pageDashboard, a.buildDashboardTab(), true, false)
	}

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.nav, 1, 0, false).
		AddItem(a.pages, 0, 1, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		for i, key := range tabKeys {
			if event.Key() == key && i < len(a.tabs) {
				a.switchTab(a.tabs[i])
				return nil
			}
		}
		return event
	})

	a.refreshNav()
	a.app.SetRoot(root, true)
	return a
}

// Run bloquea hasta que el usuario cierra la aplicación (Ctrl-C).
func (a *App) Run() error {
	return a.app.Run()
}

func (a *App) switchTab(name string) {
	a.current = name
	a.pages.SwitchToPage(name)
	a.refreshTab(name)
	a.refreshNav()
}

func (a *App) refreshTab(name string) {
	switch name {
	case pageStock:
		a.refreshStock()
	case pageSuppliers:
		a.refreshSuppliers()
	case pageOrders:
		a.refreshOrders()
	case pageDashboard:
		a.refreshDashboard()
	}
}

func (a *App) refreshNav() {
	a.nav.Clear()
	for i, name := range a.tabs {
		label := tabLabels[name]
		if name == a.current {
			fmt.Fprintf(a.nav, "[black:aqua] F%d %s [-:-] ", i+1, label)
		} else {
			fmt.Fprintf(a.nav, " F%d %s  ", i+1, label)
		}
	}
}

// ── modales ───────────────────────────────────────────────────────────────────

// showMessage muestra un modal informativo con un solo botón OK.
func (a *App) showMessage(text string) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			a.closeModal()
		})
	a.pages.AddPage(pageModal, modal, true, true)
}

// showConfirm muestra un modal Sí/No y ejecuta onYes al confirmar.
func (a *App) showConfirm(text string, onYes func()) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Yes", "No"}).
		SetDoneFunc(func(_ int, label string) {
			a.closeModal()
			if label == "Yes" {
				onYes()
			}
		})
	a.pages.AddPage(pageModal, modal, true, true)
}

// showForm muestra un formulario modal centrado.
func (a *App) showForm(titleText string, form *tview.Form) {
	form.SetBorder(true).SetTitle(" " + titleText + " ")
	form.SetCancelFunc(a.closeModal)
	centered := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(form, form.GetFormItemCount()*2+5, 0, true).
			AddItem(nil, 0, 1, false), 60, 0, true).
		AddItem(nil, 0, 1, false)
	a.pages.AddPage(pageModal, centered, true, true)
	a.app.SetFocus(form)
}

func (a *App) closeModal() {
	a.pages.RemovePage(pageModal)
	a.refreshTab(a.current)
}
