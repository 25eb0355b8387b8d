package forms

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (a *App) buildDashboardTab() tview.Primitive {
	a.dashboardView = tview.NewTextView().SetDynamicColors(true)
	a.dashboardView.SetBorder(true).SetTitle(" Dashboard Summary ")
	a.dashboardView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'r' {
			a.refreshDashboard()
			return nil
		}
		return event
	})

	help := tview.NewTextView().SetText(" r: refresh")
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.dashboardView, 0, 1, true).
		AddItem(help, 1, 0, false)
}

func (a *App) refreshDashboard() {
	summary, err := a.sess.Dashboard()
	if err != nil {
		a.showMessage(userMessage(err))
		return
	}
	a.dashboardView.Clear()
	fmt.Fprintf(a.dashboardView, "\n  Total unique items: %d\n", summary.TotalItems)
	fmt.Fprintf(a.dashboardView, "  Low stock items: %d\n", summary.LowStockItems)
	fmt.Fprintf(a.dashboardView, "  Total inventory value: $%s\n", summary.TotalValue.StringFixed(2))
	fmt.Fprintf(a.dashboardView, "  Pending purchase orders: %d\n", summary.PendingOrders)
}
