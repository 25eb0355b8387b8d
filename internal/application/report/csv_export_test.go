package report_test

import (
	"bytes"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/application/report"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/infrastructure/sqlite"
)

func newTestService(t *testing.T) (*report.Service, *sql.DB) {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "almacen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	stockRepo := sqlite.NewStockRepository(db)
	orderRepo := sqlite.NewPurchaseOrderRepository(db)
	return report.NewService(stockRepo, orderRepo, report.DefaultLowStockThreshold), db
}

func seedStock(t *testing.T, db *sql.DB) {
	t.Helper()
	stockRepo := sqlite.NewStockRepository(db)
	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, stockRepo.Create(&entity.StockItem{
		ItemID:     "A1",
		Name:       "Widget",
		Quantity:   10,
		Price:      decimal.RequireFromString("2.50"),
		Location:   "Aisle 1",
		ExpiryDate: &expiry,
	}))
	require.NoError(t, stockRepo.Create(&entity.StockItem{
		ItemID:   "B2",
		Name:     "Gadget",
		Quantity: 3,
		Price:    decimal.RequireFromString("0.10"),
		Location: "Shelf 4",
	}))
}

// El CSV exportado debe coincidir byte a byte con el fixture: cabecera fija,
// una fila por ítem en orden de tabla, vencimiento vacío cuando no hay.
// Regenerar con: go test ./internal/application/report -run TestWriteCSV -update
func TestWriteCSV_Golden(t *testing.T) {
	svc, db := newTestService(t)
	seedStock(t, db)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "stock_report", buf.Bytes())
}

func TestWriteCSV_StockVacio(t *testing.T) {
	svc, _ := newTestService(t)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(&buf))
	assert.Equal(t, "Item ID,Name,Quantity,Price,Location,Expiry Date\n", buf.String(),
		"sin stock el reporte es solo la cabecera")
}

// Con el stock vacío la exportación a archivo se rehúsa sin crear nada.
func TestExportCSV_SinStock(t *testing.T) {
	svc, _ := newTestService(t)
	path := filepath.Join(t.TempDir(), "stock.csv")

	err := svc.ExportCSV(path)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoFileExists(t, path)
}

func TestExportPDF_SinStock(t *testing.T) {
	svc, _ := newTestService(t)
	path := filepath.Join(t.TempDir(), "stock.pdf")

	err := svc.ExportPDF(path)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoFileExists(t, path)
}

func TestDashboard_UmbralPorDefecto(t *testing.T) {
	svc, db := newTestService(t)
	seedStock(t, db)

	summary, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalItems)
	assert.Equal(t, int64(1), summary.LowStockItems, "Gadget con 3 queda bajo el umbral por defecto de 5")
	assert.Equal(t, "25.30", summary.TotalValue.StringFixed(2))
	assert.Zero(t, summary.PendingOrders)
}
