package session_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/application/dto"
	"github.com/jhoicas/almacen/internal/application/report"
	"github.com/jhoicas/almacen/internal/application/session"
	"github.com/jhoicas/almacen/internal/domain"
	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// env agrupa la base y las sesiones de test sobre ella.
type env struct {
	db    *sql.DB
	admin *session.Session
	staff *session.Session
}

// newTestEnv arma una base temporal con todo el cableado real (repos SQLite,
// TxRunner, reportes) y una sesión admin y otra staff sobre ella.
func newTestEnv(t *testing.T) *env {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "almacen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	stockRepo := sqlite.NewStockRepository(db)
	supplierRepo := sqlite.NewSupplierRepository(db)
	orderRepo := sqlite.NewPurchaseOrderRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)
	txRunner := sqlite.NewTxRunner(db)
	reports := report.NewService(stockRepo, orderRepo, report.DefaultLowStockThreshold)
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	newSess := func(username, role string) *session.Session {
		return session.New(username, role,
			stockRepo, supplierRepo, orderRepo, auditRepo, txRunner, reports, log)
	}
	return &env{
		db:    db,
		admin: newSess("admin", entity.RoleAdmin),
		staff: newSess("staff", entity.RoleStaff),
	}
}

func addItemRequest(id, name string, qty int64, price string) dto.AddItemRequest {
	return dto.AddItemRequest{
		ItemID:   id,
		Name:     name,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
		Location: "Aisle 1",
	}
}

// mustAddItem da de alta un ítem con la sesión admin o corta el test.
func (e *env) mustAddItem(t *testing.T, id, name string, qty int64, price string) {
	t.Helper()
	_, err := e.admin.AddItem(addItemRequest(id, name, qty, price))
	require.NoError(t, err)
}

// mustAddSupplier da de alta un proveedor y devuelve su id.
func (e *env) mustAddSupplier(t *testing.T, name string) int64 {
	t.Helper()
	sup, err := e.admin.AddSupplier(dto.AddSupplierRequest{Name: name})
	require.NoError(t, err)
	return sup.SupplierID
}

// auditCount cuenta las filas de auditoría registradas.
func (e *env) auditCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM audit_log`).Scan(&n))
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_Alta(t *testing.T) {
	e := newTestEnv(t)

	got, err := e.admin.AddItem(addItemRequest("A1", "Widget", 10, "2.50"))
	require.NoError(t, err)
	assert.Equal(t, "A1", got.ItemID)
	assert.Equal(t, int64(10), got.Quantity)
	assert.Equal(t, "2.50", got.Price.String())
	assert.Equal(t, int64(1), e.auditCount(t), "el alta debe dejar una fila de auditoría")
}

func TestAddItem_IDDuplicado(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	_, err := e.admin.AddItem(addItemRequest("A1", "Otro", 1, "1.00"))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el ítem existente no debe tocarse")

	items, err := e.admin.ViewStock()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestAddItem_EntradaInvalida(t *testing.T) {
	e := newTestEnv(t)

	casos := []dto.AddItemRequest{
		addItemRequest("", "Widget", 10, "2.50"),
		addItemRequest("A1", "   ", 10, "2.50"),
		addItemRequest("A1", "Widget", -1, "2.50"),
		addItemRequest("A1", "Widget", 10, "-0.01"),
	}
	for _, in := range casos {
		_, err := e.admin.AddItem(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Una fecha de vencimiento que no parsea se descarta en silencio; el alta
// procede sin fecha.
func TestAddItem_FechaInvalidaSeDescarta(t *testing.T) {
	e := newTestEnv(t)

	in := addItemRequest("A1", "Widget", 10, "2.50")
	in.ExpiryDate = "31/12/2026"
	got, err := e.admin.AddItem(in)
	require.NoError(t, err)
	assert.Empty(t, got.ExpiryDate, "la fecha que no parsea se descarta, no se rechaza el alta")
}

func TestUpdateQuantity_RechazaNegativos(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	err := e.admin.UpdateQuantity("A1", -1)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	items, err := e.admin.SearchItem("A1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), items[0].Quantity, "la cantidad no debe cambiar tras el rechazo")
}

func TestUpdateQuantity_ItemInexistente(t *testing.T) {
	e := newTestEnv(t)

	err := e.admin.UpdateQuantity("ZZZ", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchItem_PorIDYLuegoNombre(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	porID, err := e.staff.SearchItem("A1")
	require.NoError(t, err)
	require.Len(t, porID, 1)

	porNombre, err := e.staff.SearchItem("widget")
	require.NoError(t, err)
	require.Len(t, porNombre, 1, "la búsqueda por nombre no distingue mayúsculas")

	_, err = e.staff.SearchItem("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteItem(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	require.NoError(t, e.admin.DeleteItem("A1"))
	assert.ErrorIs(t, e.admin.DeleteItem("A1"), domain.ErrNotFound)
}

// El valor total se recalcula en cada llamada: después de mutar cantidades
// debe reflejar el estado actual, con aritmética decimal exacta.
func TestTotalInventoryValue_SeRecalcula(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	total, err := e.admin.TotalInventoryValue()
	require.NoError(t, err)
	assert.Equal(t, "25.00", total.StringFixed(2))

	require.NoError(t, e.admin.UpdateQuantity("A1", 4))
	total, err = e.admin.TotalInventoryValue()
	require.NoError(t, err)
	assert.Equal(t, "10.00", total.StringFixed(2))
}

// El umbral es estrictamente menor: cantidad igual al umbral no es stock bajo.
func TestLowStockReport_UmbralEstricto(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 4, "2.50")
	e.mustAddItem(t, "B2", "Gadget", 5, "3.00")

	low, err := e.admin.LowStockReport(5)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "A1", low[0].ItemID)
}

func TestBarcodeScan_AplicaDelta(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	got, err := e.admin.BarcodeScan("A1", -3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Quantity)

	got, err = e.admin.BarcodeScan("A1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.Quantity)
}

// Un delta que dejaría la cantidad negativa se rechaza sin tocar el stock.
func TestBarcodeScan_RechazaResultadoNegativo(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 2, "2.50")

	_, err := e.admin.BarcodeScan("A1", -3)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	items, err := e.admin.SearchItem("A1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestUpdateItem_Parcial(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	newName := "Widget Pro"
	newQty := int64(7)
	require.NoError(t, e.admin.UpdateItem("A1", dto.UpdateItemRequest{
		Name:     &newName,
		Quantity: &newQty,
	}))

	items, err := e.admin.SearchItem("A1")
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", items[0].Name)
	assert.Equal(t, int64(7), items[0].Quantity)
	assert.Equal(t, "2.50", items[0].Price.String(), "el precio no estaba en el patch")
}

func TestUpdateItem_CantidadNegativaEnPatch(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	bad := int64(-5)
	err := e.admin.UpdateItem("A1", dto.UpdateItemRequest{Quantity: &bad})
	assert.ErrorIs(t, err, domain.ErrNegativeStock,
		"la actualización parcial pasa por la misma validación de cantidad")
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestAddSupplier_NombreObligatorio(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.admin.AddSupplier(dto.AddSupplierRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sup, err := e.admin.AddSupplier(dto.AddSupplierRequest{Name: "Acme"})
	require.NoError(t, err)
	assert.Positive(t, sup.SupplierID)
	assert.Empty(t, sup.Contact, "el contacto es opcional")
}

func TestDeleteSupplier_Inexistente(t *testing.T) {
	e := newTestEnv(t)

	assert.ErrorIs(t, e.admin.DeleteSupplier(99), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_ValidaReferencias(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")
	supID := e.mustAddSupplier(t, "Acme")

	// Ítem inexistente
	_, err := e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "ZZZ", SupplierID: supID, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Proveedor inexistente
	_, err = e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: 999, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Cantidad no positiva
	_, err = e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: supID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	order, err := e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: supID, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status, "una orden nueva arranca pendiente")
}

// Recibir una orden pendiente suma su cantidad al stock y la marca recibida,
// todo o nada: 10 en stock + orden de 5 = 15.
func TestReceiveOrder_SumaStockYMarcaRecibida(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")
	supID := e.mustAddSupplier(t, "Acme")
	order, err := e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: supID, Quantity: 5})
	require.NoError(t, err)

	result, err := e.admin.ReceiveOrder(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), result.NewQuantity)

	items, err := e.admin.SearchItem("A1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), items[0].Quantity)

	pending, err := e.admin.ViewPendingOrders()
	require.NoError(t, err)
	assert.Empty(t, pending, "la orden recibida ya no está pendiente")
}

// Recibir dos veces la misma orden debe fallar la segunda vez sin volver a
// sumar stock.
func TestReceiveOrder_YaRecibida(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")
	supID := e.mustAddSupplier(t, "Acme")
	order, err := e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: supID, Quantity: 5})
	require.NoError(t, err)

	_, err = e.admin.ReceiveOrder(context.Background(), order.OrderID)
	require.NoError(t, err)

	_, err = e.admin.ReceiveOrder(context.Background(), order.OrderID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	items, err := e.admin.SearchItem("A1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), items[0].Quantity, "la cantidad no debe sumarse dos veces")
}

func TestReceiveOrder_Inexistente(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.admin.ReceiveOrder(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el ítem fue borrado después de crear la orden, la recepción falla y la
// orden sigue pendiente: la transacción deshace el cambio de estado.
func TestReceiveOrder_ItemColganteHaceRollback(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")
	supID := e.mustAddSupplier(t, "Acme")
	order, err := e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: supID, Quantity: 5})
	require.NoError(t, err)

	require.NoError(t, e.admin.DeleteItem("A1"))

	_, err = e.admin.ReceiveOrder(context.Background(), order.OrderID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pending, err := e.admin.ViewPendingOrders()
	require.NoError(t, err)
	require.Len(t, pending, 1, "la orden debe seguir pendiente tras el rollback")
	assert.Equal(t, order.OrderID, pending[0].OrderID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Resumen(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")
	e.mustAddItem(t, "B2", "Gadget", 2, "3.00")
	supID := e.mustAddSupplier(t, "Acme")
	_, err := e.admin.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: supID, Quantity: 5})
	require.NoError(t, err)

	summary, err := e.admin.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalItems)
	assert.Equal(t, int64(1), summary.LowStockItems, "Gadget con 2 está bajo el umbral por defecto de 5")
	assert.Equal(t, "31.00", summary.TotalValue.StringFixed(2))
	assert.Equal(t, int64(1), summary.PendingOrders)
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles: toda operación privilegiada corta con ErrForbidden para staff,
// aunque el llamador tenga la Session en la mano.
// ──────────────────────────────────────────────────────────────────────────────

func TestStaff_OperacionesPrivilegiadasProhibidas(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	_, err := e.staff.AddItem(addItemRequest("B2", "Gadget", 1, "1.00"))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, e.staff.UpdateQuantity("A1", 5), domain.ErrForbidden)
	assert.ErrorIs(t, e.staff.DeleteItem("A1"), domain.ErrForbidden)

	_, err = e.staff.AddSupplier(dto.AddSupplierRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.staff.CreateOrder(dto.CreateOrderRequest{ItemID: "A1", SupplierID: 1, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.staff.ReceiveOrder(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.staff.Dashboard()
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.staff.LowStockReport(5)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.staff.BarcodeScan("A1", 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, e.staff.ExportCSV(filepath.Join(t.TempDir(), "out.csv")), domain.ErrForbidden)
}

func TestStaff_OperacionesDeLecturaPermitidas(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	items, err := e.staff.ViewStock()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	found, err := e.staff.SearchItem("A1")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestExportCSV_EscribeArchivoYAudita(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	path := filepath.Join(t.TempDir(), "stock.csv")
	before := e.auditCount(t)
	require.NoError(t, e.admin.ExportCSV(path))
	assert.Equal(t, before+1, e.auditCount(t), "la exportación queda en la auditoría")
	assert.FileExists(t, path)
}

func TestExportPDF_EscribeArchivo(t *testing.T) {
	e := newTestEnv(t)
	e.mustAddItem(t, "A1", "Widget", 10, "2.50")

	path := filepath.Join(t.TempDir(), "stock.pdf")
	require.NoError(t, e.admin.ExportPDF(path))
	assert.FileExists(t, path)
}
