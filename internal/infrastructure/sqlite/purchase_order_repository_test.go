package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen/internal/domain/entity"
	"github.com/jhoicas/almacen/internal/infrastructure/sqlite"
)

func newPendingOrder(itemID string, supplierID, qty int64) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		ItemID:     itemID,
		SupplierID: supplierID,
		Quantity:   qty,
		OrderDate:  time.Date(2026, 8, 29, 14, 30, 0, 0, time.Local),
		Status:     entity.OrderStatusPending,
	}
}

func TestPurchaseOrderRepo_CreateAsignaID(t *testing.T) {
	repo := sqlite.NewPurchaseOrderRepository(openTestDB(t))

	o1 := newPendingOrder("A1", 1, 5)
	require.NoError(t, repo.Create(o1))
	assert.Positive(t, o1.OrderID, "Create debe asignar el id autogenerado en la entidad")

	o2 := newPendingOrder("B2", 1, 3)
	require.NoError(t, repo.Create(o2))
	assert.Greater(t, o2.OrderID, o1.OrderID, "los ids son crecientes")
}

func TestPurchaseOrderRepo_GetByID_ConservaFechaYEstado(t *testing.T) {
	repo := sqlite.NewPurchaseOrderRepository(openTestDB(t))

	o := newPendingOrder("A1", 1, 5)
	require.NoError(t, repo.Create(o))

	got, err := repo.GetByID(o.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A1", got.ItemID)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
	assert.True(t, got.IsPending())
	assert.Equal(t, "2026-08-29 14:30:00", got.OrderDate.Format("2006-01-02 15:04:05"))
}

func TestPurchaseOrderRepo_GetByID_Inexistente(t *testing.T) {
	repo := sqlite.NewPurchaseOrderRepository(openTestDB(t))

	got, err := repo.GetByID(999)
	require.NoError(t, err, "ausencia no es error")
	assert.Nil(t, got)
}

func TestPurchaseOrderRepo_UpdateStatusYListByStatus(t *testing.T) {
	repo := sqlite.NewPurchaseOrderRepository(openTestDB(t))

	o1 := newPendingOrder("A1", 1, 5)
	o2 := newPendingOrder("B2", 1, 3)
	require.NoError(t, repo.Create(o1))
	require.NoError(t, repo.Create(o2))

	require.NoError(t, repo.UpdateStatus(o1.OrderID, entity.OrderStatusReceived))

	pending, err := repo.ListByStatus(entity.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, o2.OrderID, pending[0].OrderID)

	n, err := repo.CountByStatus(entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
