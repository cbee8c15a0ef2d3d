package service_test

import (
	"context"
	"testing"

	"warehouse-api/internal/service"
	"warehouse-api/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *storetest.Store
	products   *service.ProductService
	warehouses *service.WarehouseService
	inventory  *service.InventoryService
}

func newFixture() *fixture {
	store := storetest.New()
	return &fixture{
		store:      store,
		products:   service.NewProductService(store.Products()),
		warehouses: service.NewWarehouseService(store.Warehouses(), store.Inventory()),
		inventory:  service.NewInventoryService(store.Warehouses(), store.Products(), store.Inventory()),
	}
}

func (f *fixture) seed(t *testing.T, capacity float64, prices ...float64) (warehouseID int, productIDs []int) {
	t.Helper()
	ctx := context.Background()

	warehouseID, err := f.warehouses.Register(ctx, "W", "X", capacity)
	require.NoError(t, err)

	for _, price := range prices {
		id, err := f.products.Register(ctx, "P", price, "", nil)
		require.NoError(t, err)
		productIDs = append(productIDs, id)
	}
	return warehouseID, productIDs
}

func TestInventoryAddCreatesWithIDsFromOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, productIDs := f.seed(t, 100, 1.0, 2.0)

	id, created, err := f.inventory.Add(ctx, warehouseID, productIDs[0], 5)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, id)

	id, created, err = f.inventory.Add(ctx, warehouseID, productIDs[1], 3)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, id)
}

func TestInventoryAddMergesSamePair(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, productIDs := f.seed(t, 100, 1.0)

	firstID, created, err := f.inventory.Add(ctx, warehouseID, productIDs[0], 5)
	require.NoError(t, err)
	require.True(t, created)

	secondID, created, err := f.inventory.Add(ctx, warehouseID, productIDs[0], 3)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, firstID, secondID)

	items, err := f.inventory.ListByWarehouse(ctx, warehouseID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 8, items[0].Quantity)
}

func TestInventoryAddCapacityExceeded(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, productIDs := f.seed(t, 10, 1.0, 2.0)

	_, _, err := f.inventory.Add(ctx, warehouseID, productIDs[0], 6)
	require.NoError(t, err)

	_, _, err = f.inventory.Add(ctx, warehouseID, productIDs[1], 5)
	assertKind(t, err, service.KindCapacityExceeded)

	// existing inventory untouched
	items, err := f.inventory.ListByWarehouse(ctx, warehouseID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)

	// filling exactly to capacity is allowed
	_, _, err = f.inventory.Add(ctx, warehouseID, productIDs[1], 4)
	require.NoError(t, err)
}

func TestInventoryAddValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, productIDs := f.seed(t, 10, 1.0)

	_, _, err := f.inventory.Add(ctx, warehouseID, productIDs[0], -1)
	assertKind(t, err, service.KindInvalidInput)

	_, _, err = f.inventory.Add(ctx, 99, productIDs[0], 1)
	assertKind(t, err, service.KindNotFound)

	_, _, err = f.inventory.Add(ctx, warehouseID, 99, 1)
	assertKind(t, err, service.KindNotFound)
}

func TestInventoryListEmptyWarehouseIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, _ := f.seed(t, 10)

	_, err := f.inventory.ListByWarehouse(ctx, warehouseID)
	assertKind(t, err, service.KindNotFound)
}

func TestInventoryGetAndRemoveItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, productIDs := f.seed(t, 10, 1.0)

	id, _, err := f.inventory.Add(ctx, warehouseID, productIDs[0], 4)
	require.NoError(t, err)

	item, err := f.inventory.GetItem(ctx, warehouseID, id)
	require.NoError(t, err)
	assert.Equal(t, productIDs[0], item.ProductID)
	assert.Equal(t, 4, item.Quantity)

	_, err = f.inventory.GetItem(ctx, warehouseID, 99)
	assertKind(t, err, service.KindNotFound)

	require.NoError(t, f.inventory.RemoveItem(ctx, warehouseID, id))
	err = f.inventory.RemoveItem(ctx, warehouseID, id)
	assertKind(t, err, service.KindNotFound)
}

func TestInventoryWarehouseValue(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, productIDs := f.seed(t, 100, 3.0, 5.0)

	value, err := f.inventory.WarehouseValue(ctx, warehouseID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, value)

	_, _, err = f.inventory.Add(ctx, warehouseID, productIDs[0], 2)
	require.NoError(t, err)
	_, _, err = f.inventory.Add(ctx, warehouseID, productIDs[1], 1)
	require.NoError(t, err)

	value, err = f.inventory.WarehouseValue(ctx, warehouseID)
	require.NoError(t, err)
	assert.Equal(t, 11.0, value)

	// a deleted product drops out of the join
	require.NoError(t, f.products.Delete(ctx, productIDs[1]))
	value, err = f.inventory.WarehouseValue(ctx, warehouseID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, value)
}

func TestWarehouseDeleteCascadesInventory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	warehouseID, productIDs := f.seed(t, 100, 1.0)

	_, _, err := f.inventory.Add(ctx, warehouseID, productIDs[0], 5)
	require.NoError(t, err)

	require.NoError(t, f.warehouses.Delete(ctx, warehouseID))

	_, err = f.warehouses.Get(ctx, warehouseID)
	assertKind(t, err, service.KindNotFound)

	items, err := f.store.Inventory().FindByWarehouse(ctx, warehouseID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWarehouseRegisterAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for want := 0; want < 2; want++ {
		id, err := f.warehouses.Register(ctx, "W", "X", 10)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}
