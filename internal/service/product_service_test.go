package service_test

import (
	"context"
	"testing"

	"warehouse-api/internal/model"
	"warehouse-api/internal/service"
	"warehouse-api/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertKind(t *testing.T, err error, kind service.Kind) {
	t.Helper()
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, kind, svcErr.Kind)
}

func intPtr(v int) *int { return &v }

func TestProductRegisterAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProductService(storetest.New().Products())

	for want := 0; want < 3; want++ {
		id, err := svc.Register(ctx, "P", 1.5, "", nil)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestProductRegisterWithClientID(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProductService(storetest.New().Products())

	id, err := svc.Register(ctx, "P", 1.0, "", intPtr(7))
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	// same id again
	_, err = svc.Register(ctx, "Q", 2.0, "", intPtr(7))
	assertKind(t, err, service.KindDuplicateID)

	// auto assignment continues from the max
	id, err = svc.Register(ctx, "R", 3.0, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, id)
}

func TestProductListFiltersByCategory(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProductService(storetest.New().Products())

	_, err := svc.Register(ctx, "A", 1.0, "food", nil)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "B", 2.0, "tools", nil)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "C", 3.0, "food", nil)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	food, err := svc.List(ctx, "food")
	require.NoError(t, err)
	require.Len(t, food, 2)
	assert.Equal(t, "A", food[0].Name)
	assert.Equal(t, "C", food[1].Name)
}

func TestProductGetAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProductService(storetest.New().Products())

	_, err := svc.Get(ctx, 42)
	assertKind(t, err, service.KindNotFound)

	err = svc.Delete(ctx, 42)
	assertKind(t, err, service.KindNotFound)
}

func TestProductDeleteLeavesInventoryBehind(t *testing.T) {
	ctx := context.Background()
	store := storetest.New()
	svc := service.NewProductService(store.Products())

	id, err := svc.Register(ctx, "P", 2.0, "", nil)
	require.NoError(t, err)

	item := &model.InventoryItem{ID: 1, WarehouseID: 0, ProductID: id, Quantity: 4}
	require.NoError(t, store.Inventory().Insert(ctx, item))

	require.NoError(t, svc.Delete(ctx, id))

	items, err := store.Inventory().FindByWarehouse(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1, "deleting a product must not cascade to inventory")
}
