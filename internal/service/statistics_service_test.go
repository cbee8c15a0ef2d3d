package service_test

import (
	"context"
	"testing"

	"warehouse-api/internal/model"
	"warehouse-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	stats := service.NewStatisticsService(f.store.Warehouses(), f.store.Products(), f.store.Inventory())

	got, err := stats.CapacityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.CapacityStats{}, got)

	w1, products := f.seed(t, 10, 1.0)
	w2, err := f.warehouses.Register(ctx, "W2", "Y", 20)
	require.NoError(t, err)

	_, _, err = f.inventory.Add(ctx, w1, products[0], 4)
	require.NoError(t, err)
	_, _, err = f.inventory.Add(ctx, w2, products[0], 7)
	require.NoError(t, err)

	got, err = stats.CapacityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.CapacityStats{
		TotalCapacity: 30,
		UsedCapacity:  11,
		FreeCapacity:  19,
	}, got)
}

func TestCategoryStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	stats := service.NewStatisticsService(f.store.Warehouses(), f.store.Products(), f.store.Inventory())

	_, err := f.products.Register(ctx, "A", 1.0, "food", nil)
	require.NoError(t, err)
	_, err = f.products.Register(ctx, "B", 1.0, "food", nil)
	require.NoError(t, err)
	_, err = f.products.Register(ctx, "C", 1.0, "tools", nil)
	require.NoError(t, err)
	// empty category is excluded from the grouping
	_, err = f.products.Register(ctx, "D", 1.0, "", nil)
	require.NoError(t, err)

	counts, err := stats.CategoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CategoryCount{
		{Category: "food", Count: 2},
		{Category: "tools", Count: 1},
	}, counts)
}

func TestCleanupEmptiesEverything(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	maintenance := service.NewMaintenanceService(f.store.Warehouses(), f.store.Products(), f.store.Inventory())

	warehouseID, products := f.seed(t, 10, 1.0)
	_, _, err := f.inventory.Add(ctx, warehouseID, products[0], 2)
	require.NoError(t, err)

	require.NoError(t, maintenance.Cleanup(ctx))

	all, err := f.products.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)

	warehouses, err := f.store.Warehouses().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, warehouses)

	items, err := f.store.Inventory().FindByWarehouse(ctx, warehouseID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
