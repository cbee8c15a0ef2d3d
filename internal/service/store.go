package service

import (
	"context"

	"warehouse-api/internal/model"
)

// Store interfaces are implemented by the Mongo repositories and by
// in-memory fakes in tests. Find methods return (nil, nil) when no
// document matches.

type ProductStore interface {
	Insert(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context, category string) ([]model.Product, error)
	FindByID(ctx context.Context, id int) (*model.Product, error)
	// MaxID reports the highest assigned id; ok is false when the
	// collection is empty.
	MaxID(ctx context.Context) (id int, ok bool, err error)
	DeleteByID(ctx context.Context, id int) (deleted int64, err error)
	CountByCategory(ctx context.Context) ([]model.CategoryCount, error)
	Clear(ctx context.Context) error
}

type WarehouseStore interface {
	Insert(ctx context.Context, warehouse *model.Warehouse) error
	FindAll(ctx context.Context) ([]model.Warehouse, error)
	FindByID(ctx context.Context, id int) (*model.Warehouse, error)
	MaxID(ctx context.Context) (id int, ok bool, err error)
	DeleteByID(ctx context.Context, id int) (deleted int64, err error)
	Clear(ctx context.Context) error
}

type InventoryStore interface {
	Insert(ctx context.Context, item *model.InventoryItem) error
	FindByWarehouse(ctx context.Context, warehouseID int) ([]model.InventoryItem, error)
	FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID int) (*model.InventoryItem, error)
	FindByWarehouseAndID(ctx context.Context, warehouseID, itemID int) (*model.InventoryItem, error)
	IncrementQuantity(ctx context.Context, warehouseID, productID, delta int) error
	MaxID(ctx context.Context) (id int, ok bool, err error)
	DeleteByWarehouseAndID(ctx context.Context, warehouseID, itemID int) (deleted int64, err error)
	DeleteByWarehouse(ctx context.Context, warehouseID int) (deleted int64, err error)
	// TotalQuantity sums every item in the warehouse, StockedQuantity
	// only items with quantity >= 0 (the statistics view).
	TotalQuantity(ctx context.Context, warehouseID int) (int, error)
	StockedQuantity(ctx context.Context, warehouseID int) (int, error)
	// TotalValue joins each item to its product and sums
	// quantity * price; items whose product is gone are skipped.
	TotalValue(ctx context.Context, warehouseID int) (float64, error)
	Clear(ctx context.Context) error
}
