package service

import (
	"context"

	"warehouse-api/internal/model"
)

type InventoryService struct {
	warehouses WarehouseStore
	products   ProductStore
	inventory  InventoryStore
}

func NewInventoryService(warehouses WarehouseStore, products ProductStore, inventory InventoryStore) *InventoryService {
	return &InventoryService{
		warehouses: warehouses,
		products:   products,
		inventory:  inventory,
	}
}

// Add stocks quantity units of a product into a warehouse. If an item
// for the (warehouse, product) pair already exists its quantity is
// incremented and created is false; otherwise a new item is inserted
// with id = max existing inventory id + 1, starting at 1.
//
// The capacity check and the subsequent write are two separate store
// operations, as is the max-id scan. Concurrent Adds against the same
// warehouse can therefore overrun capacity or collide on ids; known
// limitation, see DESIGN.md.
func (s *InventoryService) Add(ctx context.Context, warehouseID, productID, quantity int) (id int, created bool, err error) {
	if quantity < 0 {
		return 0, false, InvalidInput("Invalid quantity, must be non-negative")
	}

	warehouse, err := s.warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		return 0, false, err
	}
	if warehouse == nil {
		return 0, false, NotFound("Warehouse not found")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return 0, false, err
	}
	if product == nil {
		return 0, false, NotFound("Product not found")
	}

	total, err := s.inventory.TotalQuantity(ctx, warehouseID)
	if err != nil {
		return 0, false, err
	}
	if float64(total+quantity) > warehouse.Capacity {
		return 0, false, CapacityExceeded("Insufficient warehouse capacity")
	}

	existing, err := s.inventory.FindByWarehouseAndProduct(ctx, warehouseID, productID)
	if err != nil {
		return 0, false, err
	}
	if existing != nil {
		if err := s.inventory.IncrementQuantity(ctx, warehouseID, productID, quantity); err != nil {
			return 0, false, err
		}
		return existing.ID, false, nil
	}

	newID := 1
	maxID, ok, err := s.inventory.MaxID(ctx)
	if err != nil {
		return 0, false, err
	}
	if ok {
		newID = maxID + 1
	}

	item := &model.InventoryItem{
		ID:          newID,
		WarehouseID: warehouseID,
		ProductID:   productID,
		Quantity:    quantity,
	}
	if err := s.inventory.Insert(ctx, item); err != nil {
		return 0, false, err
	}
	return newID, true, nil
}

// ListByWarehouse returns the warehouse's inventory. A warehouse with
// zero items reports NotFound, matching the original API contract.
func (s *InventoryService) ListByWarehouse(ctx context.Context, warehouseID int) ([]model.InventoryItem, error) {
	warehouse, err := s.warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, NotFound("Warehouse not found")
	}

	items, err := s.inventory.FindByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, NotFound("No inventory found for this warehouse")
	}
	return items, nil
}

func (s *InventoryService) GetItem(ctx context.Context, warehouseID, itemID int) (*model.InventoryItem, error) {
	warehouse, err := s.warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, NotFound("Warehouse not found")
	}

	item, err := s.inventory.FindByWarehouseAndID(ctx, warehouseID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NotFound("Inventory not found")
	}
	return item, nil
}

func (s *InventoryService) RemoveItem(ctx context.Context, warehouseID, itemID int) error {
	deleted, err := s.inventory.DeleteByWarehouseAndID(ctx, warehouseID, itemID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return NotFound("Inventory item not found")
	}
	return nil
}

// WarehouseValue sums quantity * product price across the warehouse's
// items; items whose product has been deleted contribute nothing.
func (s *InventoryService) WarehouseValue(ctx context.Context, warehouseID int) (float64, error) {
	warehouse, err := s.warehouses.FindByID(ctx, warehouseID)
	if err != nil {
		return 0, err
	}
	if warehouse == nil {
		return 0, NotFound("Warehouse not found")
	}
	return s.inventory.TotalValue(ctx, warehouseID)
}
