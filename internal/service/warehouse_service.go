package service

import (
	"context"

	"warehouse-api/internal/model"
)

type WarehouseService struct {
	warehouses WarehouseStore
	inventory  InventoryStore
}

func NewWarehouseService(warehouses WarehouseStore, inventory InventoryStore) *WarehouseService {
	return &WarehouseService{warehouses: warehouses, inventory: inventory}
}

// Register stores a new warehouse. Ids are always server-assigned,
// max existing id + 1 starting at 0.
func (s *WarehouseService) Register(ctx context.Context, name, location string, capacity float64) (int, error) {
	var id int
	maxID, ok, err := s.warehouses.MaxID(ctx)
	if err != nil {
		return 0, err
	}
	if ok {
		id = maxID + 1
	}

	warehouse := &model.Warehouse{
		ID:       id,
		Name:     name,
		Location: location,
		Capacity: capacity,
	}
	if err := s.warehouses.Insert(ctx, warehouse); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *WarehouseService) Get(ctx context.Context, id int) (*model.Warehouse, error) {
	warehouse, err := s.warehouses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, NotFound("Warehouse not found")
	}
	return warehouse, nil
}

// Delete removes the warehouse and cascades to every inventory item
// referencing it.
func (s *WarehouseService) Delete(ctx context.Context, id int) error {
	deleted, err := s.warehouses.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return NotFound("Warehouse not found")
	}
	_, err = s.inventory.DeleteByWarehouse(ctx, id)
	return err
}
