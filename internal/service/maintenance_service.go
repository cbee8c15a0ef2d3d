package service

import "context"

type MaintenanceService struct {
	warehouses WarehouseStore
	products   ProductStore
	inventory  InventoryStore
}

func NewMaintenanceService(warehouses WarehouseStore, products ProductStore, inventory InventoryStore) *MaintenanceService {
	return &MaintenanceService{
		warehouses: warehouses,
		products:   products,
		inventory:  inventory,
	}
}

// Cleanup wipes all three collections. Destructive, intended for test
// isolation only.
func (s *MaintenanceService) Cleanup(ctx context.Context) error {
	if err := s.products.Clear(ctx); err != nil {
		return err
	}
	if err := s.warehouses.Clear(ctx); err != nil {
		return err
	}
	return s.inventory.Clear(ctx)
}
