package service

import (
	"context"

	"warehouse-api/internal/model"
)

type StatisticsService struct {
	warehouses WarehouseStore
	products   ProductStore
	inventory  InventoryStore
}

func NewStatisticsService(warehouses WarehouseStore, products ProductStore, inventory InventoryStore) *StatisticsService {
	return &StatisticsService{
		warehouses: warehouses,
		products:   products,
		inventory:  inventory,
	}
}

// CapacityStats sums capacity over all warehouses and stocked quantity
// over all their items (negative quantities excluded).
func (s *StatisticsService) CapacityStats(ctx context.Context) (model.CapacityStats, error) {
	warehouses, err := s.warehouses.FindAll(ctx)
	if err != nil {
		return model.CapacityStats{}, err
	}

	var stats model.CapacityStats
	for _, warehouse := range warehouses {
		stats.TotalCapacity += warehouse.Capacity

		used, err := s.inventory.StockedQuantity(ctx, warehouse.ID)
		if err != nil {
			return model.CapacityStats{}, err
		}
		stats.UsedCapacity += float64(used)
	}
	stats.FreeCapacity = stats.TotalCapacity - stats.UsedCapacity
	return stats, nil
}

// CategoryStats counts products per non-empty category.
func (s *StatisticsService) CategoryStats(ctx context.Context) ([]model.CategoryCount, error) {
	return s.products.CountByCategory(ctx)
}
