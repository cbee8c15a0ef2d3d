package repository_test

import (
	"warehouse-api/internal/repository"
	"warehouse-api/internal/service"
)

// The services only depend on the store interfaces; these assertions
// keep the Mongo repositories honest about implementing them in full.
var (
	_ service.ProductStore   = (*repository.ProductRepository)(nil)
	_ service.WarehouseStore = (*repository.WarehouseRepository)(nil)
	_ service.InventoryStore = (*repository.InventoryRepository)(nil)
)
