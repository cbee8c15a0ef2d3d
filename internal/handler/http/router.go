package http

import (
	"encoding/json"
	"net/http"
)

type Handlers struct {
	Product     *ProductHandler
	Warehouse   *WarehouseHandler
	Inventory   *InventoryHandler
	Statistics  *StatisticsHandler
	Maintenance *MaintenanceHandler
	Health      *HealthHandler
}

// NewRouter registers every route on a ServeMux. Paths and methods
// mirror the public API contract; ids are matched as path segments and
// parsed by the handlers.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"data": "warehouse-api"})
	})

	mux.HandleFunc("PUT /products", h.Product.Register)
	mux.HandleFunc("GET /products", h.Product.List)
	mux.HandleFunc("GET /products/{id}", h.Product.Get)
	mux.HandleFunc("DELETE /products/{id}", h.Product.Delete)

	mux.HandleFunc("PUT /warehouses", h.Warehouse.Register)
	mux.HandleFunc("GET /warehouses/{id}", h.Warehouse.Get)
	mux.HandleFunc("DELETE /warehouses/{id}", h.Warehouse.Delete)

	mux.HandleFunc("PUT /warehouses/{id}/inventory", h.Inventory.Add)
	mux.HandleFunc("GET /warehouses/{id}/inventory", h.Inventory.List)
	mux.HandleFunc("GET /warehouses/{id}/inventory/{invId}", h.Inventory.Get)
	mux.HandleFunc("DELETE /warehouses/{id}/inventory/{invId}", h.Inventory.Remove)
	mux.HandleFunc("GET /warehouses/{id}/value", h.Inventory.Value)

	mux.HandleFunc("GET /statistics/warehouse/capacity", h.Statistics.Capacity)
	mux.HandleFunc("GET /statistics/products/by/category", h.Statistics.Categories)

	mux.HandleFunc("POST /cleanup", h.Maintenance.Cleanup)

	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Check)
	}

	return mux
}
