package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handlerhttp "warehouse-api/internal/handler/http"
	"warehouse-api/internal/service"
	"warehouse-api/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *http.ServeMux {
	store := storetest.New()

	productService := service.NewProductService(store.Products())
	warehouseService := service.NewWarehouseService(store.Warehouses(), store.Inventory())
	inventoryService := service.NewInventoryService(store.Warehouses(), store.Products(), store.Inventory())
	statisticsService := service.NewStatisticsService(store.Warehouses(), store.Products(), store.Inventory())
	maintenanceService := service.NewMaintenanceService(store.Warehouses(), store.Products(), store.Inventory())

	return handlerhttp.NewRouter(handlerhttp.Handlers{
		Product:     handlerhttp.NewProductHandler(productService),
		Warehouse:   handlerhttp.NewWarehouseHandler(warehouseService),
		Inventory:   handlerhttp.NewInventoryHandler(inventoryService),
		Statistics:  handlerhttp.NewStatisticsHandler(statisticsService),
		Maintenance: handlerhttp.NewMaintenanceHandler(maintenanceService),
	})
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestEndToEndScenario(t *testing.T) {
	mux := newTestRouter()

	w := do(t, mux, http.MethodPut, "/warehouses", `{"name":"W1","location":"X","capacity":10}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["id"])

	w = do(t, mux, http.MethodPut, "/products", `{"name":"P1","price":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["id"])

	w = do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["id"])

	w = do(t, mux, http.MethodGet, "/warehouses/0/value", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(10), decode(t, w)["value"])

	w = do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":10}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Insufficient warehouse capacity", decode(t, w)["error"])
}

func TestRegisterProductValidation(t *testing.T) {
	mux := newTestRouter()

	w := do(t, mux, http.MethodPut, "/products", `{"name":"P1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input, missing name or price", decode(t, w)["error"])

	w = do(t, mux, http.MethodPut, "/products", `{"id":"abc","name":"P1","price":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID format", decode(t, w)["error"])

	w = do(t, mux, http.MethodPut, "/products", `{"id":5,"name":"P1","price":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, mux, http.MethodPut, "/products", `{"id":5,"name":"P2","price":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ID already exists", decode(t, w)["error"])
}

func TestProductLifecycle(t *testing.T) {
	mux := newTestRouter()

	w := do(t, mux, http.MethodGet, "/products/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, mux, http.MethodPut, "/products", `{"name":"P1","price":2,"category":"food"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, mux, http.MethodGet, "/products/0", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "P1", body["name"])
	assert.Equal(t, "food", body["category"])
	assert.Equal(t, float64(2), body["price"])

	w = do(t, mux, http.MethodGet, "/products?category=food", "")
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	w = do(t, mux, http.MethodDelete, "/products/0", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, mux, http.MethodDelete, "/products/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProductsEmptyIsArray(t *testing.T) {
	mux := newTestRouter()

	w := do(t, mux, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRegisterWarehouseValidation(t *testing.T) {
	mux := newTestRouter()

	w := do(t, mux, http.MethodPut, "/warehouses", `{"name":"W1","location":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input, missing name, location, or capacity", decode(t, w)["error"])
}

func TestDeleteWarehouseCascadesInventory(t *testing.T) {
	mux := newTestRouter()

	do(t, mux, http.MethodPut, "/warehouses", `{"name":"W1","location":"X","capacity":10}`)
	do(t, mux, http.MethodPut, "/products", `{"name":"P1","price":2}`)
	w := do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, mux, http.MethodDelete, "/warehouses/0", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, mux, http.MethodGet, "/warehouses/0/inventory", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryEndpoints(t *testing.T) {
	mux := newTestRouter()

	do(t, mux, http.MethodPut, "/warehouses", `{"name":"W1","location":"X","capacity":100}`)
	do(t, mux, http.MethodPut, "/products", `{"name":"P1","price":2}`)

	// unknown warehouse
	w := do(t, mux, http.MethodPut, "/warehouses/9/inventory", `{"productId":0,"quantity":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// negative quantity
	w = do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid quantity, must be non-negative", decode(t, w)["error"])

	// missing fields
	w = do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"quantity":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// empty inventory reads as not found
	w = do(t, mux, http.MethodGet, "/warehouses/0/inventory", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No inventory found for this warehouse", decode(t, w)["error"])

	// stock, then re-stock the same pair: one item, summed quantity, 200
	w = do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["id"])

	w = do(t, mux, http.MethodGet, "/warehouses/0/inventory", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, float64(8), items[0]["quantity"])

	// single-item shape leaves warehouseId out
	w = do(t, mux, http.MethodGet, "/warehouses/0/inventory/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	item := decode(t, w)
	assert.Equal(t, float64(1), item["id"])
	assert.Equal(t, float64(0), item["productId"])
	assert.Equal(t, float64(8), item["quantity"])
	assert.NotContains(t, item, "warehouseId")

	w = do(t, mux, http.MethodDelete, "/warehouses/0/inventory/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, mux, http.MethodDelete, "/warehouses/0/inventory/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Inventory item not found", decode(t, w)["error"])
}

func TestStatisticsEndpoints(t *testing.T) {
	mux := newTestRouter()

	do(t, mux, http.MethodPut, "/warehouses", `{"name":"W1","location":"X","capacity":10}`)
	do(t, mux, http.MethodPut, "/warehouses", `{"name":"W2","location":"Y","capacity":20}`)
	do(t, mux, http.MethodPut, "/products", `{"name":"P1","price":2,"category":"food"}`)
	do(t, mux, http.MethodPut, "/products", `{"name":"P2","price":3,"category":"food"}`)
	do(t, mux, http.MethodPut, "/products", `{"name":"P3","price":4}`)
	do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":4}`)
	do(t, mux, http.MethodPut, "/warehouses/1/inventory", `{"productId":1,"quantity":7}`)

	w := do(t, mux, http.MethodGet, "/statistics/warehouse/capacity", "")
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.Equal(t, float64(30), stats["totalCapacity"])
	assert.Equal(t, float64(11), stats["usedCapacity"])
	assert.Equal(t, float64(19), stats["freeCapacity"])

	w = do(t, mux, http.MethodGet, "/statistics/products/by/category", "")
	require.Equal(t, http.StatusOK, w.Code)
	var counts []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	require.Len(t, counts, 1, "empty category must not be counted")
	assert.Equal(t, "food", counts[0]["category"])
	assert.Equal(t, float64(2), counts[0]["count"])
}

func TestCleanup(t *testing.T) {
	mux := newTestRouter()

	do(t, mux, http.MethodPut, "/warehouses", `{"name":"W1","location":"X","capacity":10}`)
	do(t, mux, http.MethodPut, "/products", `{"name":"P1","price":2}`)
	do(t, mux, http.MethodPut, "/warehouses/0/inventory", `{"productId":0,"quantity":5}`)

	w := do(t, mux, http.MethodPost, "/cleanup", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cleanup completed", decode(t, w)["message"])

	w = do(t, mux, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, mux, http.MethodGet, "/warehouses/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
