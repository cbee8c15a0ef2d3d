package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"warehouse-api/internal/logger"
	"warehouse-api/internal/service"

	"go.opentelemetry.io/otel"
)

type InventoryHandler struct {
	service *service.InventoryService
}

var HttpInventoryHandlerTracer = otel.Tracer("HttpInventoryHandler")

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

type addInventoryRequest struct {
	ProductID *int `json:"productId"`
	Quantity  *int `json:"quantity"`
}

// itemDetail is the single-item response shape: warehouseId is implied
// by the path and left out.
type itemDetail struct {
	ID        int `json:"id"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpInventoryHandlerTracer.Start(r.Context(), "HttpInventoryHandler.Add")
	defer span.End()
	logger.Info(ctx, "HttpInventoryHandler")

	warehouseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Warehouse not found")
		return
	}

	var req addInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input, missing productId or quantity")
		return
	}
	if req.ProductID == nil || req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "Invalid input, missing productId or quantity")
		return
	}

	id, created, err := h.service.Add(ctx, warehouseID, *req.ProductID, *req.Quantity)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to add inventory")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]int{"id": id})
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpInventoryHandlerTracer.Start(r.Context(), "HttpInventoryHandler.List")
	defer span.End()
	logger.Info(ctx, "HttpInventoryHandler")

	warehouseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Warehouse not found")
		return
	}

	items, err := h.service.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to fetch inventory")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpInventoryHandlerTracer.Start(r.Context(), "HttpInventoryHandler.Get")
	defer span.End()
	logger.Info(ctx, "HttpInventoryHandler")

	warehouseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Warehouse not found")
		return
	}
	itemID, err := strconv.Atoi(r.PathValue("invId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Inventory not found")
		return
	}

	item, err := h.service.GetItem(ctx, warehouseID, itemID)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to retrieve inventory details")
		return
	}
	writeJSON(w, http.StatusOK, itemDetail{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})
}

func (h *InventoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpInventoryHandlerTracer.Start(r.Context(), "HttpInventoryHandler.Remove")
	defer span.End()
	logger.Info(ctx, "HttpInventoryHandler")

	warehouseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Inventory item not found")
		return
	}
	itemID, err := strconv.Atoi(r.PathValue("invId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Inventory item not found")
		return
	}

	if err := h.service.RemoveItem(ctx, warehouseID, itemID); err != nil {
		respondServiceError(ctx, w, err, "Failed to remove inventory item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) Value(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpInventoryHandlerTracer.Start(r.Context(), "HttpInventoryHandler.Value")
	defer span.End()
	logger.Info(ctx, "HttpInventoryHandler")

	warehouseID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Warehouse not found")
		return
	}

	value, err := h.service.WarehouseValue(ctx, warehouseID)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to calculate warehouse value")
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"value": value})
}
