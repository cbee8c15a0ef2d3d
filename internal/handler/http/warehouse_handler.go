package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"warehouse-api/internal/logger"
	"warehouse-api/internal/service"

	"go.opentelemetry.io/otel"
)

type WarehouseHandler struct {
	service *service.WarehouseService
}

var HttpWarehouseHandlerTracer = otel.Tracer("HttpWarehouseHandler")

func NewWarehouseHandler(service *service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{
		service: service,
	}
}

type registerWarehouseRequest struct {
	Name     *string  `json:"name"`
	Location *string  `json:"location"`
	Capacity *float64 `json:"capacity"`
}

func (h *WarehouseHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpWarehouseHandlerTracer.Start(r.Context(), "HttpWarehouseHandler.Register")
	defer span.End()
	logger.Info(ctx, "HttpWarehouseHandler")

	var req registerWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input, missing name, location, or capacity")
		return
	}
	if req.Name == nil || req.Location == nil || req.Capacity == nil {
		writeError(w, http.StatusBadRequest, "Invalid input, missing name, location, or capacity")
		return
	}

	id, err := h.service.Register(ctx, *req.Name, *req.Location, *req.Capacity)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to register warehouse")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *WarehouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpWarehouseHandlerTracer.Start(r.Context(), "HttpWarehouseHandler.Get")
	defer span.End()
	logger.Info(ctx, "HttpWarehouseHandler")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Warehouse not found")
		return
	}

	warehouse, err := h.service.Get(ctx, id)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to fetch warehouse")
		return
	}
	writeJSON(w, http.StatusOK, warehouse)
}

func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpWarehouseHandlerTracer.Start(r.Context(), "HttpWarehouseHandler.Delete")
	defer span.End()
	logger.Info(ctx, "HttpWarehouseHandler")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Warehouse not found")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		respondServiceError(ctx, w, err, "Failed to delete warehouse")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
