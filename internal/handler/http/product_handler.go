package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"warehouse-api/internal/logger"
	"warehouse-api/internal/service"

	"go.opentelemetry.io/otel"
)

type ProductHandler struct {
	service *service.ProductService
}

var HttpProductHandlerTracer = otel.Tracer("HttpProductHandler")

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// Pointer fields distinguish "absent" from zero values; id and
// category are optional.
type registerProductRequest struct {
	ID       *int     `json:"id"`
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

func (h *ProductHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.Register")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	var req registerProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "id" {
			writeError(w, http.StatusBadRequest, "Invalid ID format")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid input, missing name or price")
		return
	}
	if req.Name == nil || req.Price == nil {
		writeError(w, http.StatusBadRequest, "Invalid input, missing name or price")
		return
	}

	category := ""
	if req.Category != nil {
		category = *req.Category
	}

	id, err := h.service.Register(ctx, *req.Name, *req.Price, category, req.ID)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to register product")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.List")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	products, err := h.service.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to fetch products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.Get")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.service.Get(ctx, id)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to fetch product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpProductHandlerTracer.Start(r.Context(), "HttpProductHandler.Delete")
	defer span.End()
	logger.Info(ctx, "HttpProductHandler")

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		respondServiceError(ctx, w, err, "Failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
