package http

import (
	"net/http"

	"warehouse-api/internal/logger"
	"warehouse-api/internal/service"

	"go.opentelemetry.io/otel"
)

type StatisticsHandler struct {
	service *service.StatisticsService
}

var HttpStatisticsHandlerTracer = otel.Tracer("HttpStatisticsHandler")

func NewStatisticsHandler(service *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		service: service,
	}
}

func (h *StatisticsHandler) Capacity(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpStatisticsHandlerTracer.Start(r.Context(), "HttpStatisticsHandler.Capacity")
	defer span.End()
	logger.Info(ctx, "HttpStatisticsHandler")

	stats, err := h.service.CapacityStats(ctx)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to compute capacity statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *StatisticsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpStatisticsHandlerTracer.Start(r.Context(), "HttpStatisticsHandler.Categories")
	defer span.End()
	logger.Info(ctx, "HttpStatisticsHandler")

	counts, err := h.service.CategoryStats(ctx)
	if err != nil {
		respondServiceError(ctx, w, err, "Failed to compute category statistics")
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
