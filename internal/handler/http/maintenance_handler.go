package http

import (
	"net/http"

	"warehouse-api/internal/logger"
	"warehouse-api/internal/service"

	"go.opentelemetry.io/otel"
)

type MaintenanceHandler struct {
	service *service.MaintenanceService
}

var HttpMaintenanceHandlerTracer = otel.Tracer("HttpMaintenanceHandler")

func NewMaintenanceHandler(service *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		service: service,
	}
}

// Cleanup wipes every collection. Test isolation only.
func (h *MaintenanceHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpMaintenanceHandlerTracer.Start(r.Context(), "HttpMaintenanceHandler.Cleanup")
	defer span.End()
	logger.Info(ctx, "HttpMaintenanceHandler")

	if err := h.service.Cleanup(ctx); err != nil {
		respondServiceError(ctx, w, err, "Failed to clean up database")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cleanup completed"})
}
