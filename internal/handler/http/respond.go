package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"warehouse-api/internal/logger"
	"warehouse-api/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError translates business-rule failures to 400/404 and
// everything else to a 500 with a generic message; store errors are
// logged, never echoed to the client.
func respondServiceError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest
		if svcErr.Kind == service.KindNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, svcErr.Message)
		return
	}

	logger.Error(ctx, fallback, slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, fallback)
}
