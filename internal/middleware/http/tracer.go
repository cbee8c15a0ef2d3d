package middleware_http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"warehouse-api/internal/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

var tracer = otel.Tracer("HttpMiddleware")

// ResponseWriter captures status, size and body.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int64
	buf        bytes.Buffer // holds the response body (up to MaxBodyLogged)
}

func (rw *ResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *ResponseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.size += int64(n)

	if rw.buf.Len() < logger.MaxBodyLogged {
		// Copy into buffer, but never exceed MaxBodyLogged
		toCopy := logger.MaxBodyLogged - rw.buf.Len()
		if len(b) < toCopy {
			toCopy = len(b)
		}
		rw.buf.Write(b[:toCopy])
	}
	return n, err
}

// TraceMiddleware wraps HTTP handlers with OpenTelemetry tracing.
// It continues an incoming trace when one is propagated, issues a
// request id, injects both into response headers, maps the response
// status onto the span status, and logs request and response.
func TraceMiddleware(globalCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract trace context from incoming request headers
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path)
			defer func() {
				if rec := recover(); rec != nil {
					span.RecordError(errFromRecover(rec))
					span.SetStatus(codes.Error, "panic occurred")
					panic(rec)
				}
				span.End()
			}()

			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			attrs := logger.LogHTTPRequest(ctx, r, "incoming::request")
			logger.Info(ctx, "HTTP", attrs...)

			rw := &ResponseWriter{ResponseWriter: w, statusCode: 200}
			start := time.Now()

			rw.Header().Set("X-Trace-ID", span.SpanContext().TraceID().String())
			rw.Header().Set("X-Request-ID", requestID)
			otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

			next.ServeHTTP(rw, r.WithContext(ctx))

			if rw.statusCode >= 500 {
				span.SetStatus(codes.Error, "internal server error")
			} else if rw.statusCode >= 400 {
				span.SetStatus(codes.Error, "client error")
			} else {
				span.SetStatus(codes.Ok, "")
			}

			duration := time.Since(start)

			attrs = logger.LogHTTPResponse(ctx, r, rw.Header(), rw.statusCode, &rw.buf, duration.Milliseconds(), "incoming::response")
			logger.Info(ctx, "HTTP", attrs...)
		})
	}
}

// errFromRecover converts panic value into error for span recording.
func errFromRecover(rec interface{}) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return &panicError{rec}
}

// panicError implements error interface for non-error panic values.
type panicError struct {
	value interface{}
}

func (p *panicError) Error() string {
	return "panic: " + stringify(p.value)
}

func stringify(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	default:
		return "unknown panic"
	}
}
