package telemetry

import (
	"context"
	"log/slog"
	"sync"

	"warehouse-api/internal/config"
	"warehouse-api/internal/logger"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"github.com/grafana/pyroscope-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

var (
	once         sync.Once
	shutdownFunc func()
	initErr      error
)

var pyroLogrus = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}()

// Instance wires the tracer provider (OTLP gRPC when a collector
// endpoint is configured, stdout otherwise), the propagators, and the
// Pyroscope profiler agent. The returned func shuts the provider down.
func Instance(globalCtx context.Context) (func(), error) {
	once.Do(func() {
		cfg := config.Instance()
		log := logger.Instance()

		var exp trace.SpanExporter
		var err error
		if cfg.RemoteTraceRpcURI != "" {
			// OTLP exporter (Tempo, etc)
			exp, err = otlptracegrpc.New(globalCtx,
				otlptracegrpc.WithInsecure(),
				otlptracegrpc.WithEndpoint(cfg.RemoteTraceRpcURI),
				otlptracegrpc.WithCompressor("gzip"),
			)
			if err != nil {
				log.Error("Failed to create OTLP exporter", slog.String("error", err.Error()))
				initErr = err
				return
			}
		} else {
			log.Warn("No trace endpoint configured, exporting spans to stdout")
			exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
			if err != nil {
				log.Error("Failed to create stdout exporter", slog.String("error", err.Error()))
				initErr = err
				return
			}
		}

		res, err := resource.New(globalCtx,
			resource.WithAttributes(
				semconv.ServiceNameKey.String(cfg.AppName),
				attribute.String("env", "production"),
			),
		)
		if err != nil {
			log.Error("Failed to create resource", slog.String("error", err.Error()))
			initErr = err
			return
		}

		tp := trace.NewTracerProvider(
			trace.WithBatcher(exp),
			trace.WithResource(res),
		)

		// Set tracer provider WITH pyroscope attached
		otel.SetTracerProvider(otelpyroscope.NewTracerProvider(tp))

		// Propagate trace context and baggage across processes.
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))

		log.Info("OpenTelemetry Tracer initialized")

		if cfg.RemoteProfilingHttpURI != "" {
			_, err := pyroscope.Start(pyroscope.Config{
				ApplicationName: cfg.AppName,
				ServerAddress:   cfg.RemoteProfilingHttpURI,
				Logger:          pyroLogrus,
			})
			if err != nil {
				log.Error("Pyroscope failed to start", slog.String("error", err.Error()))
			} else {
				log.Info("Pyroscope profiler started")
			}
		}

		shutdownFunc = func() {
			if err := tp.Shutdown(globalCtx); err != nil {
				log.Error("Error shutting down tracer provider", slog.String("error", err.Error()))
			}
		}
	})

	return shutdownFunc, initErr
}
