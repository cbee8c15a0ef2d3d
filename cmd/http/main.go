package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"warehouse-api/internal/config"
	"warehouse-api/internal/database"
	handlerhttp "warehouse-api/internal/handler/http"
	"warehouse-api/internal/logger"
	middlewarehttp "warehouse-api/internal/middleware/http"
	"warehouse-api/internal/repository"
	"warehouse-api/internal/service"
	"warehouse-api/internal/telemetry"
)

func main() {
	ctx := context.Background()
	log := logger.Instance()

	cfg := config.Instance()

	shutdown, err := telemetry.Instance(ctx)
	if err != nil {
		log.Error("Failed to initialize telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer shutdown()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wiring
	productRepo := repository.NewProductRepository(db.Database)
	warehouseRepo := repository.NewWarehouseRepository(db.Database)
	inventoryRepo := repository.NewInventoryRepository(db.Database)

	productService := service.NewProductService(productRepo)
	warehouseService := service.NewWarehouseService(warehouseRepo, inventoryRepo)
	inventoryService := service.NewInventoryService(warehouseRepo, productRepo, inventoryRepo)
	statisticsService := service.NewStatisticsService(warehouseRepo, productRepo, inventoryRepo)
	maintenanceService := service.NewMaintenanceService(warehouseRepo, productRepo, inventoryRepo)
	healthService := service.NewHealthService(db.Client)

	mux := handlerhttp.NewRouter(handlerhttp.Handlers{
		Product:     handlerhttp.NewProductHandler(productService),
		Warehouse:   handlerhttp.NewWarehouseHandler(warehouseService),
		Inventory:   handlerhttp.NewInventoryHandler(inventoryService),
		Statistics:  handlerhttp.NewStatisticsHandler(statisticsService),
		Maintenance: handlerhttp.NewMaintenanceHandler(maintenanceService),
		Health:      handlerhttp.NewHealthHandler(healthService),
	})

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      middlewarehttp.TraceMiddleware(ctx)(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("HTTP server running", slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil {
		log.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
