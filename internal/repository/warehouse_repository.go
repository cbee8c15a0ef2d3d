package repository

import (
	"context"
	"errors"

	"warehouse-api/internal/logger"
	"warehouse-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
)

type WarehouseRepository struct {
	collection *mongo.Collection
}

var WarehouseRepositoryTracer = otel.Tracer("WarehouseRepository")

func NewWarehouseRepository(db *mongo.Database) *WarehouseRepository {
	return &WarehouseRepository{
		collection: db.Collection("warehouses"),
	}
}

func (r *WarehouseRepository) Insert(ctx context.Context, warehouse *model.Warehouse) error {
	ctx, span := WarehouseRepositoryTracer.Start(ctx, "WarehouseRepository.Insert")
	defer span.End()
	logger.Info(ctx, "Repository")

	_, err := r.collection.InsertOne(ctx, warehouse)
	return err
}

func (r *WarehouseRepository) FindAll(ctx context.Context) ([]model.Warehouse, error) {
	ctx, span := WarehouseRepositoryTracer.Start(ctx, "WarehouseRepository.FindAll")
	defer span.End()
	logger.Info(ctx, "Repository")

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	warehouses := []model.Warehouse{}
	if err := cursor.All(ctx, &warehouses); err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *WarehouseRepository) FindByID(ctx context.Context, id int) (*model.Warehouse, error) {
	ctx, span := WarehouseRepositoryTracer.Start(ctx, "WarehouseRepository.FindByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	var warehouse model.Warehouse
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&warehouse)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *WarehouseRepository) MaxID(ctx context.Context) (int, bool, error) {
	ctx, span := WarehouseRepositoryTracer.Start(ctx, "WarehouseRepository.MaxID")
	defer span.End()
	logger.Info(ctx, "Repository")

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var warehouse model.Warehouse
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&warehouse)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return warehouse.ID, true, nil
}

func (r *WarehouseRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	ctx, span := WarehouseRepositoryTracer.Start(ctx, "WarehouseRepository.DeleteByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *WarehouseRepository) Clear(ctx context.Context) error {
	ctx, span := WarehouseRepositoryTracer.Start(ctx, "WarehouseRepository.Clear")
	defer span.End()
	logger.Info(ctx, "Repository")

	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
