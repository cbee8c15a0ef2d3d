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

type InventoryRepository struct {
	collection *mongo.Collection
}

var InventoryRepositoryTracer = otel.Tracer("InventoryRepository")

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{
		collection: db.Collection("inventory"),
	}
}

func (r *InventoryRepository) Insert(ctx context.Context, item *model.InventoryItem) error {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.Insert")
	defer span.End()
	logger.Info(ctx, "Repository")

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *InventoryRepository) FindByWarehouse(ctx context.Context, warehouseID int) ([]model.InventoryItem, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.FindByWarehouse")
	defer span.End()
	logger.Info(ctx, "Repository")

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := r.collection.Find(ctx, bson.M{"warehouseId": warehouseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []model.InventoryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepository) FindByWarehouseAndProduct(ctx context.Context, warehouseID, productID int) (*model.InventoryItem, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.FindByWarehouseAndProduct")
	defer span.End()
	logger.Info(ctx, "Repository")

	var item model.InventoryItem
	err := r.collection.FindOne(ctx, bson.M{"warehouseId": warehouseID, "productId": productID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) FindByWarehouseAndID(ctx context.Context, warehouseID, itemID int) (*model.InventoryItem, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.FindByWarehouseAndID")
	defer span.End()
	logger.Info(ctx, "Repository")

	var item model.InventoryItem
	err := r.collection.FindOne(ctx, bson.M{"warehouseId": warehouseID, "id": itemID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) IncrementQuantity(ctx context.Context, warehouseID, productID, delta int) error {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.IncrementQuantity")
	defer span.End()
	logger.Info(ctx, "Repository")

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"warehouseId": warehouseID, "productId": productID},
		bson.M{"$inc": bson.M{"quantity": delta}},
	)
	return err
}

func (r *InventoryRepository) MaxID(ctx context.Context) (int, bool, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.MaxID")
	defer span.End()
	logger.Info(ctx, "Repository")

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var item model.InventoryItem
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return item.ID, true, nil
}

func (r *InventoryRepository) DeleteByWarehouseAndID(ctx context.Context, warehouseID, itemID int) (int64, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.DeleteByWarehouseAndID")
	defer span.End()
	logger.Info(ctx, "Repository")

	result, err := r.collection.DeleteOne(ctx, bson.M{"warehouseId": warehouseID, "id": itemID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *InventoryRepository) DeleteByWarehouse(ctx context.Context, warehouseID int) (int64, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.DeleteByWarehouse")
	defer span.End()
	logger.Info(ctx, "Repository")

	result, err := r.collection.DeleteMany(ctx, bson.M{"warehouseId": warehouseID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *InventoryRepository) TotalQuantity(ctx context.Context, warehouseID int) (int, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.TotalQuantity")
	defer span.End()
	logger.Info(ctx, "Repository")

	return r.sumQuantities(ctx, bson.M{"warehouseId": warehouseID})
}

func (r *InventoryRepository) StockedQuantity(ctx context.Context, warehouseID int) (int, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.StockedQuantity")
	defer span.End()
	logger.Info(ctx, "Repository")

	return r.sumQuantities(ctx, bson.M{"warehouseId": warehouseID, "quantity": bson.M{"$gte": 0}})
}

func (r *InventoryRepository) sumQuantities(ctx context.Context, filter bson.M) (int, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	total := 0
	for cursor.Next(ctx) {
		var item model.InventoryItem
		if err := cursor.Decode(&item); err != nil {
			return 0, err
		}
		total += item.Quantity
	}
	return total, cursor.Err()
}

func (r *InventoryRepository) Clear(ctx context.Context) error {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.Clear")
	defer span.End()
	logger.Info(ctx, "Repository")

	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

// TotalValue runs the lookup pipeline joining inventory to products on
// productId; the unwind drops items whose product no longer exists.
func (r *InventoryRepository) TotalValue(ctx context.Context, warehouseID int) (float64, error) {
	ctx, span := InventoryRepositoryTracer.Start(ctx, "InventoryRepository.TotalValue")
	defer span.End()
	logger.Info(ctx, "Repository")

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"warehouseId": warehouseID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "productId",
			"foreignField": "id",
			"as":           "productDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$productDetails",
			"preserveNullAndEmptyArrays": false,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"value": bson.M{"$sum": bson.M{"$multiply": []string{"$quantity", "$productDetails.price"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Value float64 `bson:"value"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Value, nil
}
