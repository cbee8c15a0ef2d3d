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

type ProductRepository struct {
	collection *mongo.Collection
}

var ProductRepositoryTracer = otel.Tracer("ProductRepository")

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *ProductRepository) Insert(ctx context.Context, product *model.Product) error {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.Insert")
	defer span.End()
	logger.Info(ctx, "Repository")

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *ProductRepository) FindAll(ctx context.Context, category string) ([]model.Product, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.FindAll")
	defer span.End()
	logger.Info(ctx, "Repository")

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) MaxID(ctx context.Context) (int, bool, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.MaxID")
	defer span.End()
	logger.Info(ctx, "Repository")

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return product.ID, true, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.DeleteByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.CountByCategory")
	defer span.End()
	logger.Info(ctx, "Repository")

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"category": bson.M{"$exists": true, "$ne": ""}}}},
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$project", Value: bson.M{"category": "$_id", "count": 1, "_id": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := []model.CategoryCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *ProductRepository) Clear(ctx context.Context) error {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.Clear")
	defer span.End()
	logger.Info(ctx, "Repository")

	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
