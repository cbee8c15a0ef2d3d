package service

import (
	"context"

	"warehouse-api/internal/model"
)

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

// Register stores a new product and returns its id. When clientID is
// nil the id is assigned as max existing id + 1, starting at 0. A
// client-supplied id must not already be in use.
func (s *ProductService) Register(ctx context.Context, name string, price float64, category string, clientID *int) (int, error) {
	var id int
	if clientID != nil {
		existing, err := s.products.FindByID(ctx, *clientID)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			return 0, DuplicateID("ID already exists")
		}
		id = *clientID
	} else {
		maxID, ok, err := s.products.MaxID(ctx)
		if err != nil {
			return 0, err
		}
		if ok {
			id = maxID + 1
		}
	}

	product := &model.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *ProductService) List(ctx context.Context, category string) ([]model.Product, error) {
	return s.products.FindAll(ctx, category)
}

func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, NotFound("Product not found")
	}
	return product, nil
}

// Delete removes the product only; inventory items referencing it stay
// behind and simply drop out of value calculations.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	deleted, err := s.products.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return NotFound("Product not found")
	}
	return nil
}
