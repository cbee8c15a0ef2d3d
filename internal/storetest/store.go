// Package storetest provides in-memory implementations of the service
// store interfaces for tests, substituting for the Mongo repositories.
package storetest

import (
	"context"
	"sync"

	"warehouse-api/internal/model"
)

type Store struct {
	mu         sync.Mutex
	products   []model.Product
	warehouses []model.Warehouse
	items      []model.InventoryItem
}

func New() *Store {
	return &Store{}
}

func (s *Store) Products() *ProductStore     { return &ProductStore{s} }
func (s *Store) Warehouses() *WarehouseStore { return &WarehouseStore{s} }
func (s *Store) Inventory() *InventoryStore  { return &InventoryStore{s} }

type ProductStore struct{ s *Store }

func (p *ProductStore) Insert(_ context.Context, product *model.Product) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.products = append(p.s.products, *product)
	return nil
}

func (p *ProductStore) FindAll(_ context.Context, category string) ([]model.Product, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	out := []model.Product{}
	for _, product := range p.s.products {
		if category == "" || product.Category == category {
			out = append(out, product)
		}
	}
	return out, nil
}

func (p *ProductStore) FindByID(_ context.Context, id int) (*model.Product, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for _, product := range p.s.products {
		if product.ID == id {
			found := product
			return &found, nil
		}
	}
	return nil, nil
}

func (p *ProductStore) MaxID(_ context.Context) (int, bool, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if len(p.s.products) == 0 {
		return 0, false, nil
	}
	maxID := p.s.products[0].ID
	for _, product := range p.s.products[1:] {
		if product.ID > maxID {
			maxID = product.ID
		}
	}
	return maxID, true, nil
}

func (p *ProductStore) DeleteByID(_ context.Context, id int) (int64, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for i, product := range p.s.products {
		if product.ID == id {
			p.s.products = append(p.s.products[:i], p.s.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (p *ProductStore) CountByCategory(_ context.Context) ([]model.CategoryCount, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	counts := []model.CategoryCount{}
	index := map[string]int{}
	for _, product := range p.s.products {
		if product.Category == "" {
			continue
		}
		if i, ok := index[product.Category]; ok {
			counts[i].Count++
			continue
		}
		index[product.Category] = len(counts)
		counts = append(counts, model.CategoryCount{Category: product.Category, Count: 1})
	}
	return counts, nil
}

func (p *ProductStore) Clear(_ context.Context) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.products = nil
	return nil
}

type WarehouseStore struct{ s *Store }

func (w *WarehouseStore) Insert(_ context.Context, warehouse *model.Warehouse) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.warehouses = append(w.s.warehouses, *warehouse)
	return nil
}

func (w *WarehouseStore) FindAll(_ context.Context) ([]model.Warehouse, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	out := []model.Warehouse{}
	out = append(out, w.s.warehouses...)
	return out, nil
}

func (w *WarehouseStore) FindByID(_ context.Context, id int) (*model.Warehouse, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	for _, warehouse := range w.s.warehouses {
		if warehouse.ID == id {
			found := warehouse
			return &found, nil
		}
	}
	return nil, nil
}

func (w *WarehouseStore) MaxID(_ context.Context) (int, bool, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	if len(w.s.warehouses) == 0 {
		return 0, false, nil
	}
	maxID := w.s.warehouses[0].ID
	for _, warehouse := range w.s.warehouses[1:] {
		if warehouse.ID > maxID {
			maxID = warehouse.ID
		}
	}
	return maxID, true, nil
}

func (w *WarehouseStore) DeleteByID(_ context.Context, id int) (int64, error) {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	for i, warehouse := range w.s.warehouses {
		if warehouse.ID == id {
			w.s.warehouses = append(w.s.warehouses[:i], w.s.warehouses[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (w *WarehouseStore) Clear(_ context.Context) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	w.s.warehouses = nil
	return nil
}

type InventoryStore struct{ s *Store }

func (inv *InventoryStore) Insert(_ context.Context, item *model.InventoryItem) error {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	inv.s.items = append(inv.s.items, *item)
	return nil
}

func (inv *InventoryStore) FindByWarehouse(_ context.Context, warehouseID int) ([]model.InventoryItem, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	out := []model.InventoryItem{}
	for _, item := range inv.s.items {
		if item.WarehouseID == warehouseID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (inv *InventoryStore) FindByWarehouseAndProduct(_ context.Context, warehouseID, productID int) (*model.InventoryItem, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	for _, item := range inv.s.items {
		if item.WarehouseID == warehouseID && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (inv *InventoryStore) FindByWarehouseAndID(_ context.Context, warehouseID, itemID int) (*model.InventoryItem, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	for _, item := range inv.s.items {
		if item.WarehouseID == warehouseID && item.ID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (inv *InventoryStore) IncrementQuantity(_ context.Context, warehouseID, productID, delta int) error {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	for i := range inv.s.items {
		if inv.s.items[i].WarehouseID == warehouseID && inv.s.items[i].ProductID == productID {
			inv.s.items[i].Quantity += delta
			return nil
		}
	}
	return nil
}

func (inv *InventoryStore) MaxID(_ context.Context) (int, bool, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	if len(inv.s.items) == 0 {
		return 0, false, nil
	}
	maxID := inv.s.items[0].ID
	for _, item := range inv.s.items[1:] {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID, true, nil
}

func (inv *InventoryStore) DeleteByWarehouseAndID(_ context.Context, warehouseID, itemID int) (int64, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	for i, item := range inv.s.items {
		if item.WarehouseID == warehouseID && item.ID == itemID {
			inv.s.items = append(inv.s.items[:i], inv.s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (inv *InventoryStore) DeleteByWarehouse(_ context.Context, warehouseID int) (int64, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	kept := inv.s.items[:0]
	var deleted int64
	for _, item := range inv.s.items {
		if item.WarehouseID == warehouseID {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	inv.s.items = kept
	return deleted, nil
}

func (inv *InventoryStore) TotalQuantity(_ context.Context, warehouseID int) (int, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	total := 0
	for _, item := range inv.s.items {
		if item.WarehouseID == warehouseID {
			total += item.Quantity
		}
	}
	return total, nil
}

func (inv *InventoryStore) StockedQuantity(_ context.Context, warehouseID int) (int, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	total := 0
	for _, item := range inv.s.items {
		if item.WarehouseID == warehouseID && item.Quantity >= 0 {
			total += item.Quantity
		}
	}
	return total, nil
}

func (inv *InventoryStore) TotalValue(_ context.Context, warehouseID int) (float64, error) {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	prices := map[int]float64{}
	for _, product := range inv.s.products {
		prices[product.ID] = product.Price
	}
	var value float64
	for _, item := range inv.s.items {
		if item.WarehouseID != warehouseID {
			continue
		}
		price, ok := prices[item.ProductID]
		if !ok {
			// product deleted, excluded from the join
			continue
		}
		value += float64(item.Quantity) * price
	}
	return value, nil
}

func (inv *InventoryStore) Clear(_ context.Context) error {
	inv.s.mu.Lock()
	defer inv.s.mu.Unlock()
	inv.s.items = nil
	return nil
}
