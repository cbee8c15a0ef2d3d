package model

// InventoryItem holds the stock of one product in one warehouse.
// At most one item exists per (warehouseId, productId) pair; repeated
// additions increment the quantity of the existing item.
type InventoryItem struct {
	ID          int `json:"id" bson:"id"`
	WarehouseID int `json:"warehouseId" bson:"warehouseId"`
	ProductID   int `json:"productId" bson:"productId"`
	Quantity    int `json:"quantity" bson:"quantity"`
}
