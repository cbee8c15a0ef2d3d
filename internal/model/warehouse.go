package model

type Warehouse struct {
	ID       int     `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Location string  `json:"location" bson:"location"`
	Capacity float64 `json:"capacity" bson:"capacity"`
}

type CapacityStats struct {
	TotalCapacity float64 `json:"totalCapacity"`
	UsedCapacity  float64 `json:"usedCapacity"`
	FreeCapacity  float64 `json:"freeCapacity"`
}
