package model

// Product ids are assigned by the application (max existing id + 1),
// not by MongoDB; the native _id stays internal and is never exposed.
type Product struct {
	ID       int     `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
}

type CategoryCount struct {
	Category string `json:"category" bson:"category"`
	Count    int    `json:"count" bson:"count"`
}
