package product

import "time"

// Product is the stored catalog entry. The image URL always comes from the
// media store, never straight from client input.
type Product struct {
	ID          string     `bson:"_id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Price       float64    `bson:"price" json:"price"`
	Category    string     `bson:"category" json:"category"`
	Stock       int        `bson:"stock" json:"stock"`
	ImageURL    string     `bson:"imageUrl" json:"imageUrl"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Sizes       []string   `bson:"sizes" json:"sizes"`
	AddedBy     string     `bson:"addedBy,omitempty" json:"addedBy,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
