package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sportsynce/product-service/internal/store"
	storemongo "github.com/sportsynce/product-service/internal/store/mongo"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the document collection products live in.
const CollectionName = "products"

// Repository is the narrow document-store surface the service needs:
// create, point lookup and partial field update.
type Repository interface {
	Insert(ctx context.Context, p *Product) (string, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	UpdateFields(ctx context.Context, id string, fields bson.D) error
}

type mongoRepository struct {
	coll storemongo.Collection
}

func NewRepository(m storemongo.Mongo) Repository {
	return &mongoRepository{coll: m.GetCollection(CollectionName)}
}

// Insert stores a new product and returns its generated identifier.
func (r *mongoRepository) Insert(ctx context.Context, p *Product) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}
	return p.ID, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Product, error) {
	result := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}})

	var p Product
	if err := result.Decode(&p); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &p, nil
}

// UpdateFields applies a sparse $set merge; fields absent from the set
// document keep their stored values.
func (r *mongoRepository) UpdateFields(ctx context.Context, id string, fields bson.D) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
