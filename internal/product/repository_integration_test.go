package product

import (
	"context"
	"testing"
	"time"

	"github.com/sportsynce/product-service/internal/store"
	storemongo "github.com/sportsynce/product-service/internal/store/mongo"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupRepository spins up a MongoDB container and returns a repository
// bound to a fresh collection.
func setupRepository(t *testing.T) Repository {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(container))
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	coll := client.Database("sportsynce_test").Collection(CollectionName)
	return &mongoRepository{coll: storemongo.WrapCollection(coll, 10*time.Second)}
}

func TestMongoRepository(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	t.Run("insert assigns an id and the document round-trips", func(t *testing.T) {
		p := &Product{
			Name:      "Tee",
			Price:     19.99,
			Category:  "Shirts",
			Stock:     10,
			ImageURL:  "https://cdn.example.com/uploads/tee.png",
			Sizes:     []string{"S", "M"},
			CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		}

		id, err := repo.Insert(ctx, p)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		stored, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Tee", stored.Name)
		assert.Equal(t, 19.99, stored.Price)
		assert.Equal(t, 10, stored.Stock)
		assert.Equal(t, []string{"S", "M"}, stored.Sizes)
		assert.Nil(t, stored.UpdatedAt)
	})

	t.Run("lookup of an unknown id reports not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "does-not-exist")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("partial update touches only the supplied fields", func(t *testing.T) {
		id, err := repo.Insert(ctx, &Product{
			Name:      "Hoodie",
			Price:     49.99,
			Category:  "Sweaters",
			Stock:     3,
			ImageURL:  "https://cdn.example.com/uploads/hoodie.png",
			Sizes:     []string{"L"},
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		now := time.Now().UTC().Truncate(time.Millisecond)
		err = repo.UpdateFields(ctx, id, bson.D{
			{Key: "description", Value: "Warm"},
			{Key: "updatedAt", Value: now},
		})
		require.NoError(t, err)

		stored, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Warm", stored.Description)
		assert.Equal(t, "Hoodie", stored.Name)
		assert.Equal(t, 49.99, stored.Price)
		assert.Equal(t, []string{"L"}, stored.Sizes)
		require.NotNil(t, stored.UpdatedAt)
		assert.WithinDuration(t, now, *stored.UpdatedAt, time.Second)
	})

	t.Run("partial update of an unknown id reports not found", func(t *testing.T) {
		err := repo.UpdateFields(ctx, "does-not-exist", bson.D{
			{Key: "updatedAt", Value: time.Now().UTC()},
		})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
