package mongo

import (
	"context"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionWrapper bounds every query with the configured timeout.
type collectionWrapper struct {
	coll    *mongodriver.Collection
	timeout time.Duration
}

func newCollectionWrapper(coll *mongodriver.Collection, timeout time.Duration) *collectionWrapper {
	return &collectionWrapper{coll: coll, timeout: timeout}
}

// WrapCollection bounds an existing driver collection with a query timeout.
// Used by code that connects outside the module, such as integration tests.
func WrapCollection(coll *mongodriver.Collection, timeout time.Duration) Collection {
	return newCollectionWrapper(coll, timeout)
}

func (w *collectionWrapper) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, w.timeout)
}

func (w *collectionWrapper) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongodriver.SingleResult {
	timeoutCtx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.FindOne(timeoutCtx, filter, opts...)
}

func (w *collectionWrapper) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongodriver.InsertOneResult, error) {
	timeoutCtx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.InsertOne(timeoutCtx, document, opts...)
}

func (w *collectionWrapper) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongodriver.UpdateResult, error) {
	timeoutCtx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.UpdateOne(timeoutCtx, filter, update, opts...)
}

func (w *collectionWrapper) Name() string {
	return w.coll.Name()
}
