package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ggbd-labs/finance-server/internal/config"
)

// Storage owns the MongoDB client. It is created once at startup, handed to
// the service layer, and released through Close on shutdown.
type Storage struct {
	client       *mongo.Client
	Transactions TransactionCollection
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(env.MongoURI).
		SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("storage: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("storage: ping: %w", err)
	}

	coll := client.Database(env.MongoDatabase).Collection(env.MongoCollection)

	return &Storage{
		client:       client,
		Transactions: NewTransactionsCollection(coll),
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
