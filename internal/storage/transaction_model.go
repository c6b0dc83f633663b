package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is the stored shape of one income or expense record.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        string             `bson:"type"`
	Category    string             `bson:"category"`
	Amount      float64            `bson:"amount"`
	Description string             `bson:"description"`
	Date        string             `bson:"date"`
	UserEmail   string             `bson:"userEmail"`
	UserName    string             `bson:"userName"`
}

// TransactionCreate is the input for inserting a new transaction.
type TransactionCreate struct {
	Type        string  `bson:"type"`
	Category    string  `bson:"category"`
	Amount      float64 `bson:"amount"`
	Description string  `bson:"description"`
	Date        string  `bson:"date"`
	UserEmail   string  `bson:"userEmail"`
	UserName    string  `bson:"userName"`
}

// TransactionUpdate carries the replaceable fields for an update.
// ID and UserEmail are deliberately absent: both are immutable after creation.
type TransactionUpdate struct {
	Type        string
	Category    string
	Amount      float64
	Description string
	Date        string
}

// UpdateResult describes the outcome of an update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult describes the outcome of a delete.
type DeleteResult struct {
	DeletedCount int64
}

// TransactionCollection defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type TransactionCollection interface {
	// Insert stores a new transaction and returns its assigned id.
	Insert(ctx context.Context, create *TransactionCreate) (primitive.ObjectID, error)
	// FindByID returns the matching transaction, or nil when none exists.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Transaction, error)
	// ListByOwner returns the owner's transactions ordered by date descending.
	ListByOwner(ctx context.Context, email string) ([]*Transaction, error)
	// ListAll returns every stored transaction.
	ListAll(ctx context.Context) ([]*Transaction, error)
	// SumAmount totals the amount over records matching the owner email and
	// one extra field (type or category). An empty match sums to zero.
	SumAmount(ctx context.Context, email, field, value string) (float64, error)
	Update(ctx context.Context, id primitive.ObjectID, update *TransactionUpdate) (*UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
