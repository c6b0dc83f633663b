package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionsCollection is the MongoDB-backed TransactionCollection.
type TransactionsCollection struct {
	coll *mongo.Collection
}

func NewTransactionsCollection(coll *mongo.Collection) *TransactionsCollection {
	return &TransactionsCollection{coll: coll}
}

func (c *TransactionsCollection) Insert(ctx context.Context, create *TransactionCreate) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, create)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("storage: insert transaction: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("storage: unexpected inserted id type %T", res.InsertedID)
	}

	return id, nil
}

func (c *TransactionsCollection) FindByID(ctx context.Context, id primitive.ObjectID) (*Transaction, error) {
	var row Transaction
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: find transaction: %w", err)
	}

	return &row, nil
}

func (c *TransactionsCollection) ListByOwner(ctx context.Context, email string) ([]*Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := c.coll.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("storage: list transactions: %w", err)
	}

	var rows []*Transaction
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("storage: decode transactions: %w", err)
	}

	return rows, nil
}

func (c *TransactionsCollection) ListAll(ctx context.Context) ([]*Transaction, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("storage: list all transactions: %w", err)
	}

	var rows []*Transaction
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("storage: decode transactions: %w", err)
	}

	return rows, nil
}

func (c *TransactionsCollection) SumAmount(ctx context.Context, email, field, value string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "userEmail", Value: email},
			{Key: field, Value: value},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("storage: sum transactions: %w", err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("storage: decode transaction sum: %w", err)
	}

	// $group emits no row when nothing matched.
	if len(rows) == 0 {
		return 0, nil
	}

	return rows[0].Total, nil
}

func (c *TransactionsCollection) Update(ctx context.Context, id primitive.ObjectID, update *TransactionUpdate) (*UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"type":        update.Type,
			"category":    update.Category,
			"amount":      update.Amount,
			"description": update.Description,
			"date":        update.Date,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("storage: update transaction: %w", err)
	}

	return &UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (c *TransactionsCollection) Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("storage: delete transaction: %w", err)
	}

	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
