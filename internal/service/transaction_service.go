package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ggbd-labs/finance-server/internal/auth"
	"github.com/ggbd-labs/finance-server/internal/storage"
)

// TransactionService handles transaction business logic: field validation,
// ownership checks, and conversion between the API and storage shapes.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// parseAmount converts a caller-supplied amount to a finite number.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: amount %q is not a number", ErrValidation, raw)
	}
	return amount, nil
}

// parseID converts a caller-supplied identifier, failing before any store
// lookup when the shape is wrong.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// Create validates and stores a new transaction, returning its assigned id.
func (s *TransactionService) Create(ctx context.Context, input TransactionInput) (*CreateResult, error) {
	userEmail := strings.TrimSpace(input.UserEmail)
	if input.Type == "" || input.Category == "" || input.Amount == "" || input.Date == "" || userEmail == "" {
		return nil, fmt.Errorf("%w: type, category, amount, date and userEmail are required", ErrValidation)
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.Transactions.Insert(ctx, &storage.TransactionCreate{
		Type:        input.Type,
		Category:    input.Category,
		Amount:      amount,
		Description: input.Description,
		Date:        input.Date,
		UserEmail:   userEmail,
		UserName:    strings.TrimSpace(input.UserName),
	})
	if err != nil {
		return nil, err
	}

	return &CreateResult{InsertedID: id.Hex()}, nil
}

// Get returns a single transaction by id.
func (s *TransactionService) Get(ctx context.Context, id string) (*Transaction, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	return transactionFromStorage(row), nil
}

// ListByOwner returns the owner's transactions ordered by date descending.
func (s *TransactionService) ListByOwner(ctx context.Context, email string) ([]Transaction, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	rows, err := s.storage.Transactions.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	return transactionsFromStorage(rows), nil
}

// ListAll returns every stored transaction.
func (s *TransactionService) ListAll(ctx context.Context) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return transactionsFromStorage(rows), nil
}

// TotalByType sums amounts over the owner's transactions of the given type.
// An empty match totals to zero, never an error.
func (s *TransactionService) TotalByType(ctx context.Context, email, transactionType string) (float64, error) {
	if email == "" {
		return 0, fmt.Errorf("%w: userEmail is required", ErrValidation)
	}

	return s.storage.Transactions.SumAmount(ctx, email, "type", transactionType)
}

// TotalByCategory sums amounts over the owner's transactions in the given category.
func (s *TransactionService) TotalByCategory(ctx context.Context, email, category string) (float64, error) {
	if email == "" || category == "" {
		return 0, fmt.Errorf("%w: category and userEmail are required", ErrValidation)
	}

	return s.storage.Transactions.SumAmount(ctx, email, "category", category)
}

// Update replaces the editable fields of a transaction after the ownership
// check passes. The stored owner email and id are left untouched.
func (s *TransactionService) Update(ctx context.Context, id, callerEmail string, fields TransactionFields) (*UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(fields.Amount)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	if err := auth.AuthorizeOwner(row.UserEmail, callerEmail); err != nil {
		return nil, err
	}

	res, err := s.storage.Transactions.Update(ctx, oid, &storage.TransactionUpdate{
		Type:        fields.Type,
		Category:    fields.Category,
		Amount:      amount,
		Description: fields.Description,
		Date:        fields.Date,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// Delete permanently removes a transaction after the ownership check passes.
func (s *TransactionService) Delete(ctx context.Context, id, callerEmail string) (*DeleteResult, error) {
	if strings.TrimSpace(callerEmail) == "" {
		return nil, fmt.Errorf("%w: userEmail is required", ErrValidation)
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	row, err := s.storage.Transactions.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}

	if err := auth.AuthorizeOwner(row.UserEmail, callerEmail); err != nil {
		return nil, err
	}

	res, err := s.storage.Transactions.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}

	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func transactionFromStorage(row *storage.Transaction) *Transaction {
	return &Transaction{
		ID:          row.ID.Hex(),
		Type:        row.Type,
		Category:    row.Category,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
		UserEmail:   row.UserEmail,
		UserName:    row.UserName,
	}
}

func transactionsFromStorage(rows []*storage.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = *transactionFromStorage(row)
	}
	return converted
}
