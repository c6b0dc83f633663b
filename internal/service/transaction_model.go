package service

// Transaction type values. The domain is a closed set.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          string
	Type        string
	Category    string
	Amount      float64
	Description string
	Date        string
	UserEmail   string
	UserName    string
}

// TransactionInput carries caller-supplied fields for a create.
// Amount arrives as a string and is parsed to a number during validation.
// Description and UserName are optional and default to empty strings.
type TransactionInput struct {
	Type        string
	Category    string
	Amount      string
	Description string
	Date        string
	UserEmail   string
	UserName    string
}

// TransactionFields is the replaceable subset of a transaction for updates.
// The owner email and id are never part of an update.
type TransactionFields struct {
	Type        string
	Category    string
	Amount      string
	Description string
	Date        string
}

// CreateResult describes a successful insert.
type CreateResult struct {
	InsertedID string
}

// UpdateResult describes a successful update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult describes a successful delete.
type DeleteResult struct {
	DeletedCount int64
}
