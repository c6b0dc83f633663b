package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ggbd-labs/finance-server/internal/logging"
	"github.com/ggbd-labs/finance-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing a user's transactions.
type ListTransactionsInput struct {
	Email string `query:"email" doc:"Owner email"`
}

// ListTransactionsOutput is the Huma output: a bare array ordered by date descending.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions by owner.
type transactionLister interface {
	ListByOwner(ctx context.Context, email string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions and its /reports alias.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers both list endpoints with the Huma API.
// /reports serves the same contract under the name report clients use.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns a user's transactions ordered by date descending.",
		Tags:        []string{"Transactions"},
	}, h.handle)

	huma.Register(api, huma.Operation{
		OperationID: "list-reports",
		Method:      http.MethodGet,
		Path:        "/reports",
		Summary:     "List report transactions",
		Description: "Returns a user's transactions ordered by date descending.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := h.TransactionService.ListByOwner(ctx, input.Email)
	if err != nil {
		return nil, mapServiceError(err, "Error fetching user transactions")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	return &ListTransactionsOutput{Body: transactionsFromService(transactions)}, nil
}
