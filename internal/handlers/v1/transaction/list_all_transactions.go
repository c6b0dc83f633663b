package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ggbd-labs/finance-server/internal/logging"
	"github.com/ggbd-labs/finance-server/internal/service"
)

// ListAllTransactionsInput is the (empty) Huma input for listing all records.
type ListAllTransactionsInput struct{}

// ListAllTransactionsOutput is the Huma output: every stored transaction.
type ListAllTransactionsOutput struct {
	Body []Transaction
}

// transactionListerAll is the interface for listing every transaction.
type transactionListerAll interface {
	ListAll(ctx context.Context) ([]service.Transaction, error)
}

// ListAllTransactionsHandler handles GET /alluser.
type ListAllTransactionsHandler struct {
	TransactionService transactionListerAll
}

// NewListAllTransactionsHandler creates a new ListAllTransactionsHandler.
func NewListAllTransactionsHandler(svc transactionListerAll) *ListAllTransactionsHandler {
	return &ListAllTransactionsHandler{TransactionService: svc}
}

// Register registers the list-all endpoint with the Huma API.
func (h *ListAllTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-all-transactions",
		Method:      http.MethodGet,
		Path:        "/alluser",
		Summary:     "List all transactions",
		Description: "Returns every stored transaction, unfiltered.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListAllTransactionsHandler) handle(ctx context.Context, _ *ListAllTransactionsInput) (*ListAllTransactionsOutput, error) {
	transactions, err := h.TransactionService.ListAll(ctx)
	if err != nil {
		return nil, mapServiceError(err, "Error fetching transactions")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	return &ListAllTransactionsOutput{Body: transactionsFromService(transactions)}, nil
}
