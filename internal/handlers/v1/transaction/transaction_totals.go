package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ggbd-labs/finance-server/internal/service"
)

// TotalByTypeInput is the Huma input for the per-type total endpoints.
type TotalByTypeInput struct {
	UserEmail string `query:"userEmail" doc:"Owner email"`
}

// TotalByCategoryInput is the Huma input for the per-category total endpoint.
type TotalByCategoryInput struct {
	Category  string `query:"category" doc:"Category label"`
	UserEmail string `query:"userEmail" doc:"Owner email"`
}

// TotalResponseBody carries an aggregate sum. An empty match is {"total": 0}.
type TotalResponseBody struct {
	Total float64 `json:"total" doc:"Sum of matching transaction amounts"`
}

// TotalOutput is the Huma output for the total endpoints.
type TotalOutput struct {
	Body TotalResponseBody
}

// transactionTotaler is the interface for on-demand aggregate sums.
type transactionTotaler interface {
	TotalByType(ctx context.Context, email, transactionType string) (float64, error)
	TotalByCategory(ctx context.Context, email, category string) (float64, error)
}

// TotalsHandler handles the three aggregate endpoints under /transactions.
type TotalsHandler struct {
	TransactionService transactionTotaler
}

// NewTotalsHandler creates a new TotalsHandler.
func NewTotalsHandler(svc transactionTotaler) *TotalsHandler {
	return &TotalsHandler{TransactionService: svc}
}

// Register registers the aggregate endpoints with the Huma API.
func (h *TotalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "total-income",
		Method:      http.MethodGet,
		Path:        "/transactions/total-income",
		Summary:     "Total income",
		Description: "Sums a user's Income transaction amounts.",
		Tags:        []string{"Transactions"},
	}, h.handleIncome)

	huma.Register(api, huma.Operation{
		OperationID: "total-expense",
		Method:      http.MethodGet,
		Path:        "/transactions/total-expense",
		Summary:     "Total expense",
		Description: "Sums a user's Expense transaction amounts.",
		Tags:        []string{"Transactions"},
	}, h.handleExpense)

	huma.Register(api, huma.Operation{
		OperationID: "category-total",
		Method:      http.MethodGet,
		Path:        "/transactions/category-total",
		Summary:     "Category total",
		Description: "Sums a user's transaction amounts in one category.",
		Tags:        []string{"Transactions"},
	}, h.handleCategory)
}

func (h *TotalsHandler) handleIncome(ctx context.Context, input *TotalByTypeInput) (*TotalOutput, error) {
	return h.totalByType(ctx, input.UserEmail, service.TypeIncome)
}

func (h *TotalsHandler) handleExpense(ctx context.Context, input *TotalByTypeInput) (*TotalOutput, error) {
	return h.totalByType(ctx, input.UserEmail, service.TypeExpense)
}

func (h *TotalsHandler) totalByType(ctx context.Context, email, transactionType string) (*TotalOutput, error) {
	total, err := h.TransactionService.TotalByType(ctx, email, transactionType)
	if err != nil {
		return nil, mapServiceError(err, "Error calculating total")
	}

	return &TotalOutput{Body: TotalResponseBody{Total: total}}, nil
}

func (h *TotalsHandler) handleCategory(ctx context.Context, input *TotalByCategoryInput) (*TotalOutput, error) {
	total, err := h.TransactionService.TotalByCategory(ctx, input.UserEmail, input.Category)
	if err != nil {
		return nil, mapServiceError(err, "Error calculating category total")
	}

	return &TotalOutput{Body: TotalResponseBody{Total: total}}, nil
}
