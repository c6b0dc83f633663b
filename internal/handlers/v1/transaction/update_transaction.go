package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ggbd-labs/finance-server/internal/service"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Only the editable fields are accepted; userEmail is the caller's email
// for the ownership check, never a new owner.
type UpdateTransactionBody struct {
	Type        string `json:"type,omitempty" doc:"Income or Expense"`
	Category    string `json:"category,omitempty" doc:"Category label"`
	Amount      string `json:"amount,omitempty" doc:"Numeric amount"`
	Description string `json:"description,omitempty" doc:"Optional free-form description"`
	Date        string `json:"date,omitempty" doc:"Transaction date"`
	UserEmail   string `json:"userEmail,omitempty" doc:"Caller email, must match the stored owner"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction id"`
	Body UpdateTransactionBody
}

// UpdateTransactionResponseBody is the response body for updating a transaction.
type UpdateTransactionResponseBody struct {
	MatchedCount  int64 `json:"matchedCount" doc:"Records matched by the update"`
	ModifiedCount int64 `json:"modifiedCount" doc:"Records actually modified"`
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body UpdateTransactionResponseBody
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	Update(ctx context.Context, id, callerEmail string, fields service.TransactionFields) (*service.UpdateResult, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
	Middlewares        huma.Middlewares
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the editable fields of a transaction. Only the owner may update.",
		Tags:        []string{"Transactions"},
		Middlewares: h.Middlewares,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	result, err := h.TransactionService.Update(ctx, input.ID, input.Body.UserEmail, service.TransactionFields{
		Type:        input.Body.Type,
		Category:    input.Body.Category,
		Amount:      input.Body.Amount,
		Description: input.Body.Description,
		Date:        input.Body.Date,
	})
	if err != nil {
		return nil, mapServiceError(err, "Failed to update transaction")
	}

	return &UpdateTransactionOutput{
		Body: UpdateTransactionResponseBody{
			MatchedCount:  result.MatchedCount,
			ModifiedCount: result.ModifiedCount,
		},
	}, nil
}
