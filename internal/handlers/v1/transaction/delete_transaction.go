package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ggbd-labs/finance-server/internal/service"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID        string `path:"id" doc:"Transaction id"`
	UserEmail string `query:"userEmail" doc:"Caller email, must match the stored owner"`
}

// DeleteTransactionResponseBody is the response body for deleting a transaction.
type DeleteTransactionResponseBody struct {
	DeletedCount int64 `json:"deletedCount" doc:"Records removed"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponseBody
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	Delete(ctx context.Context, id, callerEmail string) (*service.DeleteResult, error)
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
	Middlewares        huma.Middlewares
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Permanently removes a transaction. Only the owner may delete.",
		Tags:        []string{"Transactions"},
		Middlewares: h.Middlewares,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	result, err := h.TransactionService.Delete(ctx, input.ID, input.UserEmail)
	if err != nil {
		return nil, mapServiceError(err, "Failed to delete transaction")
	}

	return &DeleteTransactionOutput{
		Body: DeleteTransactionResponseBody{DeletedCount: result.DeletedCount},
	}, nil
}
