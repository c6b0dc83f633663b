package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ggbd-labs/finance-server/internal/logging"
	"github.com/ggbd-labs/finance-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
// Required-field checks happen in the service so missing fields map to 400,
// matching the contract, rather than schema-validation 422s.
type CreateTransactionBody struct {
	Type        string `json:"type,omitempty" doc:"Income or Expense"`
	Category    string `json:"category,omitempty" doc:"Category label"`
	Amount      string `json:"amount,omitempty" doc:"Numeric amount"`
	Description string `json:"description,omitempty" doc:"Optional free-form description"`
	Date        string `json:"date,omitempty" doc:"Transaction date"`
	UserEmail   string `json:"userEmail,omitempty" doc:"Owner email"`
	UserName    string `json:"userName,omitempty" doc:"Optional owner display name"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	InsertedID string `json:"insertedId" doc:"Id assigned to the new transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponseBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, input service.TransactionInput) (*service.CreateResult, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	Middlewares        huma.Middlewares
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Create transaction",
		Description: "Adds a new income or expense transaction for a user.",
		Tags:        []string{"Transactions"},
		Middlewares: h.Middlewares,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	result, err := h.TransactionService.Create(ctx, service.TransactionInput{
		Type:        input.Body.Type,
		Category:    input.Body.Category,
		Amount:      input.Body.Amount,
		Description: input.Body.Description,
		Date:        input.Body.Date,
		UserEmail:   input.Body.UserEmail,
		UserName:    input.Body.UserName,
	})
	if err != nil {
		return nil, mapServiceError(err, "Failed to add transaction")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("insertedId", result.InsertedID)
	}

	return &CreateTransactionOutput{
		Body: CreateTransactionResponseBody{InsertedID: result.InsertedID},
	}, nil
}
