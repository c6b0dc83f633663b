package transaction

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ggbd-labs/finance-server/internal/auth"
	"github.com/ggbd-labs/finance-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"_id" doc:"Transaction id"`
	Type        string  `json:"type" doc:"Income or Expense"`
	Category    string  `json:"category" doc:"Category label"`
	Amount      float64 `json:"amount" doc:"Numeric amount"`
	Description string  `json:"description" doc:"Free-form description"`
	Date        string  `json:"date" doc:"Transaction date, used for ordering"`
	UserEmail   string  `json:"userEmail" doc:"Owner email"`
	UserName    string  `json:"userName" doc:"Owner display name"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Description: tx.Description,
		Date:        tx.Date,
		UserEmail:   tx.UserEmail,
		UserName:    tx.UserName,
	}
}

func transactionsFromService(txs []service.Transaction) []Transaction {
	converted := make([]Transaction, len(txs))
	for i, tx := range txs {
		converted[i] = transactionFromService(tx)
	}
	return converted
}

// mapServiceError converts service failures to API errors. Unrecognized
// failures become a 500 with a generic message; the cause stays server-side.
func mapServiceError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidID):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNotOwner):
		return huma.NewError(http.StatusForbidden, "Not authorized")
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, "Transaction not found")
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
