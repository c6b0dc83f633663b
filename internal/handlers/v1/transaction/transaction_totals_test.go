package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ggbd-labs/finance-server/internal/service"
)

type mockTransactionTotaler struct {
	mock.Mock
}

func (m *mockTransactionTotaler) TotalByType(ctx context.Context, email, transactionType string) (float64, error) {
	args := m.Called(ctx, email, transactionType)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockTransactionTotaler) TotalByCategory(ctx context.Context, email, category string) (float64, error) {
	args := m.Called(ctx, email, category)
	return args.Get(0).(float64), args.Error(1)
}

func newTotalsTestAPI(t *testing.T, svc transactionTotaler) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewTotalsHandler(svc).Register(api)
	return api
}

func TestHTTP_TotalIncome_Success(t *testing.T) {
	mockSvc := new(mockTransactionTotaler)
	mockSvc.On("TotalByType", mock.Anything, "a@x.com", service.TypeIncome).
		Return(1250.75, nil)

	resp := newTotalsTestAPI(t, mockSvc).Get("/transactions/total-income?userEmail=a@x.com")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TotalResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1250.75, body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_TotalExpense_EmptyMatchIsZero(t *testing.T) {
	mockSvc := new(mockTransactionTotaler)
	mockSvc.On("TotalByType", mock.Anything, "nobody@x.com", service.TypeExpense).
		Return(0.0, nil)

	resp := newTotalsTestAPI(t, mockSvc).Get("/transactions/total-expense?userEmail=nobody@x.com")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TotalResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0.0, body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_TotalIncome_MissingEmail(t *testing.T) {
	mockSvc := new(mockTransactionTotaler)
	mockSvc.On("TotalByType", mock.Anything, "", service.TypeIncome).
		Return(0.0, service.ErrValidation)

	resp := newTotalsTestAPI(t, mockSvc).Get("/transactions/total-income")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CategoryTotal_Success(t *testing.T) {
	mockSvc := new(mockTransactionTotaler)
	mockSvc.On("TotalByCategory", mock.Anything, "a@x.com", "Groceries").
		Return(87.3, nil)

	resp := newTotalsTestAPI(t, mockSvc).Get("/transactions/category-total?category=Groceries&userEmail=a@x.com")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body TotalResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 87.3, body.Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CategoryTotal_MissingInputs(t *testing.T) {
	mockSvc := new(mockTransactionTotaler)
	mockSvc.On("TotalByCategory", mock.Anything, "a@x.com", "").
		Return(0.0, service.ErrValidation)

	resp := newTotalsTestAPI(t, mockSvc).Get("/transactions/category-total?userEmail=a@x.com")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_TotalIncome_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionTotaler)
	mockSvc.On("TotalByType", mock.Anything, mock.Anything, mock.Anything).
		Return(0.0, errors.New("database unavailable"))

	resp := newTotalsTestAPI(t, mockSvc).Get("/transactions/total-income?userEmail=a@x.com")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
