package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ggbd-labs/finance-server/internal/auth"
	"github.com/ggbd-labs/finance-server/internal/service"
)

type mockTransactionDeleter struct {
	mock.Mock
}

func (m *mockTransactionDeleter) Delete(ctx context.Context, id, callerEmail string) (*service.DeleteResult, error) {
	args := m.Called(ctx, id, callerEmail)
	result, _ := args.Get(0).(*service.DeleteResult)
	return result, args.Error(1)
}

func newDeleteTestAPI(t *testing.T, svc transactionDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, "665f1f77bcf86cd799439011", "a@x.com").
		Return(&service.DeleteResult{DeletedCount: 1}, nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/transactions/665f1f77bcf86cd799439011?userEmail=a@x.com")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.DeletedCount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_MissingEmail(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, mock.Anything, "").
		Return(nil, service.ErrValidation)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/transactions/665f1f77bcf86cd799439011")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_Forbidden(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, mock.Anything, "b@x.com").
		Return(nil, auth.ErrNotOwner)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/transactions/665f1f77bcf86cd799439011?userEmail=b@x.com")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("Delete", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrNotFound)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/transactions/665f1f77bcf86cd799439011?userEmail=a@x.com")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
