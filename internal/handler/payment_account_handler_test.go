package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/pagination"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type paymentAccountServiceMock struct {
	accounts   []models.PaymentAccount
	getErr     error
	lastFilter models.PaymentAccountFilter
}

func (m *paymentAccountServiceMock) PaymentAccounts(ctx context.Context, filter models.PaymentAccountFilter, params pagination.Params) (pagination.Page[models.PaymentAccount], error) {
	m.lastFilter = filter
	return pagination.Paginate(m.accounts, params)
}

func (m *paymentAccountServiceMock) PaymentAccount(ctx context.Context, id string) (*models.PaymentAccount, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return &models.PaymentAccount{ID: id}, nil
}

func TestPaymentAccountHandlerListForwardsFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &paymentAccountServiceMock{accounts: []models.PaymentAccount{{ID: "a1"}, {ID: "a2"}}}
	handler := NewPaymentAccountHandler(mock)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/site-settings/payment-accounts?provider=stripe&search=Acme&page=1&pageSize=10", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stripe", mock.lastFilter.Provider)
	assert.Equal(t, "Acme", mock.lastFilter.Search)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.TotalCount)
	assert.Equal(t, 10, env.Pagination.PageSize)
}

func TestPaymentAccountHandlerGetUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPaymentAccountHandler(&paymentAccountServiceMock{getErr: appErrors.ErrNotFound})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/site-settings/payment-accounts/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
