package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/pkg/pagination"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type paymentAccountService interface {
	PaymentAccounts(ctx context.Context, filter models.PaymentAccountFilter, params pagination.Params) (pagination.Page[models.PaymentAccount], error)
	PaymentAccount(ctx context.Context, id string) (*models.PaymentAccount, error)
}

// PaymentAccountHandler serves the payout-account settings pages.
type PaymentAccountHandler struct {
	service paymentAccountService
}

// NewPaymentAccountHandler constructs the handler.
func NewPaymentAccountHandler(service paymentAccountService) *PaymentAccountHandler {
	return &PaymentAccountHandler{service: service}
}

// List godoc
// @Summary List payment accounts
// @Tags Site Settings
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param pageSize query int false "Page size (default 5)"
// @Param provider query string false "Exact provider match"
// @Param search query string false "Substring match on name/number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /site-settings/payment-accounts [get]
func (h *PaymentAccountHandler) List(c *gin.Context) {
	params, err := pagination.ParseParams(c, pagination.DefaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := models.PaymentAccountFilter{
		Provider: strings.TrimSpace(c.Query("provider")),
		Search:   strings.TrimSpace(c.Query("search")),
	}

	page, err := h.service.PaymentAccounts(c.Request.Context(), filter, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, page.Items, &models.Pagination{
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.Total,
	})
}

// Get godoc
// @Summary Get one payment account
// @Tags Site Settings
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /site-settings/payment-accounts/{id} [get]
func (h *PaymentAccountHandler) Get(c *gin.Context) {
	account, err := h.service.PaymentAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, account, nil)
}
