package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/pkg/pagination"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type resetRequestService interface {
	ResetPasswordRequests(ctx context.Context, params pagination.Params) (pagination.Page[models.ResetPasswordRequest], error)
	ResolveResetPasswordRequest(ctx context.Context, id string) (models.ResetPasswordRequest, error)
}

// ResetRequestHandler serves the password-reset request queue.
type ResetRequestHandler struct {
	service resetRequestService
}

// NewResetRequestHandler constructs the handler.
func NewResetRequestHandler(service resetRequestService) *ResetRequestHandler {
	return &ResetRequestHandler{service: service}
}

// List godoc
// @Summary List reset requests newest-first
// @Tags Site Settings
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param pageSize query int false "Page size (default 5)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /site-settings/reset-password-requests [get]
func (h *ResetRequestHandler) List(c *gin.Context) {
	params, err := pagination.ParseParams(c, pagination.DefaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.service.ResetPasswordRequests(c.Request.Context(), params)
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

// Resolve godoc
// @Summary Mark a reset request handled
// @Tags Site Settings
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /site-settings/reset-password-requests/{id}/resolve [post]
func (h *ResetRequestHandler) Resolve(c *gin.Context) {
	req, err := h.service.ResolveResetPasswordRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req, nil)
}
