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

type chatService interface {
	Messages(ctx context.Context, conversationID string, params pagination.Params) (pagination.Page[models.ChatMessage], error)
	MarkRead(ctx context.Context, id string) (models.ChatMessage, error)
}

// ChatHandler serves the support-chat message endpoints.
type ChatHandler struct {
	service chatService
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// List godoc
// @Summary List chat messages oldest-first
// @Tags Chats
// @Produce json
// @Param conversationId query string false "Filter to one conversation"
// @Param page query int false "Page (default 1)"
// @Param pageSize query int false "Page size (default 5)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /chats/messages [get]
func (h *ChatHandler) List(c *gin.Context) {
	params, err := pagination.ParseParams(c, pagination.DefaultPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.service.Messages(c.Request.Context(), strings.TrimSpace(c.Query("conversationId")), params)
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

// MarkRead godoc
// @Summary Flag a message read
// @Tags Chats
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /chats/{id}/read [post]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	msg, err := h.service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, msg, nil)
}
