package handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/internal/service"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type enumService interface {
	EnumGroups(ctx context.Context) []models.EnumGroup
	CreateEnumGroup(ctx context.Context, req service.CreateEnumGroupRequest) (models.EnumGroup, error)
	RemoveEnumValue(ctx context.Context, groupName, valueKey string) (models.EnumGroup, error)
}

// EnumHandler serves the admin dropdown enum groups.
type EnumHandler struct {
	service enumService
}

// NewEnumHandler constructs the handler.
func NewEnumHandler(service enumService) *EnumHandler {
	return &EnumHandler{service: service}
}

// enumListPayload is the enum listing body; fetchedAt lets the admin UI show
// how stale its dropdown data is.
type enumListPayload struct {
	Enums     []models.EnumGroup `json:"enums"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// List godoc
// @Summary List enum groups
// @Tags Site Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site-settings/enums [get]
func (h *EnumHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, enumListPayload{
		Enums:     h.service.EnumGroups(c.Request.Context()),
		FetchedAt: time.Now().UTC(),
	}, nil)
}

// Create godoc
// @Summary Create an enum group
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param payload body service.CreateEnumGroupRequest true "Group definition"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /site-settings/enums [post]
func (h *EnumHandler) Create(c *gin.Context) {
	var req service.CreateEnumGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid enum group payload"))
		return
	}

	group, err := h.service.CreateEnumGroup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, group)
}

// RemoveValue godoc
// @Summary Delete one value from an enum group
// @Tags Site Settings
// @Produce json
// @Param name path string true "Group name (URL-encoded)"
// @Param valueKey path string true "Value key (URL-encoded)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /site-settings/enums/{name}/values/{valueKey} [delete]
func (h *EnumHandler) RemoveValue(c *gin.Context) {
	name := decodeParam(c.Param("name"))
	key := decodeParam(c.Param("valueKey"))

	group, err := h.service.RemoveEnumValue(c.Request.Context(), name, key)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, group, nil)
}

// decodeParam URL-decodes a path segment; group names and value keys may
// contain encoded characters.
func decodeParam(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
