package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/internal/service"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type socialLinkService interface {
	SocialLinks(ctx context.Context) []models.SocialLink
	CreateSocialLink(ctx context.Context, req service.UpsertSocialLinkRequest) (models.SocialLink, error)
	UpdateSocialLink(ctx context.Context, id string, req service.UpsertSocialLinkRequest) (models.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id string) error
	ReorderSocialLinks(ctx context.Context, req service.ReorderRequest) ([]models.SocialLink, error)
}

// SocialLinkHandler serves the public-footer social link settings.
type SocialLinkHandler struct {
	service socialLinkService
}

// NewSocialLinkHandler constructs the handler.
func NewSocialLinkHandler(service socialLinkService) *SocialLinkHandler {
	return &SocialLinkHandler{service: service}
}

// List godoc
// @Summary List social links in display order
// @Tags Site Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site-settings/social-links [get]
func (h *SocialLinkHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.SocialLinks(c.Request.Context()), nil)
}

// Create godoc
// @Summary Add a social link
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param payload body service.UpsertSocialLinkRequest true "Link definition"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /site-settings/social-links [post]
func (h *SocialLinkHandler) Create(c *gin.Context) {
	var req service.UpsertSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid social link payload"))
		return
	}

	link, err := h.service.CreateSocialLink(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, link)
}

// Update godoc
// @Summary Replace a social link
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param payload body service.UpsertSocialLinkRequest true "Link definition"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /site-settings/social-links/{id} [put]
func (h *SocialLinkHandler) Update(c *gin.Context) {
	var req service.UpsertSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid social link payload"))
		return
	}

	link, err := h.service.UpdateSocialLink(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, link, nil)
}

// Delete godoc
// @Summary Delete a social link
// @Tags Site Settings
// @Produce json
// @Param id path string true "Link ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /site-settings/social-links/{id} [delete]
func (h *SocialLinkHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteSocialLink(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Reorder godoc
// @Summary Apply a new link display order
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param payload body service.ReorderRequest true "IDs in their new order"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /site-settings/social-links/reorder [post]
func (h *SocialLinkHandler) Reorder(c *gin.Context) {
	var req service.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid reorder payload"))
		return
	}

	links, err := h.service.ReorderSocialLinks(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, links, nil)
}
