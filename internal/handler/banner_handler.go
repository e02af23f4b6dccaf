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

type bannerService interface {
	GuideBanners(ctx context.Context) []models.GuideBanner
	ReorderGuideBanners(ctx context.Context, req service.ReorderRequest) ([]models.GuideBanner, error)
}

// BannerHandler serves the guide-app banner settings.
type BannerHandler struct {
	service bannerService
}

// NewBannerHandler constructs the handler.
func NewBannerHandler(service bannerService) *BannerHandler {
	return &BannerHandler{service: service}
}

// List godoc
// @Summary List guide banners in display order
// @Tags Site Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site-settings/guide-banners [get]
func (h *BannerHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.GuideBanners(c.Request.Context()), nil)
}

// Reorder godoc
// @Summary Apply a new banner display order
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param payload body service.ReorderRequest true "IDs in their new order"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /site-settings/guide-banners/reorder [post]
func (h *BannerHandler) Reorder(c *gin.Context) {
	var req service.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid reorder payload"))
		return
	}

	banners, err := h.service.ReorderGuideBanners(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, banners, nil)
}
