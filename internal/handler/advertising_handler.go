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

type advertisingService interface {
	AdvertisingPrices(ctx context.Context) []models.AdvertisingPrice
	CreateAdvertisingPrice(ctx context.Context, req service.CreatePriceRequest) (models.AdvertisingPrice, error)
	UpdateAdvertisingPrice(ctx context.Context, id string, req service.CreatePriceRequest) (models.AdvertisingPrice, error)
	DeleteAdvertisingPrice(ctx context.Context, id string) error
}

// AdvertisingHandler serves the advertising placement price list.
type AdvertisingHandler struct {
	service advertisingService
}

// NewAdvertisingHandler constructs the handler.
func NewAdvertisingHandler(service advertisingService) *AdvertisingHandler {
	return &AdvertisingHandler{service: service}
}

// List godoc
// @Summary List advertising placement prices
// @Tags Site Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site-settings/advertising/prices [get]
func (h *AdvertisingHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.AdvertisingPrices(c.Request.Context()), nil)
}

// Create godoc
// @Summary Create a placement price
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param payload body service.CreatePriceRequest true "Price definition"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /site-settings/advertising/prices [post]
func (h *AdvertisingHandler) Create(c *gin.Context) {
	var req service.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid price payload"))
		return
	}

	price, err := h.service.CreateAdvertisingPrice(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, price)
}

// Update godoc
// @Summary Replace a placement price
// @Tags Site Settings
// @Accept json
// @Produce json
// @Param id path string true "Price ID"
// @Param payload body service.CreatePriceRequest true "Price definition"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /site-settings/advertising/prices/{id} [put]
func (h *AdvertisingHandler) Update(c *gin.Context) {
	var req service.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid price payload"))
		return
	}

	price, err := h.service.UpdateAdvertisingPrice(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, price, nil)
}

// Delete godoc
// @Summary Delete a placement price
// @Tags Site Settings
// @Produce json
// @Param id path string true "Price ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /site-settings/advertising/prices/{id} [delete]
func (h *AdvertisingHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteAdvertisingPrice(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
