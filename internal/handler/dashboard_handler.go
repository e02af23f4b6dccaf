package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/middleware"
	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/internal/service"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type dashboardService interface {
	Bookings(ctx context.Context, opts service.FixtureOptions) ([]models.Booking, bool, error)
	Notifications(ctx context.Context, opts service.FixtureOptions) ([]models.AdminNotification, bool, error)
	Announcements(ctx context.Context, opts service.FixtureOptions) ([]models.Announcement, bool, error)
	PendingActions(ctx context.Context, opts service.FixtureOptions) ([]models.PendingAction, bool, error)
	RecentActivity(ctx context.Context, opts service.FixtureOptions) ([]models.RecentActivity, bool, error)
	TrendingInsights(ctx context.Context, opts service.FixtureOptions) ([]models.TrendingInsight, bool, error)
	CompanyOverview(ctx context.Context, opts service.FixtureOptions) (models.CompanyOverview, bool, error)
}

// DashboardHandler wires dashboard widget data to HTTP endpoints. Every
// endpoint accepts optional seed and count query parameters.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) respond(c *gin.Context, data interface{}, cacheHit bool, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, data, nil, middleware.ExtractMeta(c))
}

// Bookings godoc
// @Summary Recent bookings widget
// @Tags Dashboard
// @Produce json
// @Param seed query int false "Fixed random seed"
// @Param count query int false "Record count"
// @Success 200 {object} response.Envelope
// @Router /dashboard/bookings [get]
func (h *DashboardHandler) Bookings(c *gin.Context) {
	data, hit, err := h.service.Bookings(c.Request.Context(), parseFixtureOptions(c))
	h.respond(c, data, hit, err)
}

// Notifications godoc
// @Summary Admin notification feed
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/notifications [get]
func (h *DashboardHandler) Notifications(c *gin.Context) {
	data, hit, err := h.service.Notifications(c.Request.Context(), parseFixtureOptions(c))
	h.respond(c, data, hit, err)
}

// Announcements godoc
// @Summary Platform announcements
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/announcements [get]
func (h *DashboardHandler) Announcements(c *gin.Context) {
	data, hit, err := h.service.Announcements(c.Request.Context(), parseFixtureOptions(c))
	h.respond(c, data, hit, err)
}

// PendingActions godoc
// @Summary Administrator work queue
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/pending-actions [get]
func (h *DashboardHandler) PendingActions(c *gin.Context) {
	data, hit, err := h.service.PendingActions(c.Request.Context(), parseFixtureOptions(c))
	h.respond(c, data, hit, err)
}

// RecentActivity godoc
// @Summary Recent back-office activity
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	data, hit, err := h.service.RecentActivity(c.Request.Context(), parseFixtureOptions(c))
	h.respond(c, data, hit, err)
}

// TrendingInsights godoc
// @Summary Trending analytics teasers
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/trending-insights [get]
func (h *DashboardHandler) TrendingInsights(c *gin.Context) {
	data, hit, err := h.service.TrendingInsights(c.Request.Context(), parseFixtureOptions(c))
	h.respond(c, data, hit, err)
}

// CompanyOverview godoc
// @Summary Aggregate company overview card
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/company-overview [get]
func (h *DashboardHandler) CompanyOverview(c *gin.Context) {
	data, hit, err := h.service.CompanyOverview(c.Request.Context(), parseFixtureOptions(c))
	h.respond(c, data, hit, err)
}
