package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-admin-api/internal/middleware"
	"github.com/voyago/travel-admin-api/internal/models"
)

// tokenValidator mirrors the auth guard dependency so route wiring does not
// pull in the concrete service.
type tokenValidator interface {
	ValidateToken(raw string) (*models.JWTClaims, error)
}

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth            *AuthHandler
	Dashboard       *DashboardHandler
	Statistics      *StatisticsHandler
	PaymentAccounts *PaymentAccountHandler
	Enums           *EnumHandler
	Banners         *BannerHandler
	Advertising     *AdvertisingHandler
	SocialLinks     *SocialLinkHandler
	ResetRequests   *ResetRequestHandler
	Chats           *ChatHandler
}

// RegisterRoutes mounts every endpoint under the API prefix. Reads are open;
// mutations require a valid admin token.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, auth tokenValidator) {
	api := r.Group(prefix)
	guard := middleware.JWT(auth)

	api.POST("/auth/login", h.Auth.Login)

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/bookings", h.Dashboard.Bookings)
		dashboard.GET("/notifications", h.Dashboard.Notifications)
		dashboard.GET("/announcements", h.Dashboard.Announcements)
		dashboard.GET("/pending-actions", h.Dashboard.PendingActions)
		dashboard.GET("/recent-activity", h.Dashboard.RecentActivity)
		dashboard.GET("/trending-insights", h.Dashboard.TrendingInsights)
		dashboard.GET("/company-overview", h.Dashboard.CompanyOverview)
	}

	statistics := api.Group("/statistics")
	{
		statistics.GET("/export", h.Statistics.Export)
		statistics.GET("/:kind", h.Statistics.Get)
	}

	settings := api.Group("/site-settings")
	{
		settings.GET("/payment-accounts", h.PaymentAccounts.List)
		settings.GET("/payment-accounts/:id", h.PaymentAccounts.Get)

		settings.GET("/enums", h.Enums.List)
		settings.POST("/enums", guard, h.Enums.Create)
		settings.DELETE("/enums/:name/values/:valueKey", guard, h.Enums.RemoveValue)

		settings.GET("/guide-banners", h.Banners.List)
		settings.POST("/guide-banners/reorder", guard, h.Banners.Reorder)

		settings.GET("/advertising/prices", h.Advertising.List)
		settings.POST("/advertising/prices", guard, h.Advertising.Create)
		settings.PUT("/advertising/prices/:id", guard, h.Advertising.Update)
		settings.DELETE("/advertising/prices/:id", guard, h.Advertising.Delete)

		settings.GET("/social-links", h.SocialLinks.List)
		settings.POST("/social-links", guard, h.SocialLinks.Create)
		settings.POST("/social-links/reorder", guard, h.SocialLinks.Reorder)
		settings.PUT("/social-links/:id", guard, h.SocialLinks.Update)
		settings.DELETE("/social-links/:id", guard, h.SocialLinks.Delete)

		settings.GET("/reset-password-requests", h.ResetRequests.List)
		settings.POST("/reset-password-requests/:id/resolve", guard, h.ResetRequests.Resolve)
	}

	chats := api.Group("/chats")
	{
		chats.GET("/messages", h.Chats.List)
		chats.POST("/:id/read", guard, h.Chats.MarkRead)
	}
}
