package fixture

import (
	"fmt"
	"strings"
	"time"

	"github.com/voyago/travel-admin-api/internal/models"
)

// Default counts per kind, matching the sizes the dashboard widgets render.
const (
	DefaultBookings      = 10
	DefaultNotifications = 8
	DefaultAnnouncements = 5
	DefaultActions       = 6
	DefaultActivities    = 12
	DefaultInsights      = 4
	DefaultSocialLinks   = 5
	DefaultAccounts      = 12
	DefaultBanners       = 6
	DefaultPrices        = 5
	DefaultResets        = 9
	DefaultMessages      = 30
)

var bookingStatuses = []models.BookingStatus{
	models.BookingPending, models.BookingConfirmed,
	models.BookingCancelled, models.BookingCompleted,
}

// Bookings generates count recent-booking rows.
func (g *Generator) Bookings(count int) []models.Booking {
	out := make([]models.Booking, count)
	for i := range out {
		out[i] = models.Booking{
			ID:           g.id(),
			Reference:    fmt.Sprintf("BK-%06d", g.intBetween(100000, 999999)),
			CustomerName: g.fullName(),
			TourTitle:    g.tourTitle(),
			CompanyName:  g.pick(companyNames),
			Travelers:    g.intBetween(1, 8),
			TotalCents:   int64(g.intBetween(4900, 250000)),
			Currency:     g.pick(currencies),
			Status:       bookingStatuses[g.r.Intn(len(bookingStatuses))],
			BookedAt:     g.recentTime(14),
		}
	}
	return out
}

// AdminNotifications generates count notification-feed entries.
func (g *Generator) AdminNotifications(count int) []models.AdminNotification {
	out := make([]models.AdminNotification, count)
	for i := range out {
		title := g.pick(notificationTitles)
		out[i] = models.AdminNotification{
			ID:        g.id(),
			Title:     title,
			Body:      title + ". Review it in the back office.",
			Severity:  g.pick(severities),
			Read:      g.r.Intn(3) == 0,
			CreatedAt: g.recentTime(7),
		}
	}
	return out
}

// Announcements generates count platform announcements.
func (g *Generator) Announcements(count int) []models.Announcement {
	out := make([]models.Announcement, count)
	for i := range out {
		title := g.pick(announcementTitles)
		out[i] = models.Announcement{
			ID:          g.id(),
			Title:       title,
			Body:        title + ". See the operations wiki for details.",
			Audience:    g.pick(audiences),
			Pinned:      g.r.Intn(4) == 0,
			PublishedAt: g.recentTime(30),
		}
	}
	return out
}

// PendingActions generates count items awaiting an administrator.
func (g *Generator) PendingActions(count int) []models.PendingAction {
	out := make([]models.PendingAction, count)
	for i := range out {
		out[i] = models.PendingAction{
			ID:           g.id(),
			Kind:         g.pick(pendingActionKinds),
			Subject:      g.pick(companyNames),
			SubmittedBy:  g.fullName(),
			Priority:     g.intBetween(1, 5),
			WaitingSince: g.recentTime(10),
		}
	}
	return out
}

// RecentActivities generates count audit-feed rows.
func (g *Generator) RecentActivities(count int) []models.RecentActivity {
	out := make([]models.RecentActivity, count)
	for i := range out {
		out[i] = models.RecentActivity{
			ID:         g.id(),
			Actor:      g.fullName(),
			Action:     g.pick(activityActions),
			Target:     g.tourTitle(),
			OccurredAt: g.recentTime(3),
		}
	}
	return out
}

// TrendingInsights generates count analytics teasers. Percentage stays in
// [1,100] and Confidence in [0.5,0.99].
func (g *Generator) TrendingInsights(count int) []models.TrendingInsight {
	out := make([]models.TrendingInsight, count)
	for i := range out {
		topic := g.pick(insightTopics)
		pct := g.intBetween(1, 100)
		out[i] = models.TrendingInsight{
			ID:         g.id(),
			Topic:      topic,
			Summary:    fmt.Sprintf("%s changed %d%% over the window", topic, pct),
			Percentage: pct,
			Confidence: g.floatBetween(0.5, 0.99),
			Direction:  g.pick(insightDirections),
			WindowDays: g.intBetween(7, 90),
		}
	}
	return out
}

// CompanyOverview generates the aggregate company card.
func (g *Generator) CompanyOverview() models.CompanyOverview {
	total := g.intBetween(120, 900)
	active := g.intBetween(total/2, total)
	pending := g.intBetween(0, total-active)
	return models.CompanyOverview{
		TotalCompanies:      total,
		ActiveCompanies:     active,
		PendingVerification: pending,
		SuspendedCompanies:  total - active - pending,
		NewThisMonth:        g.intBetween(1, 40),
		AverageRating:       g.floatBetween(3.2, 4.9),
	}
}

// ChatStats generates the support-chat statistics card.
func (g *Generator) ChatStats() models.ChatStats {
	total := g.intBetween(300, 5000)
	return models.ChatStats{
		TotalConversations:      total,
		OpenConversations:       g.intBetween(0, total/4),
		ResolvedToday:           g.intBetween(0, 120),
		AvgFirstResponseMinutes: g.floatBetween(1, 45),
		AvgResolutionHours:      g.floatBetween(0.5, 48),
		SatisfactionScore:       g.floatBetween(3.0, 5.0),
	}
}

// EmployeesStats generates the staffing statistics card.
func (g *Generator) EmployeesStats() models.EmployeesStats {
	total := g.intBetween(8, 120)
	return models.EmployeesStats{
		TotalEmployees:     total,
		OnlineNow:          g.intBetween(0, total),
		OnLeave:            g.intBetween(0, total/5),
		TicketsPerEmployee: g.floatBetween(0.5, 25),
		TopPerformer:       g.fullName(),
	}
}

// ImagesStats generates the media-library statistics card.
func (g *Generator) ImagesStats() models.ImagesStats {
	return models.ImagesStats{
		TotalImages:       g.intBetween(5000, 200000),
		UploadedThisWeek:  g.intBetween(10, 2000),
		PendingModeration: g.intBetween(0, 300),
		RejectedThisWeek:  g.intBetween(0, 80),
		StorageUsedMB:     g.intBetween(1024, 512000),
	}
}

// KpiMetrics generates the headline KPI card.
func (g *Generator) KpiMetrics() models.KpiMetrics {
	return models.KpiMetrics{
		RevenueCents:      int64(g.intBetween(1000000, 500000000)),
		RevenueGrowthPct:  g.floatBetween(-20, 60),
		BookingsCount:     g.intBetween(200, 20000),
		BookingsGrowthPct: g.floatBetween(-15, 50),
		ActiveUsers:       g.intBetween(1000, 250000),
		ChurnRatePct:      g.floatBetween(0.5, 12),
		ConversionRatePct: g.floatBetween(0.8, 9),
	}
}

// ReportsStats generates the report-generation statistics card.
func (g *Generator) ReportsStats() models.ReportsStats {
	generated := g.intBetween(5, 400)
	return models.ReportsStats{
		GeneratedThisMonth:   generated,
		Scheduled:            g.intBetween(0, 50),
		FailedThisMonth:      g.intBetween(0, generated/10+1),
		AvgGenerationSeconds: g.floatBetween(0.8, 90),
	}
}

// ReviewsStats generates the reviews statistics card.
func (g *Generator) ReviewsStats() models.ReviewsStats {
	return models.ReviewsStats{
		TotalReviews:    g.intBetween(500, 80000),
		AverageRating:   g.floatBetween(3.0, 4.9),
		FlaggedCount:    g.intBetween(0, 200),
		ResponseRatePct: g.floatBetween(20, 99),
		FiveStarShare:   g.floatBetween(0.2, 0.8),
	}
}

// StatisticsReport bundles every card; used by the export endpoint.
func (g *Generator) StatisticsReport() models.StatisticsReport {
	return models.StatisticsReport{
		Chats:     g.ChatStats(),
		Employees: g.EmployeesStats(),
		Images:    g.ImagesStats(),
		Kpi:       g.KpiMetrics(),
		Reports:   g.ReportsStats(),
		Reviews:   g.ReviewsStats(),
	}
}

// PaymentAccounts generates count payout accounts.
func (g *Generator) PaymentAccounts(count int) []models.PaymentAccount {
	out := make([]models.PaymentAccount, count)
	for i := range out {
		out[i] = models.PaymentAccount{
			ID:            g.id(),
			Provider:      g.pick(paymentProviders),
			AccountName:   g.pick(companyNames),
			AccountNumber: fmt.Sprintf("****%04d", g.intBetween(0, 9999)),
			Currency:      g.pick(currencies),
			Status:        g.pick(accountStatuses),
			CreatedAt:     g.recentTime(365),
		}
	}
	return out
}

// GuideBanners generates count ordered banners.
func (g *Generator) GuideBanners(count int) []models.GuideBanner {
	out := make([]models.GuideBanner, count)
	for i := range out {
		city := g.pick(cities)
		out[i] = models.GuideBanner{
			ID:        g.id(),
			Title:     city + " highlights",
			ImageURL:  fmt.Sprintf("https://cdn.voyago.dev/banners/%s.jpg", strings.ToLower(city)),
			TargetURL: fmt.Sprintf("https://voyago.dev/destinations/%s", strings.ToLower(city)),
			Order:     i + 1,
			Active:    g.r.Intn(5) != 0,
		}
	}
	return out
}

// AdvertisingPrices generates one price per distinct placement, count capped
// at the number of known placements.
func (g *Generator) AdvertisingPrices(count int) []models.AdvertisingPrice {
	if count > len(adPlacements) {
		count = len(adPlacements)
	}
	out := make([]models.AdvertisingPrice, count)
	for i := range out {
		out[i] = models.AdvertisingPrice{
			ID:         g.id(),
			Placement:  adPlacements[i],
			Price:      float64(g.intBetween(5, 500)),
			Currency:   "USD",
			PeriodDays: g.intBetween(7, 90),
			Active:     true,
			CreatedAt:  g.recentTime(180),
		}
	}
	return out
}

// SocialLinks generates count ordered social links.
func (g *Generator) SocialLinks(count int) []models.SocialLink {
	if count > len(socialPlatforms) {
		count = len(socialPlatforms)
	}
	out := make([]models.SocialLink, count)
	for i := range out {
		platform := socialPlatforms[i]
		out[i] = models.SocialLink{
			ID:       g.id(),
			Platform: platform,
			URL:      "https://" + platform + ".com/voyago",
			Label:    "@voyago",
			Order:    i + 1,
			Active:   true,
		}
	}
	return out
}

// ResetPasswordRequests generates count pending/resolved reset requests.
func (g *Generator) ResetPasswordRequests(count int) []models.ResetPasswordRequest {
	out := make([]models.ResetPasswordRequest, count)
	for i := range out {
		req := models.ResetPasswordRequest{
			ID:          g.id(),
			Email:       g.email(),
			Status:      models.ResetRequestPending,
			RequestedAt: g.recentTime(14),
		}
		if g.r.Intn(3) == 0 {
			resolved := req.RequestedAt.Add(time.Duration(g.intBetween(1, 72)) * time.Hour)
			req.Status = models.ResetRequestResolved
			req.ResolvedAt = &resolved
		}
		out[i] = req
	}
	return out
}

// ChatMessages generates count messages spread over a handful of
// conversations.
func (g *Generator) ChatMessages(count int) []models.ChatMessage {
	conversations := make([]string, 1+count/6)
	for i := range conversations {
		conversations[i] = g.id()
	}
	out := make([]models.ChatMessage, count)
	for i := range out {
		created := g.recentTime(7)
		out[i] = models.ChatMessage{
			ID:             g.id(),
			ConversationID: g.pick(conversations),
			Sender:         g.fullName(),
			Body:           g.pick(chatSnippets),
			IsRead:         g.r.Intn(2) == 0,
			CreatedAt:      created,
			UpdatedAt:      created,
		}
	}
	return out
}

// EnumGroups generates the fixed set of admin dropdown groups.
func (g *Generator) EnumGroups() []models.EnumGroup {
	desc := func(s string) *string { return &s }
	active := true
	return []models.EnumGroup{
		{
			Name:        "tour-category",
			Description: desc("Categories shown in the tour editor"),
			Values: []models.EnumValue{
				{Key: "food", Label: "Food & Drink", Value: "food", Active: &active},
				{Key: "culture", Label: "Culture & History", Value: "culture", Active: &active},
				{Key: "outdoor", Label: "Outdoor & Adventure", Value: "outdoor", Active: &active},
				{Key: "wellness", Label: "Wellness", Value: "wellness"},
			},
			Metadata:  map[string]string{"editable": "true"},
			UpdatedAt: g.recentTime(60),
		},
		{
			Name:        "payout-status",
			Description: desc("Lifecycle of a company payout"),
			Values: []models.EnumValue{
				{Key: "queued", Label: "Queued", Value: "queued"},
				{Key: "processing", Label: "Processing", Value: "processing"},
				{Key: "paid", Label: "Paid", Value: "paid"},
				{Key: "failed", Label: "Failed", Value: "failed"},
			},
			UpdatedAt: g.recentTime(60),
		},
		{
			Name: "ticket-priority",
			Values: []models.EnumValue{
				{Key: "low", Label: "Low", Value: "1"},
				{Key: "normal", Label: "Normal", Value: "2"},
				{Key: "high", Label: "High", Value: "3"},
				{Key: "urgent", Label: "Urgent", Value: "4"},
			},
			UpdatedAt: g.recentTime(60),
		},
	}
}
