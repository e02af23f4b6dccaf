package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
)

// FixtureOptions carry the per-request generation knobs parsed from the query
// string. Seed 0 means fresh randomness on every call; Count 0 means the
// widget's default size.
type FixtureOptions struct {
	Seed  int64
	Count int
}

// maxFixtureCount caps the count query parameter so a request cannot ask for
// an absurd payload.
const maxFixtureCount = 100

func (o FixtureOptions) count(fallback int) int {
	if o.Count <= 0 {
		return fallback
	}
	if o.Count > maxFixtureCount {
		return maxFixtureCount
	}
	return o.Count
}

// DashboardService serves freshly generated widget data, optionally cached in
// Redis for a short TTL. Seeded requests bypass the cache since they are
// already reproducible.
type DashboardService struct {
	cache   *redis.Client
	ttl     time.Duration
	metrics *MetricsService
	logger  *zap.Logger
}

// NewDashboardService constructs the service. cache may be nil, which
// disables caching entirely; metrics may be nil too.
func NewDashboardService(cache *redis.Client, ttl time.Duration, metrics *MetricsService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{cache: cache, ttl: ttl, metrics: metrics, logger: logger}
}

// fromCache loads a cached payload into out, reporting a hit. Cache errors
// degrade to a miss.
func (s *DashboardService) fromCache(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		s.metrics.RecordCacheLookup(false)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("corrupt dashboard cache entry", zap.String("key", key), zap.Error(err))
		s.metrics.RecordCacheLookup(false)
		return false
	}
	s.metrics.RecordCacheLookup(true)
	return true
}

func (s *DashboardService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to write dashboard cache", zap.String("key", key), zap.Error(err))
	}
}

// Bookings returns recent-booking rows and whether they came from cache.
func (s *DashboardService) Bookings(ctx context.Context, opts FixtureOptions) ([]models.Booking, bool, error) {
	n := opts.count(fixture.DefaultBookings)
	key := fmt.Sprintf("dashboard:bookings:%d", n)
	if opts.Seed == 0 {
		var cached []models.Booking
		if s.fromCache(ctx, key, &cached) {
			return cached, true, nil
		}
	}
	out := fixture.New(opts.Seed).Bookings(n)
	s.metrics.CountFixtureRecords("bookings", n)
	if opts.Seed == 0 {
		s.writeCache(ctx, key, out)
	}
	return out, false, nil
}

// Notifications returns the admin notification feed.
func (s *DashboardService) Notifications(ctx context.Context, opts FixtureOptions) ([]models.AdminNotification, bool, error) {
	n := opts.count(fixture.DefaultNotifications)
	key := fmt.Sprintf("dashboard:notifications:%d", n)
	if opts.Seed == 0 {
		var cached []models.AdminNotification
		if s.fromCache(ctx, key, &cached) {
			return cached, true, nil
		}
	}
	out := fixture.New(opts.Seed).AdminNotifications(n)
	s.metrics.CountFixtureRecords("notifications", n)
	if opts.Seed == 0 {
		s.writeCache(ctx, key, out)
	}
	return out, false, nil
}

// Announcements returns platform announcements.
func (s *DashboardService) Announcements(ctx context.Context, opts FixtureOptions) ([]models.Announcement, bool, error) {
	n := opts.count(fixture.DefaultAnnouncements)
	key := fmt.Sprintf("dashboard:announcements:%d", n)
	if opts.Seed == 0 {
		var cached []models.Announcement
		if s.fromCache(ctx, key, &cached) {
			return cached, true, nil
		}
	}
	out := fixture.New(opts.Seed).Announcements(n)
	s.metrics.CountFixtureRecords("announcements", n)
	if opts.Seed == 0 {
		s.writeCache(ctx, key, out)
	}
	return out, false, nil
}

// PendingActions returns the administrator work queue.
func (s *DashboardService) PendingActions(ctx context.Context, opts FixtureOptions) ([]models.PendingAction, bool, error) {
	n := opts.count(fixture.DefaultActions)
	key := fmt.Sprintf("dashboard:pending-actions:%d", n)
	if opts.Seed == 0 {
		var cached []models.PendingAction
		if s.fromCache(ctx, key, &cached) {
			return cached, true, nil
		}
	}
	out := fixture.New(opts.Seed).PendingActions(n)
	s.metrics.CountFixtureRecords("pending-actions", n)
	if opts.Seed == 0 {
		s.writeCache(ctx, key, out)
	}
	return out, false, nil
}

// RecentActivity returns the audit-style activity feed.
func (s *DashboardService) RecentActivity(ctx context.Context, opts FixtureOptions) ([]models.RecentActivity, bool, error) {
	n := opts.count(fixture.DefaultActivities)
	key := fmt.Sprintf("dashboard:recent-activity:%d", n)
	if opts.Seed == 0 {
		var cached []models.RecentActivity
		if s.fromCache(ctx, key, &cached) {
			return cached, true, nil
		}
	}
	out := fixture.New(opts.Seed).RecentActivities(n)
	s.metrics.CountFixtureRecords("recent-activity", n)
	if opts.Seed == 0 {
		s.writeCache(ctx, key, out)
	}
	return out, false, nil
}

// TrendingInsights returns generated analytics teasers.
func (s *DashboardService) TrendingInsights(ctx context.Context, opts FixtureOptions) ([]models.TrendingInsight, bool, error) {
	n := opts.count(fixture.DefaultInsights)
	key := fmt.Sprintf("dashboard:trending-insights:%d", n)
	if opts.Seed == 0 {
		var cached []models.TrendingInsight
		if s.fromCache(ctx, key, &cached) {
			return cached, true, nil
		}
	}
	out := fixture.New(opts.Seed).TrendingInsights(n)
	s.metrics.CountFixtureRecords("trending-insights", n)
	if opts.Seed == 0 {
		s.writeCache(ctx, key, out)
	}
	return out, false, nil
}

// CompanyOverview returns the aggregate company card.
func (s *DashboardService) CompanyOverview(ctx context.Context, opts FixtureOptions) (models.CompanyOverview, bool, error) {
	key := "dashboard:company-overview"
	if opts.Seed == 0 {
		var cached models.CompanyOverview
		if s.fromCache(ctx, key, &cached) {
			return cached, true, nil
		}
	}
	out := fixture.New(opts.Seed).CompanyOverview()
	s.metrics.CountFixtureRecords("company-overview", 1)
	if opts.Seed == 0 {
		s.writeCache(ctx, key, out)
	}
	return out, false, nil
}
