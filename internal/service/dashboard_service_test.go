package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardServiceSeededRequestsAreReproducible(t *testing.T) {
	svc := NewDashboardService(nil, 0, nil, nil)
	opts := FixtureOptions{Seed: 42, Count: 5}

	first, hit, err := svc.Bookings(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, hit)
	second, _, err := svc.Bookings(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDashboardServiceCountIsCapped(t *testing.T) {
	svc := NewDashboardService(nil, 0, nil, nil)

	bookings, _, err := svc.Bookings(context.Background(), FixtureOptions{Seed: 1, Count: 5000})
	require.NoError(t, err)
	assert.Len(t, bookings, maxFixtureCount)
}

func TestDashboardServiceDefaultCount(t *testing.T) {
	svc := NewDashboardService(nil, 0, nil, nil)

	insights, _, err := svc.TrendingInsights(context.Background(), FixtureOptions{Seed: 1})
	require.NoError(t, err)
	assert.Len(t, insights, 4)
}

func TestDashboardServiceNilCacheNeverHits(t *testing.T) {
	svc := NewDashboardService(nil, 0, nil, nil)

	_, hit, err := svc.CompanyOverview(context.Background(), FixtureOptions{})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDashboardServiceOverviewCountsAddUp(t *testing.T) {
	svc := NewDashboardService(nil, 0, nil, nil)

	overview, _, err := svc.CompanyOverview(context.Background(), FixtureOptions{Seed: 9})
	require.NoError(t, err)
	assert.Equal(t, overview.TotalCompanies, overview.ActiveCompanies+overview.PendingVerification+overview.SuspendedCompanies)
}
