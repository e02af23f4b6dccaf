package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/internal/store"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/pagination"
)

func newTestSettingsService() *SiteSettingsService {
	gen := fixture.NewAt(42, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewSiteSettingsService(store.New(gen), nil, nil)
}

func TestSiteSettingsPaymentAccountsPaginated(t *testing.T) {
	svc := newTestSettingsService()

	page, err := svc.PaymentAccounts(context.Background(), models.PaymentAccountFilter{}, pagination.Params{Page: 1, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, fixture.DefaultAccounts, page.Total)
}

func TestSiteSettingsCreatePriceRequiresPrice(t *testing.T) {
	svc := newTestSettingsService()

	_, err := svc.CreateAdvertisingPrice(context.Background(), CreatePriceRequest{Placement: "homepage-hero"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSiteSettingsCreatePriceDefaultsCurrency(t *testing.T) {
	svc := newTestSettingsService()

	price := 19.5
	created, err := svc.CreateAdvertisingPrice(context.Background(), CreatePriceRequest{
		Placement: "search-results",
		Price:     &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", created.Currency)
	assert.NotEmpty(t, created.ID)
	assert.InDelta(t, 19.5, created.Price, 0.001)
}

func TestSiteSettingsCreateEnumGroupRejectsDuplicateKeys(t *testing.T) {
	svc := newTestSettingsService()

	_, err := svc.CreateEnumGroup(context.Background(), CreateEnumGroupRequest{
		Name: "refund-policy",
		Values: []CreateEnumValuePayload{
			{Key: "full", Label: "Full refund", Value: "full"},
			{Key: "full", Label: "Duplicate", Value: "partial"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSiteSettingsCreateEnumGroupRequiresValues(t *testing.T) {
	svc := newTestSettingsService()

	_, err := svc.CreateEnumGroup(context.Background(), CreateEnumGroupRequest{Name: "empty-group"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSiteSettingsReorderBannersEmptyList(t *testing.T) {
	svc := newTestSettingsService()

	_, err := svc.ReorderGuideBanners(context.Background(), ReorderRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmptyOrderList.Code, appErrors.FromError(err).Code)
}

func TestSiteSettingsSocialLinkLifecycle(t *testing.T) {
	svc := newTestSettingsService()

	created, err := svc.CreateSocialLink(context.Background(), UpsertSocialLinkRequest{
		Platform: "mastodon",
		URL:      "https://mastodon.social/@voyago",
		Active:   true,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateSocialLink(context.Background(), created.ID, UpsertSocialLinkRequest{
		Platform: "mastodon",
		URL:      "https://mastodon.social/@voyago_travel",
		Active:   false,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "https://mastodon.social/@voyago_travel", updated.URL)

	require.NoError(t, svc.DeleteSocialLink(context.Background(), created.ID))
	err = svc.DeleteSocialLink(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSiteSettingsCreateSocialLinkRejectsBadURL(t *testing.T) {
	svc := newTestSettingsService()

	_, err := svc.CreateSocialLink(context.Background(), UpsertSocialLinkRequest{
		Platform: "x",
		URL:      "not-a-url",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSiteSettingsResolveResetRequestIsRepeatable(t *testing.T) {
	svc := newTestSettingsService()

	page, err := svc.ResetPasswordRequests(context.Background(), pagination.Params{Page: 1, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	id := page.Items[0].ID

	first, err := svc.ResolveResetPasswordRequest(context.Background(), id)
	require.NoError(t, err)
	second, err := svc.ResolveResetPasswordRequest(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
}
