package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

func newTestStore() *Store {
	return New(fixture.NewAt(42, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestFreshStoreHandlesConcurrentFirstRequests(t *testing.T) {
	// All collections share one generator, which owns a rand.Rand that is
	// not safe for concurrent use. Seeding happens in New, so concurrent
	// first requests across collections must be race-free (verified under
	// the race detector).
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.PaymentAccounts.List(models.PaymentAccountFilter{})
			_ = s.Chats.List("")
			_ = s.Banners.List()
			_ = s.Enums.List()
			_ = s.Prices.List()
			_ = s.SocialLinks.List()
			_ = s.ResetRequests.List()
		}()
	}
	wg.Wait()

	assert.Len(t, s.PaymentAccounts.List(models.PaymentAccountFilter{}), fixture.DefaultAccounts)
	assert.Len(t, s.Chats.List(""), fixture.DefaultMessages)
}

func TestListsAreStableAcrossCalls(t *testing.T) {
	s := newTestStore()

	first := s.PaymentAccounts.List(models.PaymentAccountFilter{})
	second := s.PaymentAccounts.List(models.PaymentAccountFilter{})
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)

	groups := s.Enums.List()
	assert.Equal(t, groups, s.Enums.List())
}

func TestPaymentAccountFilter(t *testing.T) {
	s := newTestStore()
	all := s.PaymentAccounts.List(models.PaymentAccountFilter{})

	provider := all[0].Provider
	filtered := s.PaymentAccounts.List(models.PaymentAccountFilter{Provider: provider})
	require.NotEmpty(t, filtered)
	for _, acc := range filtered {
		assert.Equal(t, provider, acc.Provider)
	}

	bySearch := s.PaymentAccounts.List(models.PaymentAccountFilter{Search: all[0].AccountName[:4]})
	assert.NotEmpty(t, bySearch)
}

func TestPaymentAccountFindByID(t *testing.T) {
	s := newTestStore()
	all := s.PaymentAccounts.List(models.PaymentAccountFilter{})

	found, err := s.PaymentAccounts.FindByID(all[2].ID)
	require.NoError(t, err)
	assert.Equal(t, all[2], *found)

	_, err = s.PaymentAccounts.FindByID("missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestBannerReorderEmptyListFails(t *testing.T) {
	s := newTestStore()
	_, err := s.Banners.Reorder(nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmptyOrderList.Code, appErrors.FromError(err).Code)
}

func TestBannerReorderPartialKeepsRelativeOrder(t *testing.T) {
	s := newTestStore()
	before := s.Banners.List()
	require.GreaterOrEqual(t, len(before), 4)

	// Move the last banner to the front; everyone else keeps their order.
	last := before[len(before)-1]
	after, err := s.Banners.Reorder([]string{last.ID})
	require.NoError(t, err)

	assert.Equal(t, last.ID, after[0].ID)
	for i, banner := range before[:len(before)-1] {
		assert.Equal(t, banner.ID, after[i+1].ID)
	}
	for i, banner := range after {
		assert.Equal(t, i+1, banner.Order)
	}
}

func TestBannerReorderSkipsUnknownIDs(t *testing.T) {
	s := newTestStore()
	before := s.Banners.List()

	after, err := s.Banners.Reorder([]string{"ghost", before[1].ID})
	require.NoError(t, err)
	assert.Len(t, after, len(before))
	assert.Equal(t, before[1].ID, after[0].ID)
}

func TestEnumRemoveValueDistinguishesMisses(t *testing.T) {
	s := newTestStore()
	groups := s.Enums.List()
	require.NotEmpty(t, groups)

	_, err := s.Enums.RemoveValue("nonexistent-group", "k")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrGroupNotFound.Code, appErrors.FromError(err).Code)

	_, err = s.Enums.RemoveValue(groups[0].Name, "nonexistent-key")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValueNotFound.Code, appErrors.FromError(err).Code)
}

func TestEnumRemoveValueDeletes(t *testing.T) {
	s := newTestStore()
	groups := s.Enums.List()
	target := groups[0]
	key := target.Values[0].Key

	updated, err := s.Enums.RemoveValue(target.Name, key)
	require.NoError(t, err)
	assert.Len(t, updated.Values, len(target.Values)-1)
	for _, v := range updated.Values {
		assert.NotEqual(t, key, v.Key)
	}
}

func TestEnumCreateRejectsDuplicateKeys(t *testing.T) {
	s := newTestStore()
	_, err := s.Enums.Create(models.EnumGroup{
		Name: "booking-channel",
		Values: []models.EnumValue{
			{Key: "web", Label: "Web", Value: "web"},
			{Key: "web", Label: "Web again", Value: "web2"},
		},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEnumCreateRejectsDuplicateGroupName(t *testing.T) {
	s := newTestStore()
	existing := s.Enums.List()[0].Name
	_, err := s.Enums.Create(models.EnumGroup{
		Name:   existing,
		Values: []models.EnumValue{{Key: "x", Label: "X", Value: "x"}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPriceCreateUpdateRemove(t *testing.T) {
	s := newTestStore()

	created := s.Prices.Create(models.AdvertisingPrice{Placement: "sidebar", Price: 10, Currency: "USD", Active: true})
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "sidebar", created.Placement)
	assert.Equal(t, 10.0, created.Price)

	updated, err := s.Prices.Update(created.ID, models.AdvertisingPrice{Placement: "sidebar", Price: 25, Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	assert.True(t, s.Prices.Remove(created.ID))
	assert.False(t, s.Prices.Remove(created.ID))

	_, err = s.Prices.Update("missing", models.AdvertisingPrice{})
	require.Error(t, err)
}

func TestResetRequestResolveIsIdempotent(t *testing.T) {
	s := newTestStore()
	reqs := s.ResetRequests.List()

	var pending models.ResetPasswordRequest
	for _, r := range reqs {
		if r.Status == models.ResetRequestPending {
			pending = r
			break
		}
	}
	require.NotEmpty(t, pending.ID)

	first, err := s.ResetRequests.Resolve(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ResetRequestResolved, first.Status)
	require.NotNil(t, first.ResolvedAt)

	second, err := s.ResetRequests.Resolve(pending.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ResolvedAt, second.ResolvedAt)
}

func TestChatMarkReadIsIdempotent(t *testing.T) {
	s := newTestStore()
	msgs := s.Chats.List("")
	require.NotEmpty(t, msgs)

	first, err := s.Chats.MarkRead(msgs[0].ID)
	require.NoError(t, err)
	assert.True(t, first.IsRead)

	second, err := s.Chats.MarkRead(msgs[0].ID)
	require.NoError(t, err)
	assert.True(t, second.IsRead)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestChatMarkReadMissing(t *testing.T) {
	s := newTestStore()
	_, err := s.Chats.MarkRead("missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestChatListFiltersByConversation(t *testing.T) {
	s := newTestStore()
	msgs := s.Chats.List("")
	conv := msgs[0].ConversationID

	filtered := s.Chats.List(conv)
	require.NotEmpty(t, filtered)
	for _, m := range filtered {
		assert.Equal(t, conv, m.ConversationID)
	}
	assert.Less(t, len(filtered), len(msgs)+1)
}

func TestSocialLinkCreateAppendsAtEnd(t *testing.T) {
	s := newTestStore()
	before := s.SocialLinks.List()

	created := s.SocialLinks.Create(models.SocialLink{Platform: "mastodon", URL: "https://mastodon.social/@voyago"})
	assert.Equal(t, len(before)+1, created.Order)

	after := s.SocialLinks.List()
	assert.Equal(t, created.ID, after[len(after)-1].ID)
}
