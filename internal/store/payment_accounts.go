package store

import (
	"strings"
	"sync"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// PaymentAccountStore is the read-only payout-account collection.
type PaymentAccountStore struct {
	mu    sync.Mutex
	items []models.PaymentAccount
}

// NewPaymentAccountStore seeds the collection. Seeding happens here, before
// any request can touch the store, because the generator's rand.Rand is not
// safe for concurrent use.
func NewPaymentAccountStore(gen *fixture.Generator) *PaymentAccountStore {
	return &PaymentAccountStore{items: gen.PaymentAccounts(fixture.DefaultAccounts)}
}

// List returns accounts matching the filter, in seed order.
func (s *PaymentAccountStore) List(filter models.PaymentAccountFilter) []models.PaymentAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.PaymentAccount, 0, len(s.items))
	for _, acc := range s.items {
		if filter.Provider != "" && acc.Provider != filter.Provider {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(acc.AccountName), search) &&
			!strings.Contains(strings.ToLower(acc.AccountNumber), search) {
			continue
		}
		out = append(out, acc)
	}
	return out
}

// FindByID returns the account or a NOT_FOUND error.
func (s *PaymentAccountStore) FindByID(id string) (*models.PaymentAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.items {
		if acc.ID == id {
			found := acc
			return &found, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "payment account not found")
}
