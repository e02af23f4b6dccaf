package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// PriceStore holds the advertising placement prices.
type PriceStore struct {
	mu    sync.Mutex
	items []models.AdvertisingPrice
}

// NewPriceStore seeds the prices before any request runs.
func NewPriceStore(gen *fixture.Generator) *PriceStore {
	return &PriceStore{items: gen.AdvertisingPrices(fixture.DefaultPrices)}
}

// List returns all prices.
func (s *PriceStore) List() []models.AdvertisingPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AdvertisingPrice, len(s.items))
	copy(out, s.items)
	return out
}

// Create appends a price with a fresh ID. Placement and price validity is the
// caller's job; the store only owns identity and ordering.
func (s *PriceStore) Create(price models.AdvertisingPrice) models.AdvertisingPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	price.ID = uuid.NewString()
	price.CreatedAt = time.Now().UTC()
	s.items = append(s.items, price)
	return price
}

// Update patches the named price.
func (s *PriceStore) Update(id string, patch models.AdvertisingPrice) (models.AdvertisingPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		patch.ID = id
		patch.CreatedAt = s.items[i].CreatedAt
		s.items[i] = patch
		return s.items[i], nil
	}
	return models.AdvertisingPrice{}, appErrors.Clone(appErrors.ErrNotFound, "advertising price not found")
}

// Remove deletes the named price, reporting whether it existed.
func (s *PriceStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
