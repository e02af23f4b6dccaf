package store

import (
	"sync"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// BannerStore holds the guide-app promotional banners.
type BannerStore struct {
	mu    sync.Mutex
	items []models.GuideBanner
}

// NewBannerStore seeds the banners before any request runs.
func NewBannerStore(gen *fixture.Generator) *BannerStore {
	return &BannerStore{items: gen.GuideBanners(fixture.DefaultBanners)}
}

// List returns banners in display order.
func (s *BannerStore) List() []models.GuideBanner {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.GuideBanner, len(s.items))
	copy(out, s.items)
	return out
}

// Reorder moves the named banners to the front in the given order; banners
// not named keep their prior relative order behind them. Every banner gets a
// fresh 1-based Order. An empty orderedIDs is an error, never a silent no-op.
func (s *BannerStore) Reorder(orderedIDs []string) ([]models.GuideBanner, error) {
	if len(orderedIDs) == 0 {
		return nil, appErrors.ErrEmptyOrderList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = reorderByID(s.items, orderedIDs, func(b models.GuideBanner) string { return b.ID })
	for i := range s.items {
		s.items[i].Order = i + 1
	}

	out := make([]models.GuideBanner, len(s.items))
	copy(out, s.items)
	return out, nil
}
