package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// SocialLinkStore holds the platform's social media links.
type SocialLinkStore struct {
	mu    sync.Mutex
	items []models.SocialLink
}

// NewSocialLinkStore seeds the links before any request runs.
func NewSocialLinkStore(gen *fixture.Generator) *SocialLinkStore {
	return &SocialLinkStore{items: gen.SocialLinks(fixture.DefaultSocialLinks)}
}

// List returns links in display order.
func (s *SocialLinkStore) List() []models.SocialLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.SocialLink, len(s.items))
	copy(out, s.items)
	return out
}

// Create appends a link with a fresh ID at the end of the display order.
func (s *SocialLinkStore) Create(link models.SocialLink) models.SocialLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	link.ID = uuid.NewString()
	link.Order = len(s.items) + 1
	s.items = append(s.items, link)
	return link
}

// Update patches the named link, keeping its position.
func (s *SocialLinkStore) Update(id string, patch models.SocialLink) (models.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		patch.ID = id
		patch.Order = s.items[i].Order
		s.items[i] = patch
		return s.items[i], nil
	}
	return models.SocialLink{}, appErrors.Clone(appErrors.ErrNotFound, "social link not found")
}

// Remove deletes the named link, reporting whether it existed.
func (s *SocialLinkStore) Remove(id string) bool {
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

// Reorder works like BannerStore.Reorder.
func (s *SocialLinkStore) Reorder(orderedIDs []string) ([]models.SocialLink, error) {
	if len(orderedIDs) == 0 {
		return nil, appErrors.ErrEmptyOrderList
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = reorderByID(s.items, orderedIDs, func(l models.SocialLink) string { return l.ID })
	for i := range s.items {
		s.items[i].Order = i + 1
	}

	out := make([]models.SocialLink, len(s.items))
	copy(out, s.items)
	return out, nil
}
