package store

import (
	"sort"
	"sync"
	"time"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// ResetRequestStore holds user password-reset requests awaiting the back
// office.
type ResetRequestStore struct {
	mu    sync.Mutex
	items []models.ResetPasswordRequest
}

// NewResetRequestStore seeds the requests newest-first before any request runs.
func NewResetRequestStore(gen *fixture.Generator) *ResetRequestStore {
	items := gen.ResetPasswordRequests(fixture.DefaultResets)
	sort.Slice(items, func(i, j int) bool {
		return items[i].RequestedAt.After(items[j].RequestedAt)
	})
	return &ResetRequestStore{items: items}
}

// List returns requests newest-first.
func (s *ResetRequestStore) List() []models.ResetPasswordRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ResetPasswordRequest, len(s.items))
	copy(out, s.items)
	return out
}

// Resolve marks a request handled. Resolving twice is not an error; the
// second call returns the already-resolved request unchanged.
func (s *ResetRequestStore) Resolve(id string) (models.ResetPasswordRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].Status != models.ResetRequestResolved {
			now := time.Now().UTC()
			s.items[i].Status = models.ResetRequestResolved
			s.items[i].ResolvedAt = &now
		}
		return s.items[i], nil
	}
	return models.ResetPasswordRequest{}, appErrors.Clone(appErrors.ErrNotFound, "reset password request not found")
}
