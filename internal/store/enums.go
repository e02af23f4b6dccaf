package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// EnumStore holds the admin dropdown enum groups.
type EnumStore struct {
	mu     sync.Mutex
	groups []models.EnumGroup
}

// NewEnumStore seeds the groups before any request runs.
func NewEnumStore(gen *fixture.Generator) *EnumStore {
	return &EnumStore{groups: gen.EnumGroups()}
}

// List returns a copy of every group.
func (s *EnumStore) List() []models.EnumGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.EnumGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

// Create appends a new group. Group names are unique and value keys must be
// unique within the group.
func (s *EnumStore) Create(group models.EnumGroup) (models.EnumGroup, error) {
	if group.Name == "" {
		return models.EnumGroup{}, appErrors.Clone(appErrors.ErrValidation, "enum group name is required")
	}
	seen := make(map[string]bool, len(group.Values))
	for _, v := range group.Values {
		if v.Key == "" {
			return models.EnumGroup{}, appErrors.Clone(appErrors.ErrValidation, "enum value key is required")
		}
		if seen[v.Key] {
			return models.EnumGroup{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("duplicate enum value key %q", v.Key))
		}
		seen[v.Key] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.groups {
		if existing.Name == group.Name {
			return models.EnumGroup{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("enum group %q already exists", group.Name))
		}
	}

	group.UpdatedAt = time.Now().UTC()
	s.groups = append(s.groups, group)
	return group, nil
}

// RemoveValue deletes one value key from a group. A missing group and a
// missing key inside an existing group fail with distinct errors.
func (s *EnumStore) RemoveValue(groupName, valueKey string) (models.EnumGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for gi := range s.groups {
		if s.groups[gi].Name != groupName {
			continue
		}
		for vi, v := range s.groups[gi].Values {
			if v.Key == valueKey {
				s.groups[gi].Values = append(s.groups[gi].Values[:vi], s.groups[gi].Values[vi+1:]...)
				s.groups[gi].UpdatedAt = time.Now().UTC()
				return s.groups[gi], nil
			}
		}
		return models.EnumGroup{}, appErrors.Clone(appErrors.ErrValueNotFound, fmt.Sprintf("value %q not found in enum group %q", valueKey, groupName))
	}
	return models.EnumGroup{}, appErrors.Clone(appErrors.ErrGroupNotFound, fmt.Sprintf("enum group %q not found", groupName))
}
