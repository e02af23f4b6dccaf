package store

import (
	"sort"
	"sync"
	"time"

	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

// ChatStore holds the support-chat messages.
type ChatStore struct {
	mu    sync.Mutex
	items []models.ChatMessage
}

// NewChatStore seeds the collection oldest-first before any request runs.
func NewChatStore(gen *fixture.Generator) *ChatStore {
	items := gen.ChatMessages(fixture.DefaultMessages)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return &ChatStore{items: items}
}

// List returns messages oldest-first, optionally limited to one conversation.
func (s *ChatStore) List(conversationID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, 0, len(s.items))
	for _, msg := range s.items {
		if conversationID != "" && msg.ConversationID != conversationID {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// MarkRead flags a message as read and bumps UpdatedAt. Marking an
// already-read message succeeds and returns it with IsRead still true.
func (s *ChatStore) MarkRead(id string) (models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].IsRead = true
		s.items[i].UpdatedAt = time.Now().UTC()
		return s.items[i], nil
	}
	return models.ChatMessage{}, appErrors.Clone(appErrors.ErrNotFound, "chat message not found")
}
