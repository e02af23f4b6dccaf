package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/internal/store"
	"github.com/voyago/travel-admin-api/pkg/pagination"
)

// ChatService fronts the support-chat message collection.
type ChatService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewChatService(st *store.Store, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{store: st, logger: logger}
}

// Messages lists messages oldest-first, optionally for one conversation.
func (s *ChatService) Messages(ctx context.Context, conversationID string, params pagination.Params) (pagination.Page[models.ChatMessage], error) {
	return pagination.Paginate(s.store.Chats.List(conversationID), params)
}

// MarkRead flags a message read. Safe to call repeatedly.
func (s *ChatService) MarkRead(ctx context.Context, id string) (models.ChatMessage, error) {
	msg, err := s.store.Chats.MarkRead(id)
	if err != nil {
		return models.ChatMessage{}, err
	}
	s.logger.Debug("chat message marked read", zap.String("id", id))
	return msg, nil
}
