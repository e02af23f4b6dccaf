package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/pagination"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type chatServiceMock struct {
	messages     []models.ChatMessage
	markReadErr  error
	markReadHits int
	lastConvID   string
}

func (m *chatServiceMock) Messages(ctx context.Context, conversationID string, params pagination.Params) (pagination.Page[models.ChatMessage], error) {
	m.lastConvID = conversationID
	return pagination.Paginate(m.messages, params)
}

func (m *chatServiceMock) MarkRead(ctx context.Context, id string) (models.ChatMessage, error) {
	m.markReadHits++
	if m.markReadErr != nil {
		return models.ChatMessage{}, m.markReadErr
	}
	return models.ChatMessage{ID: id, IsRead: true, UpdatedAt: time.Now()}, nil
}

func TestChatHandlerListPassesConversationFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &chatServiceMock{messages: []models.ChatMessage{{ID: "m1", ConversationID: "c1"}}}
	handler := NewChatHandler(mock)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/chats/messages?conversationId=c1", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", mock.lastConvID)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.TotalCount)
}

func TestChatHandlerListRejectsNonPositivePageSize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewChatHandler(&chatServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/chats/messages?pageSize=0", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrInvalidPageSize.Code, env.Error.Code)
}

func TestChatHandlerMarkReadIsRepeatable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &chatServiceMock{}
	handler := NewChatHandler(mock)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req, _ := http.NewRequest(http.MethodPost, "/chats/m1/read", nil)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "m1"}}

		handler.MarkRead(c)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, mock.markReadHits)
}

func TestChatHandlerMarkReadUnknownMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewChatHandler(&chatServiceMock{markReadErr: appErrors.ErrNotFound})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/chats/missing/read", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.MarkRead(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
