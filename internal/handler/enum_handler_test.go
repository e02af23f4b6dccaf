package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-admin-api/internal/models"
	"github.com/voyago/travel-admin-api/internal/service"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
	"github.com/voyago/travel-admin-api/pkg/response"
)

type enumServiceMock struct {
	groups    []models.EnumGroup
	createErr error
	removeErr error
}

func (m *enumServiceMock) EnumGroups(ctx context.Context) []models.EnumGroup {
	return m.groups
}

func (m *enumServiceMock) CreateEnumGroup(ctx context.Context, req service.CreateEnumGroupRequest) (models.EnumGroup, error) {
	if m.createErr != nil {
		return models.EnumGroup{}, m.createErr
	}
	return models.EnumGroup{Name: req.Name}, nil
}

func (m *enumServiceMock) RemoveEnumValue(ctx context.Context, groupName, valueKey string) (models.EnumGroup, error) {
	if m.removeErr != nil {
		return models.EnumGroup{}, m.removeErr
	}
	return models.EnumGroup{Name: groupName}, nil
}

func TestEnumHandlerCreateReturns201(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnumHandler(&enumServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.CreateEnumGroupRequest{
		Name:   "tour-category",
		Values: []service.CreateEnumValuePayload{{Key: "adventure", Label: "Adventure", Value: "adventure"}},
	})
	req, _ := http.NewRequest(http.MethodPost, "/site-settings/enums", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Data)
}

func TestEnumHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnumHandler(&enumServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/site-settings/enums", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnumHandlerRemoveValueDecodesParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnumHandler(&enumServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/site-settings/enums/tour%20types/values/city%20break", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "name", Value: "tour%20types"}, {Key: "valueKey", Value: "city%20break"}}

	handler.RemoveValue(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEnumHandlerRemoveValueDistinguishesMissingGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewEnumHandler(&enumServiceMock{removeErr: appErrors.ErrGroupNotFound})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/site-settings/enums/missing/values/key", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "name", Value: "missing"}, {Key: "valueKey", Value: "key"}}

	handler.RemoveValue(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "GROUP_NOT_FOUND", env.Error.Code)
}
