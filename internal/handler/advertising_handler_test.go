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

type advertisingServiceMock struct {
	prices    []models.AdvertisingPrice
	createErr error
	deleteErr error
}

func (m *advertisingServiceMock) AdvertisingPrices(ctx context.Context) []models.AdvertisingPrice {
	return m.prices
}

func (m *advertisingServiceMock) CreateAdvertisingPrice(ctx context.Context, req service.CreatePriceRequest) (models.AdvertisingPrice, error) {
	if m.createErr != nil {
		return models.AdvertisingPrice{}, m.createErr
	}
	return models.AdvertisingPrice{ID: "p1", Placement: req.Placement, Price: *req.Price}, nil
}

func (m *advertisingServiceMock) UpdateAdvertisingPrice(ctx context.Context, id string, req service.CreatePriceRequest) (models.AdvertisingPrice, error) {
	return models.AdvertisingPrice{ID: id, Placement: req.Placement, Price: *req.Price}, nil
}

func (m *advertisingServiceMock) DeleteAdvertisingPrice(ctx context.Context, id string) error {
	return m.deleteErr
}

func TestAdvertisingHandlerCreateEchoesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAdvertisingHandler(&advertisingServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	price := 49.99
	body, _ := json.Marshal(service.CreatePriceRequest{Placement: "homepage-hero", Price: &price})
	req, _ := http.NewRequest(http.MethodPost, "/site-settings/advertising/prices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Data models.AdvertisingPrice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "homepage-hero", env.Data.Placement)
	assert.InDelta(t, 49.99, env.Data.Price, 0.001)
}

func TestAdvertisingHandlerCreateMissingPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAdvertisingHandler(&advertisingServiceMock{createErr: appErrors.ErrValidation})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := []byte(`{"placement":"homepage-hero"}`)
	req, _ := http.NewRequest(http.MethodPost, "/site-settings/advertising/prices", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, env.Error.Code)
}

func TestAdvertisingHandlerDeleteUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAdvertisingHandler(&advertisingServiceMock{deleteErr: appErrors.ErrNotFound})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/site-settings/advertising/prices/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdvertisingHandlerDeleteReturns204(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAdvertisingHandler(&advertisingServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/site-settings/advertising/prices/p1", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "p1"}}

	handler.Delete(c)
	// Outside a full engine run nothing flushes the deferred status header,
	// so mimic what gin does after the handler chain returns.
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
}
