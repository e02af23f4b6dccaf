package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-admin-api/internal/models"
	appErrors "github.com/voyago/travel-admin-api/pkg/errors"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(nil, nil, AuthConfig{
		Secret:     "test_secret",
		Expiration: time.Hour,
		Issuer:     "travel-admin-api",
		AdminEmail: "admin@voyago.dev",
		AdminPass:  "admin123",
	})
	require.NoError(t, err)
	return svc
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "Admin@Voyago.dev",
		Password: "admin123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@voyago.dev", claims.Email)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@voyago.dev",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "someone@else.dev",
		Password: "admin123",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginRejectsEmptyPayload(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenWrongSecret(t *testing.T) {
	svc := newTestAuthService(t)
	other, err := NewAuthService(nil, nil, AuthConfig{
		Secret:     "different_secret",
		Expiration: time.Hour,
		AdminEmail: "admin@voyago.dev",
		AdminPass:  "admin123",
	})
	require.NoError(t, err)

	resp, err := other.Login(context.Background(), models.LoginRequest{
		Email:    "admin@voyago.dev",
		Password: "admin123",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	assert.Error(t, err)
}
