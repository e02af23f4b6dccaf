package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminUser is a back-office operator account. The mock deployment seeds a
// single admin from configuration.
type AdminUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	PasswordHash string `json:"-"`
}

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int64     `json:"expiresIn"`
	IssuedAt    time.Time `json:"issuedAt"`
	User        AdminUser `json:"user"`
}

// JWTClaims are the claims embedded in issued access tokens.
type JWTClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
