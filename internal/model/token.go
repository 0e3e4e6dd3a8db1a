package model

import "github.com/google/uuid"

// TokenClaims is the payload carried by a signed bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	SessionID string
}

// TokenManager signs and verifies self-contained bearer tokens. Access and
// refresh tokens use distinct secrets; verification is purely stateless.
type TokenManager interface {
	SignAccessToken(claims TokenClaims) (string, error)
	SignRefreshToken(claims TokenClaims) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
	VerifyRefreshToken(token string) (TokenClaims, error)
	AccessTokenTTLSeconds() int
	RefreshTokenTTLSeconds() int
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresIn  int
	RefreshTokenExpiresIn int
}
