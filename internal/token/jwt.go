package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/model"
)

// Claims represents JWT claims with token type, user ID and username. The
// session identifier travels as the registered JWT ID (jti).
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"typ"`
}

// JWT implements model.TokenManager backed by symmetric HMAC. Access and
// refresh tokens are signed with distinct secrets so one can never be
// presented in place of the other.
type JWT struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// NewJWT creates a new JWT token manager with the provided secrets and TTLs.
func NewJWT(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWT {
	return &JWT{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

var _ model.TokenManager = (*JWT)(nil)

// SignAccessToken creates a short-lived access token.
func (j *JWT) SignAccessToken(claims model.TokenClaims) (string, error) {
	return j.sign(claims, typeAccess, j.accessSecret, j.accessTTL)
}

// SignRefreshToken creates a longer-lived refresh token.
func (j *JWT) SignRefreshToken(claims model.TokenClaims) (string, error) {
	return j.sign(claims, typeRefresh, j.refreshSecret, j.refreshTTL)
}

// VerifyAccessToken validates an access token and extracts its claims.
func (j *JWT) VerifyAccessToken(tokenString string) (model.TokenClaims, error) {
	return j.verify(tokenString, typeAccess, j.accessSecret)
}

// VerifyRefreshToken validates a refresh token and extracts its claims.
func (j *JWT) VerifyRefreshToken(tokenString string) (model.TokenClaims, error) {
	return j.verify(tokenString, typeRefresh, j.refreshSecret)
}

// AccessTokenTTLSeconds returns the access token lifetime in whole seconds.
func (j *JWT) AccessTokenTTLSeconds() int {
	return int(j.accessTTL.Seconds())
}

// RefreshTokenTTLSeconds returns the refresh token lifetime in whole seconds.
func (j *JWT) RefreshTokenTTLSeconds() int {
	return int(j.refreshTTL.Seconds())
}

func (j *JWT) sign(claims model.TokenClaims, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        claims.SessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    claims.UserID.String(),
		Username:  claims.Username,
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return tokenString, nil
}

func (j *JWT) verify(tokenString, tokenType string, secret []byte) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to parse %s token: %w", tokenType, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, fmt.Errorf("%s token is invalid", tokenType)
	}
	if claims.TokenType != tokenType {
		return model.TokenClaims{}, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("malformed user id claim: %w", err)
	}

	return model.TokenClaims{
		UserID:    userID,
		Username:  claims.Username,
		SessionID: claims.ID,
	}, nil
}
