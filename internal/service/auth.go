package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

// Auth orchestrates the session lifecycle: login mints a token pair and one
// session record, logout revokes the session, refresh reissues an access
// token against a live session.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	hasher       model.PasswordHasher
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	tokenManager model.TokenManager,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		hasher:       hasher,
		logger:       logger,
	}
}

// Login verifies the credentials and issues an access/refresh token pair
// backed by exactly one session record. Unknown usernames and wrong
// passwords produce the same error so callers cannot enumerate accounts.
func (a *Auth) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: starting login", "username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if err != nil {
		if model.KindOf(err) == model.KindNotFound {
			a.logger.Info("Auth service: login for unknown username", "username", username)
			return model.TokenPair{}, model.ErrAuthenticationFailed("invalid username or password")
		}
		return model.TokenPair{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	match, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		a.logger.Info("Auth service: password mismatch", "username", username)
		return model.TokenPair{}, model.ErrAuthenticationFailed("invalid username or password")
	}

	accessTokenID := uuid.NewString()
	refreshTokenID := uuid.NewString()

	accessToken, err := a.tokenManager.SignAccessToken(model.TokenClaims{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: accessTokenID,
	})
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := a.tokenManager.SignRefreshToken(model.TokenClaims{
		UserID:    user.ID,
		Username:  user.Username,
		SessionID: refreshTokenID,
	})
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	session := model.Session{
		ID:             uuid.New(),
		AccessTokenID:  accessTokenID,
		RefreshTokenID: refreshTokenID,
		Revoked:        false,
		UserID:         user.ID,
	}
	if err := a.sessionStore.Create(ctx, session); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist session: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"username", username,
		"session_id", session.ID)

	return model.TokenPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  a.tokenManager.AccessTokenTTLSeconds(),
		RefreshTokenExpiresIn: a.tokenManager.RefreshTokenTTLSeconds(),
	}, nil
}

// Logout revokes the session resolved from the caller's verified access
// token. A session that is missing or already revoked is rejected: a
// revoked token must never be presentable again.
func (a *Auth) Logout(ctx context.Context, sessionID string) error {
	a.logger.Debug("Auth service: starting logout", "session_id", sessionID)

	session, err := a.sessionStore.GetBySessionID(ctx, sessionID)
	if err != nil {
		if model.KindOf(err) == model.KindNotFound {
			return model.ErrAuthenticationFailed("invalid token provided")
		}
		return fmt.Errorf("failed to get session by token id: %w", err)
	}

	if session.Revoked {
		a.logger.Info("Auth service: logout with revoked session", "session_id", session.ID)
		return model.ErrAuthenticationFailed("invalid token provided")
	}

	if err := a.sessionStore.Revoke(ctx, session.ID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	a.logger.Info("Auth service: logout completed", "session_id", session.ID)

	return nil
}

// Refresh verifies a refresh token and reissues a single access token bound
// to the same session. No rotation: the refresh token stays valid until its
// own expiry or logout.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := a.tokenManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		a.logger.Info("Auth service: refresh token rejected", "error", err.Error())
		return model.TokenPair{}, model.ErrForbidden("invalid token provided")
	}

	session, err := a.sessionStore.GetBySessionID(ctx, claims.SessionID)
	if err != nil {
		if model.KindOf(err) == model.KindNotFound {
			return model.TokenPair{}, model.ErrForbidden("invalid token provided")
		}
		return model.TokenPair{}, fmt.Errorf("failed to get session by token id: %w", err)
	}

	if session.Revoked {
		return model.TokenPair{}, model.ErrForbidden("invalid token provided")
	}

	accessToken, err := a.tokenManager.SignAccessToken(model.TokenClaims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		SessionID: session.AccessTokenID,
	})
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	a.logger.Info("Auth service: access token reissued", "session_id", session.ID)

	return model.TokenPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  a.tokenManager.AccessTokenTTLSeconds(),
		RefreshTokenExpiresIn: a.tokenManager.RefreshTokenTTLSeconds(),
	}, nil
}
