package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists one record per issued token pair. Records are never
// deleted; revocation is the only mutation after creation.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	// GetBySessionID resolves a session by either of its token identifiers.
	GetBySessionID(ctx context.Context, sessionID string) (Session, error)
	// Revoke marks the session revoked. Revoking an already revoked session
	// is a no-op success at this layer.
	Revoke(ctx context.Context, id uuid.UUID) error
}

// Session ties the identifiers of one issued access/refresh token pair to a
// user, with the revoked flag as the sole mutable state.
type Session struct {
	ID             uuid.UUID
	AccessTokenID  string
	RefreshTokenID string
	Revoked        bool
	UserID         uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
