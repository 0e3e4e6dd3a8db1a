package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/temirov/blogapi/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	const query = `
        INSERT INTO sessions (id, access_token_id, refresh_token_id, revoked, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
    `

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx, query,
		session.ID, session.AccessTokenID, session.RefreshTokenID, session.Revoked, session.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetBySessionID(ctx context.Context, sessionID string) (model.Session, error) {
	const query = `
        SELECT id, access_token_id, refresh_token_id, revoked, user_id, created_at, updated_at
        FROM sessions WHERE access_token_id = $1 OR refresh_token_id = $1
    `
	var session model.Session
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&session.ID, &session.AccessTokenID, &session.RefreshTokenID,
		&session.Revoked, &session.UserID, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound("session not found")
		}
		return model.Session{}, fmt.Errorf("failed to get session by token id: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	// The revoked guard makes a second revoke a clean no-op under
	// concurrent logout calls.
	const query = `
        UPDATE sessions SET revoked = TRUE, updated_at = NOW()
        WHERE id = $1 AND revoked = FALSE
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
