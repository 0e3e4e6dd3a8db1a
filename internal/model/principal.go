package model

import "github.com/google/uuid"

// Principal is the authenticated identity derived from a verified access
// token. It lives for the duration of one request and is never persisted.
type Principal struct {
	UserID    uuid.UUID
	Username  string
	SessionID string
}
