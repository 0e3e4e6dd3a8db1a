package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PageViewFilter narrows page view queries. Zero values mean "no bound".
type PageViewFilter struct {
	ArticleID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
}

// PageViewStore defines persistence operations for article view events.
type PageViewStore interface {
	Create(ctx context.Context, view PageView) error
	Count(ctx context.Context, filter PageViewFilter) (int, error)
	ListInRange(ctx context.Context, filter PageViewFilter) ([]PageView, error)
	CountByArticle(ctx context.Context, articleID uuid.UUID) (int, error)
}

// PageView records one read of an article by a viewer.
type PageView struct {
	ID        uuid.UUID
	ArticleID uuid.UUID
	ViewerID  uuid.UUID
	CreatedAt time.Time
}
