package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "DRAFT"
	ArticleStatusPublished ArticleStatus = "PUBLISHED"
)

// ValidArticleStatus reports whether s is a known publication state.
func ValidArticleStatus(s ArticleStatus) bool {
	return s == ArticleStatusDraft || s == ArticleStatusPublished
}

// ArticleStore defines persistence operations for articles. The
// publishedOnly flag narrows reads to PUBLISHED records; anonymous callers
// never see drafts.
type ArticleStore interface {
	GetByID(ctx context.Context, id uuid.UUID, publishedOnly bool) (Article, error)
	List(ctx context.Context, page Page, publishedOnly bool) ([]Article, error)
	Count(ctx context.Context, search string, publishedOnly bool) (int, error)
	Create(ctx context.Context, article Article) (Article, error)
	Update(ctx context.Context, article Article) (Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Article represents a blog entry owned by its author.
type Article struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Status    ArticleStatus
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
