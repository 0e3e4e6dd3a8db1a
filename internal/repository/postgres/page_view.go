package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/model"
)

var _ model.PageViewStore = (*PageViewRepository)(nil)

type PageViewRepository struct {
	db *Connection
}

func NewPageViewRepository(db *Connection) *PageViewRepository {
	return &PageViewRepository{db: db}
}

func (r *PageViewRepository) Create(ctx context.Context, view model.PageView) error {
	const query = `
        INSERT INTO page_views (id, article_id, viewer_id, created_at)
        VALUES ($1, $2, $3, NOW())
    `

	if view.ID == uuid.Nil {
		view.ID = uuid.New()
	}

	if _, err := r.db.Exec(ctx, query, view.ID, view.ArticleID, view.ViewerID); err != nil {
		return fmt.Errorf("failed to create page view: %w", err)
	}
	return nil
}

func (r *PageViewRepository) Count(ctx context.Context, filter model.PageViewFilter) (int, error) {
	query, args := filterQuery("SELECT COUNT(*) FROM page_views", filter)

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count page views: %w", err)
	}
	return count, nil
}

func (r *PageViewRepository) ListInRange(ctx context.Context, filter model.PageViewFilter) ([]model.PageView, error) {
	query, args := filterQuery("SELECT id, article_id, viewer_id, created_at FROM page_views", filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list page views: %w", err)
	}
	defer rows.Close()

	var views []model.PageView
	for rows.Next() {
		var view model.PageView
		if err := rows.Scan(&view.ID, &view.ArticleID, &view.ViewerID, &view.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page view row: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate page view rows: %w", err)
	}

	return views, nil
}

func (r *PageViewRepository) CountByArticle(ctx context.Context, articleID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM page_views WHERE article_id = $1`, articleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count page views by article: %w", err)
	}
	return count, nil
}

func filterQuery(base string, filter model.PageViewFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.ArticleID != uuid.Nil {
		args = append(args, filter.ArticleID)
		conds = append(conds, fmt.Sprintf("article_id = $%d", len(args)))
	}
	if !filter.StartAt.IsZero() {
		args = append(args, filter.StartAt)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.EndAt.IsZero() {
		args = append(args, filter.EndAt)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	if len(conds) > 0 {
		base += " WHERE " + strings.Join(conds, " AND ")
	}
	return base, args
}
