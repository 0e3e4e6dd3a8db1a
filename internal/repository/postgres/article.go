package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/temirov/blogapi/internal/model"
)

var _ model.ArticleStore = (*ArticleRepository)(nil)

type ArticleRepository struct {
	db *Connection
}

func NewArticleRepository(db *Connection) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uuid.UUID, publishedOnly bool) (model.Article, error) {
	query := `SELECT id, title, content, status, author_id, created_at, updated_at
			  FROM articles WHERE id = $1 AND ($2 = FALSE OR status = 'PUBLISHED')`

	var article model.Article
	err := r.db.QueryRow(ctx, query, id, publishedOnly).Scan(
		&article.ID, &article.Title, &article.Content, &article.Status,
		&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound("article not found")
		}
		return model.Article{}, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *ArticleRepository) List(ctx context.Context, page model.Page, publishedOnly bool) ([]model.Article, error) {
	query := fmt.Sprintf(`SELECT id, title, content, status, author_id, created_at, updated_at
			  FROM articles
			  WHERE ($1 = FALSE OR status = 'PUBLISHED')
			    AND ($2 = '' OR title ILIKE '%%' || $2 || '%%' OR content ILIKE '%%' || $2 || '%%')
			  ORDER BY %s %s
			  LIMIT $3 OFFSET $4`, sortColumn(page.SortBy), sortDirection(page.Sort))

	rows, err := r.db.Query(ctx, query, publishedOnly, page.Search, page.PerPage, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var article model.Article
		if err := rows.Scan(
			&article.ID, &article.Title, &article.Content, &article.Status,
			&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate article rows: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepository) Count(ctx context.Context, search string, publishedOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM articles
			  WHERE ($1 = FALSE OR status = 'PUBLISHED')
			    AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')`

	var count int
	if err := r.db.QueryRow(ctx, query, publishedOnly, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (r *ArticleRepository) Create(ctx context.Context, article model.Article) (model.Article, error) {
	query := `INSERT INTO articles (id, title, content, status, author_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, title, content, status, author_id, created_at, updated_at`

	var saved model.Article
	err := r.db.QueryRow(ctx, query,
		article.ID, article.Title, article.Content, article.Status, article.AuthorID,
	).Scan(
		&saved.ID, &saved.Title, &saved.Content, &saved.Status,
		&saved.AuthorID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}

	return saved, nil
}

func (r *ArticleRepository) Update(ctx context.Context, article model.Article) (model.Article, error) {
	query := `UPDATE articles SET title = $2, content = $3, status = $4, updated_at = NOW()
			  WHERE id = $1
			  RETURNING id, title, content, status, author_id, created_at, updated_at`

	var saved model.Article
	err := r.db.QueryRow(ctx, query,
		article.ID, article.Title, article.Content, article.Status,
	).Scan(
		&saved.ID, &saved.Title, &saved.Content, &saved.Status,
		&saved.AuthorID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, model.ErrNotFound("article not found")
		}
		return model.Article{}, fmt.Errorf("failed to update article: %w", err)
	}

	return saved, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound("article not found")
	}
	return nil
}
