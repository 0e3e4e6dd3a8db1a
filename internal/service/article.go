package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

// CreateArticleParams carries a validated article creation payload. The
// author always comes from the authenticated principal.
type CreateArticleParams struct {
	Title   string
	Content string
	Status  model.ArticleStatus
}

// UpdateArticleParams carries a validated article update payload.
type UpdateArticleParams struct {
	ID      uuid.UUID
	Title   string
	Content string
	Status  model.ArticleStatus
}

// ArticleList is a page of articles with the totals needed for the
// pagination envelope.
type ArticleList struct {
	Articles   []model.Article
	Size       int
	TotalPages int
}

// ArticleDetail is an article joined with its author and view count.
type ArticleDetail struct {
	Article    model.Article
	Author     model.User
	TotalViews int
}

type Article struct {
	articleStore  model.ArticleStore
	userStore     model.UserStore
	pageViewStore model.PageViewStore
	logger        *logger.Logger
}

func NewArticle(
	articleStore model.ArticleStore,
	userStore model.UserStore,
	pageViewStore model.PageViewStore,
	logger *logger.Logger,
) *Article {
	return &Article{
		articleStore:  articleStore,
		userStore:     userStore,
		pageViewStore: pageViewStore,
		logger:        logger,
	}
}

// List returns a page of articles. Anonymous callers only see PUBLISHED
// records; authenticated callers see drafts too.
func (s *Article) List(ctx context.Context, page model.Page, authenticated bool) (ArticleList, error) {
	publishedOnly := !authenticated

	articles, err := s.articleStore.List(ctx, page, publishedOnly)
	if err != nil {
		return ArticleList{}, fmt.Errorf("failed to list articles: %w", err)
	}

	count, err := s.articleStore.Count(ctx, page.Search, publishedOnly)
	if err != nil {
		return ArticleList{}, fmt.Errorf("failed to count articles: %w", err)
	}

	return ArticleList{
		Articles:   articles,
		Size:       count,
		TotalPages: page.TotalPages(count),
	}, nil
}

// GetByID returns one article with its author and total view count,
// honoring the same draft visibility rule as List.
func (s *Article) GetByID(ctx context.Context, id uuid.UUID, authenticated bool) (ArticleDetail, error) {
	article, err := s.articleStore.GetByID(ctx, id, !authenticated)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("failed to get article by id: %w", err)
	}

	author, err := s.userStore.GetByID(ctx, article.AuthorID)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("failed to get article author: %w", err)
	}

	views, err := s.pageViewStore.CountByArticle(ctx, article.ID)
	if err != nil {
		return ArticleDetail{}, fmt.Errorf("failed to count article views: %w", err)
	}

	return ArticleDetail{
		Article:    article,
		Author:     author,
		TotalViews: views,
	}, nil
}

func (s *Article) Create(ctx context.Context, principal model.Principal, params CreateArticleParams) (model.Article, error) {
	article := model.Article{
		ID:       uuid.New(),
		Title:    params.Title,
		Content:  params.Content,
		Status:   params.Status,
		AuthorID: principal.UserID,
	}

	saved, err := s.articleStore.Create(ctx, article)
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to create article: %w", err)
	}

	s.logger.Info("Article service: article created",
		"article_id", saved.ID,
		"author_id", principal.UserID)

	return saved, nil
}

// Update mutates an article after confirming it exists and the principal
// owns it; existence is checked first so a missing article is always a
// not-found, whoever asks.
func (s *Article) Update(ctx context.Context, principal model.Principal, params UpdateArticleParams) error {
	article, err := s.articleStore.GetByID(ctx, params.ID, false)
	if err != nil {
		return fmt.Errorf("failed to get article by id: %w", err)
	}

	if err := authorizeOwner(principal, article.AuthorID); err != nil {
		s.logger.Info("Article service: update denied",
			"article_id", article.ID,
			"principal_id", principal.UserID)
		return err
	}

	article.Title = params.Title
	article.Content = params.Content
	article.Status = params.Status

	if _, err := s.articleStore.Update(ctx, article); err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	s.logger.Info("Article service: article updated", "article_id", article.ID)

	return nil
}

func (s *Article) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	article, err := s.articleStore.GetByID(ctx, id, false)
	if err != nil {
		return fmt.Errorf("failed to get article by id: %w", err)
	}

	if err := authorizeOwner(principal, article.AuthorID); err != nil {
		s.logger.Info("Article service: delete denied",
			"article_id", article.ID,
			"principal_id", principal.UserID)
		return err
	}

	if err := s.articleStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.logger.Info("Article service: article deleted", "article_id", id)

	return nil
}
