package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

// Interval selects the bucket width for view aggregation.
type Interval string

const (
	IntervalHourly  Interval = "hourly"
	IntervalDaily   Interval = "daily"
	IntervalMonthly Interval = "monthly"
)

// ValidInterval reports whether i is a known aggregation interval.
func ValidInterval(i Interval) bool {
	return i == IntervalHourly || i == IntervalDaily || i == IntervalMonthly
}

// ViewBucket is one aggregation slot: a formatted date key and the number
// of views that fell into it.
type ViewBucket struct {
	Date       string `json:"date"`
	TotalViews int    `json:"totalViews"`
}

// defaultWindow is applied when the caller gives no time range.
const defaultWindow = 7 * 24 * time.Hour

type PageView struct {
	pageViewStore model.PageViewStore
	articleStore  model.ArticleStore
	logger        *logger.Logger
}

func NewPageView(pageViewStore model.PageViewStore, articleStore model.ArticleStore, logger *logger.Logger) *PageView {
	return &PageView{
		pageViewStore: pageViewStore,
		articleStore:  articleStore,
		logger:        logger,
	}
}

// Record persists one view of an article by the authenticated principal.
func (s *PageView) Record(ctx context.Context, principal model.Principal, articleID uuid.UUID) error {
	if _, err := s.articleStore.GetByID(ctx, articleID, false); err != nil {
		return fmt.Errorf("failed to get article by id: %w", err)
	}

	view := model.PageView{
		ID:        uuid.New(),
		ArticleID: articleID,
		ViewerID:  principal.UserID,
	}

	if err := s.pageViewStore.Create(ctx, view); err != nil {
		return fmt.Errorf("failed to create page view: %w", err)
	}

	s.logger.Debug("PageView service: view recorded",
		"article_id", articleID,
		"viewer_id", principal.UserID)

	return nil
}

// Count returns the number of views matching the filter.
func (s *PageView) Count(ctx context.Context, filter model.PageViewFilter) (int, error) {
	count, err := s.pageViewStore.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count page views: %w", err)
	}
	return count, nil
}

// Aggregate buckets the views in the filter window by the given interval.
// Empty buckets are zero-filled so the caller gets one entry per step of
// the window, and the window defaults to the trailing seven days.
func (s *PageView) Aggregate(ctx context.Context, interval Interval, filter model.PageViewFilter) ([]ViewBucket, error) {
	now := time.Now()
	if filter.EndAt.IsZero() {
		filter.EndAt = now
	}
	if filter.StartAt.IsZero() {
		filter.StartAt = filter.EndAt.Add(-defaultWindow)
	}

	views, err := s.pageViewStore.ListInRange(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list page views: %w", err)
	}

	grouped := make(map[string]int)
	for _, view := range views {
		grouped[bucketKey(interval, view.CreatedAt)]++
	}

	var buckets []ViewBucket
	for _, step := range intervalSteps(interval, filter.StartAt, filter.EndAt) {
		key := bucketKey(interval, step)
		buckets = append(buckets, ViewBucket{
			Date:       key,
			TotalViews: grouped[key],
		})
	}

	return buckets, nil
}

func bucketKey(interval Interval, t time.Time) string {
	switch interval {
	case IntervalHourly:
		return t.Format("2006-01-02 15:00")
	case IntervalMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// intervalSteps enumerates the bucket start times covering [start, end].
func intervalSteps(interval Interval, start, end time.Time) []time.Time {
	var steps []time.Time

	switch interval {
	case IntervalHourly:
		cur := start.Truncate(time.Hour)
		for !cur.After(end) {
			steps = append(steps, cur)
			cur = cur.Add(time.Hour)
		}
	case IntervalMonthly:
		cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
		for !cur.After(end) {
			steps = append(steps, cur)
			cur = cur.AddDate(0, 1, 0)
		}
	default:
		cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		for !cur.After(end) {
			steps = append(steps, cur)
			cur = cur.AddDate(0, 0, 1)
		}
	}

	return steps
}
