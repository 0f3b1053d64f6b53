package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Repository exposes analytics persistence. Rows are append-only: there is no
// update or delete path.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an analytics repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilters narrows the returned snapshot set. Zero values are ignored.
type ListFilters struct {
	PostID   uuid.UUID
	Platform enums.Platform
	Since    time.Time
	Until    time.Time
}

// Create appends one engagement snapshot.
func (r *Repository) Create(ctx context.Context, row *models.Analytics) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// List returns matching snapshots ordered by recording time.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Analytics, error) {
	query := r.db.WithContext(ctx).Model(&models.Analytics{})
	if filters.PostID != uuid.Nil {
		query = query.Where("post_id = ?", filters.PostID)
	}
	if filters.Platform != "" {
		query = query.Where("platform = ?", filters.Platform)
	}
	if !filters.Since.IsZero() {
		query = query.Where("recorded_at >= ?", filters.Since)
	}
	if !filters.Until.IsZero() {
		query = query.Where("recorded_at <= ?", filters.Until)
	}

	var rows []models.Analytics
	if err := query.Order("recorded_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountPostsByStatus tallies the team's posts per lifecycle status.
func (r *Repository) CountPostsByStatus(ctx context.Context, teamID uuid.UUID) (map[enums.PostStatus]int64, error) {
	type bucket struct {
		Status enums.PostStatus
		Count  int64
	}

	query := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("status, COUNT(*) AS count").
		Group("status")
	if teamID != uuid.Nil {
		query = query.Where("team_id = ?", teamID)
	}

	var buckets []bucket
	if err := query.Find(&buckets).Error; err != nil {
		return nil, err
	}

	counts := make(map[enums.PostStatus]int64, len(buckets))
	for _, b := range buckets {
		counts[b.Status] = b.Count
	}
	return counts, nil
}

// EngagementTotals sums recorded metrics across the team's posts.
type EngagementTotals struct {
	Likes       int64 `json:"likes"`
	Shares      int64 `json:"shares"`
	Comments    int64 `json:"comments"`
	Reach       int64 `json:"reach"`
	Impressions int64 `json:"impressions"`
	Snapshots   int64 `json:"snapshots"`
}

// SumEngagement aggregates every snapshot belonging to the team's posts.
// Metrics live in a JSON text column, so the rows are folded in Go rather
// than in SQL, keeping sqlite and postgres behavior identical.
func (r *Repository) SumEngagement(ctx context.Context, teamID uuid.UUID) (*EngagementTotals, error) {
	query := r.db.WithContext(ctx).Model(&models.Analytics{})
	if teamID != uuid.Nil {
		query = query.
			Joins("JOIN posts ON posts.id = analytics.post_id").
			Where("posts.team_id = ?", teamID)
	}

	var rows []models.Analytics
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := &EngagementTotals{}
	for _, row := range rows {
		totals.Likes += row.Metrics.Likes
		totals.Shares += row.Metrics.Shares
		totals.Comments += row.Metrics.Comments
		totals.Reach += row.Metrics.Reach
		totals.Impressions += row.Metrics.Impressions
		totals.Snapshots++
	}
	return totals, nil
}
