package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/db/models"
	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// RecordDTO appends one engagement snapshot for a post on one platform.
type RecordDTO struct {
	PostID     uuid.UUID                 `json:"post_id" validate:"required"`
	Platform   enums.Platform            `json:"platform" validate:"required"`
	Metrics    dbtypes.EngagementMetrics `json:"metrics"`
	RecordedAt time.Time                 `json:"recorded_at"`
}

// Dashboard is the aggregate view backing the overview page.
type Dashboard struct {
	PostCounts map[enums.PostStatus]int64 `json:"post_counts"`
	TotalPosts int64                      `json:"total_posts"`
	Engagement EngagementTotals           `json:"engagement"`
}

// Service defines analytics operations. Snapshots are immutable once
// recorded.
type Service interface {
	Record(ctx context.Context, dto RecordDTO) (*models.Analytics, error)
	PerPost(ctx context.Context, postID uuid.UUID, platform enums.Platform) ([]models.Analytics, error)
	Dashboard(ctx context.Context, teamID uuid.UUID) (*Dashboard, error)
}

type analyticsRepository interface {
	Create(ctx context.Context, row *models.Analytics) error
	List(ctx context.Context, filters ListFilters) ([]models.Analytics, error)
	CountPostsByStatus(ctx context.Context, teamID uuid.UUID) (map[enums.PostStatus]int64, error)
	SumEngagement(ctx context.Context, teamID uuid.UUID) (*EngagementTotals, error)
}

type service struct {
	repo analyticsRepository
	now  func() time.Time
}

// NewService wires the analytics service.
func NewService(repo analyticsRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "analytics repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Record(ctx context.Context, dto RecordDTO) (*models.Analytics, error) {
	if dto.PostID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "post id required")
	}
	if !dto.Platform.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid platform")
	}

	recordedAt := dto.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}

	row := &models.Analytics{
		ID:         uuid.New(),
		PostID:     dto.PostID,
		Platform:   dto.Platform,
		Metrics:    dto.Metrics,
		RecordedAt: recordedAt.UTC(),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record analytics")
	}
	return row, nil
}

func (s *service) PerPost(ctx context.Context, postID uuid.UUID, platform enums.Platform) ([]models.Analytics, error) {
	if postID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "post id required")
	}
	if platform != "" && !platform.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid platform filter")
	}
	rows, err := s.repo.List(ctx, ListFilters{PostID: postID, Platform: platform})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load analytics series")
	}
	return rows, nil
}

func (s *service) Dashboard(ctx context.Context, teamID uuid.UUID) (*Dashboard, error) {
	counts, err := s.repo.CountPostsByStatus(ctx, teamID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count posts")
	}
	totals, err := s.repo.SumEngagement(ctx, teamID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum engagement")
	}

	dashboard := &Dashboard{
		PostCounts: counts,
		Engagement: *totals,
	}
	for _, count := range counts {
		dashboard.TotalPosts += count
	}
	return dashboard, nil
}
