package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/db/models"
	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

type fakeAnalyticsRepo struct {
	rows     []*models.Analytics
	countsFn func(ctx context.Context, teamID uuid.UUID) (map[enums.PostStatus]int64, error)
	sumFn    func(ctx context.Context, teamID uuid.UUID) (*EngagementTotals, error)
}

func (f *fakeAnalyticsRepo) Create(ctx context.Context, row *models.Analytics) error {
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeAnalyticsRepo) List(ctx context.Context, filters ListFilters) ([]models.Analytics, error) {
	var out []models.Analytics
	for _, row := range f.rows {
		if filters.PostID != uuid.Nil && row.PostID != filters.PostID {
			continue
		}
		if filters.Platform != "" && row.Platform != filters.Platform {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) CountPostsByStatus(ctx context.Context, teamID uuid.UUID) (map[enums.PostStatus]int64, error) {
	if f.countsFn != nil {
		return f.countsFn(ctx, teamID)
	}
	return map[enums.PostStatus]int64{}, nil
}

func (f *fakeAnalyticsRepo) SumEngagement(ctx context.Context, teamID uuid.UUID) (*EngagementTotals, error) {
	if f.sumFn != nil {
		return f.sumFn(ctx, teamID)
	}
	return &EngagementTotals{}, nil
}

func newAnalyticsService(t *testing.T, repo *fakeAnalyticsRepo) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRecordDefaultsRecordedAt(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := newAnalyticsService(t, repo)

	row, err := svc.Record(context.Background(), RecordDTO{
		PostID:   uuid.New(),
		Platform: enums.PlatformInstagram,
		Metrics:  dbtypes.EngagementMetrics{Likes: 10},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if row.RecordedAt.IsZero() {
		t.Fatal("recorded_at not stamped")
	}
	if len(repo.rows) != 1 {
		t.Fatal("snapshot not persisted")
	}
}

func TestRecordRejectsUnknownPlatform(t *testing.T) {
	svc := newAnalyticsService(t, &fakeAnalyticsRepo{})

	_, err := svc.Record(context.Background(), RecordDTO{
		PostID:   uuid.New(),
		Platform: enums.Platform("myspace"),
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestPerPostFiltersByPlatform(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := newAnalyticsService(t, repo)

	postID := uuid.New()
	for _, platform := range []enums.Platform{enums.PlatformInstagram, enums.PlatformTwitter} {
		if _, err := svc.Record(context.Background(), RecordDTO{
			PostID:     postID,
			Platform:   platform,
			RecordedAt: time.Now(),
		}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	rows, err := svc.PerPost(context.Background(), postID, enums.PlatformTwitter)
	if err != nil {
		t.Fatalf("PerPost: %v", err)
	}
	if len(rows) != 1 || rows[0].Platform != enums.PlatformTwitter {
		t.Fatalf("filter not applied: %+v", rows)
	}
}

func TestDashboardAggregates(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		countsFn: func(ctx context.Context, teamID uuid.UUID) (map[enums.PostStatus]int64, error) {
			return map[enums.PostStatus]int64{
				enums.PostStatusDraft:     2,
				enums.PostStatusPublished: 3,
			}, nil
		},
		sumFn: func(ctx context.Context, teamID uuid.UUID) (*EngagementTotals, error) {
			return &EngagementTotals{Likes: 100, Snapshots: 4}, nil
		},
	}
	svc := newAnalyticsService(t, repo)

	dashboard, err := svc.Dashboard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.TotalPosts != 5 {
		t.Fatalf("expected 5 total posts, got %d", dashboard.TotalPosts)
	}
	if dashboard.Engagement.Likes != 100 {
		t.Fatalf("engagement totals not propagated: %+v", dashboard.Engagement)
	}
}
