package posts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

type fakePostRepo struct {
	posts map[uuid.UUID]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uuid.UUID]*models.Post{}}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	if post, ok := f.posts[id]; ok {
		copied := *post
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePostRepo) List(ctx context.Context, filters ListFilters) ([]models.Post, error) {
	var out []models.Post
	for _, post := range f.posts {
		if filters.Status != "" && post.Status != filters.Status {
			continue
		}
		if filters.TeamID != uuid.Nil && post.TeamID != filters.TeamID {
			continue
		}
		out = append(out, *post)
	}
	return out, nil
}

func (f *fakePostRepo) Save(ctx context.Context, post *models.Post) error {
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(ctx context.Context, params activitylog.RecordParams) {
	f.actions = append(f.actions, params.Action)
}

type fakeNotifier struct {
	scheduled []uuid.UUID
	published []uuid.UUID
}

func (f *fakeNotifier) PostScheduled(ctx context.Context, userID, postID uuid.UUID, title string, at time.Time) {
	f.scheduled = append(f.scheduled, postID)
}

func (f *fakeNotifier) PostPublished(ctx context.Context, userID, postID uuid.UUID, title string) {
	f.published = append(f.published, postID)
}

func newTestService(t *testing.T, repo *fakePostRepo) (Service, *fakeRecorder, *fakeNotifier) {
	t.Helper()
	recorder := &fakeRecorder{}
	notifier := &fakeNotifier{}
	svc, err := NewService(ServiceParams{Repo: repo, Activity: recorder, Notifier: notifier})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, recorder, notifier
}

func createDraft(t *testing.T, svc Service, platforms []string) *PostDTO {
	t.Helper()
	post, err := svc.Create(context.Background(), uuid.New(), CreatePostDTO{
		Title:     "Launch teaser",
		Content:   "Something big is coming.",
		TeamID:    uuid.New(),
		Platforms: platforms,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return post
}

func TestCreateDefaultsToDraft(t *testing.T) {
	svc, _, _ := newTestService(t, newFakePostRepo())
	post := createDraft(t, svc, []string{"instagram"})

	if post.Status != enums.PostStatusDraft {
		t.Fatalf("expected draft, got %s", post.Status)
	}
	if post.ScheduledAt != nil || post.PublishedAt != nil {
		t.Fatal("draft must not carry schedule or publish timestamps")
	}
	if post.Type != enums.PostTypeText {
		t.Fatalf("expected default text type, got %s", post.Type)
	}
}

func TestCreateWithScheduleSetsStatus(t *testing.T) {
	svc, _, notifier := newTestService(t, newFakePostRepo())
	at := time.Now().Add(24 * time.Hour)

	post, err := svc.Create(context.Background(), uuid.New(), CreatePostDTO{
		Title:       "Scheduled teaser",
		Content:     "Coming soon.",
		TeamID:      uuid.New(),
		Platforms:   []string{"instagram", "twitter"},
		ScheduledAt: &at,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Status != enums.PostStatusScheduled {
		t.Fatalf("expected scheduled, got %s", post.Status)
	}
	if post.ScheduledAt == nil || !post.ScheduledAt.Equal(at.UTC()) {
		t.Fatalf("scheduled_at mismatch: %v", post.ScheduledAt)
	}
	if len(notifier.scheduled) != 1 {
		t.Fatal("expected schedule notification")
	}
}

func TestCreateRejectsInvalidPlatform(t *testing.T) {
	svc, _, _ := newTestService(t, newFakePostRepo())
	_, err := svc.Create(context.Background(), uuid.New(), CreatePostDTO{
		Title:     "Bad platform",
		Content:   "x",
		TeamID:    uuid.New(),
		Platforms: []string{"myspace"},
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestSchedulePost(t *testing.T) {
	repo := newFakePostRepo()
	svc, recorder, notifier := newTestService(t, repo)
	post := createDraft(t, svc, []string{"linkedin"})
	at := time.Now().Add(48 * time.Hour)

	updated, err := svc.Schedule(context.Background(), uuid.New(), post.ID, at)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if updated.Status != enums.PostStatusScheduled {
		t.Fatalf("expected scheduled, got %s", updated.Status)
	}
	if updated.ScheduledAt == nil || !updated.ScheduledAt.Equal(at.UTC()) {
		t.Fatalf("scheduled_at mismatch: %v", updated.ScheduledAt)
	}
	if len(notifier.scheduled) != 1 {
		t.Fatal("expected schedule notification")
	}

	found := false
	for _, action := range recorder.actions {
		if action == "post.scheduled" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected post.scheduled activity entry")
	}
}

func TestScheduleRequiresPlatforms(t *testing.T) {
	svc, _, _ := newTestService(t, newFakePostRepo())
	post := createDraft(t, svc, nil)

	_, err := svc.Schedule(context.Background(), uuid.New(), post.ID, time.Now().Add(time.Hour))
	if pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestScheduleRejectsPublishedPost(t *testing.T) {
	repo := newFakePostRepo()
	svc, _, _ := newTestService(t, repo)
	post := createDraft(t, svc, []string{"facebook"})

	if _, err := svc.Publish(context.Background(), uuid.New(), post.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	_, err := svc.Schedule(context.Background(), uuid.New(), post.ID, time.Now().Add(time.Hour))
	if pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestPublishStampsAndClears(t *testing.T) {
	repo := newFakePostRepo()
	svc, _, notifier := newTestService(t, repo)
	post := createDraft(t, svc, []string{"tiktok"})

	if _, err := svc.Schedule(context.Background(), uuid.New(), post.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	published, err := svc.Publish(context.Background(), uuid.New(), post.ID)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if published.Status != enums.PostStatusPublished {
		t.Fatalf("expected published, got %s", published.Status)
	}
	if published.PublishedAt == nil {
		t.Fatal("published_at must be stamped")
	}
	if published.ScheduledAt != nil {
		t.Fatal("scheduled_at must be cleared on publish")
	}
	if len(notifier.published) != 1 {
		t.Fatal("expected publish notification")
	}
}

func TestPublishTwiceConflicts(t *testing.T) {
	svc, _, _ := newTestService(t, newFakePostRepo())
	post := createDraft(t, svc, []string{"twitter"})

	if _, err := svc.Publish(context.Background(), uuid.New(), post.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	_, err := svc.Publish(context.Background(), uuid.New(), post.ID)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestPublishRequiresPlatforms(t *testing.T) {
	svc, _, _ := newTestService(t, newFakePostRepo())
	post := createDraft(t, svc, nil)

	_, err := svc.Publish(context.Background(), uuid.New(), post.ID)
	if pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestUpdateCannotClearPlatformsOutsideDraft(t *testing.T) {
	svc, _, _ := newTestService(t, newFakePostRepo())
	post := createDraft(t, svc, []string{"instagram"})

	if _, err := svc.Schedule(context.Background(), uuid.New(), post.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	empty := []string{}
	_, err := svc.Update(context.Background(), post.ID, UpdatePostDTO{Platforms: &empty})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	repo := newFakePostRepo()
	svc, _, _ := newTestService(t, repo)
	draft := createDraft(t, svc, []string{"instagram"})
	other := createDraft(t, svc, []string{"twitter"})

	if _, err := svc.Publish(context.Background(), uuid.New(), other.ID); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	drafts, err := svc.List(context.Background(), ListFilters{Status: enums.PostStatusDraft})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(drafts) != 1 || drafts[0].ID != draft.ID {
		t.Fatalf("expected only the draft, got %+v", drafts)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := newTestService(t, newFakePostRepo())
	_, err := svc.Get(context.Background(), uuid.New())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
