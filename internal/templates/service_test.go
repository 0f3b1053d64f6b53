package templates

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

type fakeTemplateRepo struct {
	createFn         func(ctx context.Context, template *models.Template) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*models.Template, error)
	listFn           func(ctx context.Context, filters ListFilters) ([]models.Template, error)
	updateFn         func(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Template, error)
	incrementUsageFn func(ctx context.Context, id uuid.UUID) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeTemplateRepo) Create(ctx context.Context, template *models.Template) error {
	if f.createFn != nil {
		return f.createFn(ctx, template)
	}
	return nil
}

func (f *fakeTemplateRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTemplateRepo) List(ctx context.Context, filters ListFilters) ([]models.Template, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filters)
	}
	return nil, nil
}

func (f *fakeTemplateRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Template, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, updates)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTemplateRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	if f.incrementUsageFn != nil {
		return f.incrementUsageFn(ctx, id)
	}
	return nil
}

func (f *fakeTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type recordedActivity struct {
	params []activitylog.RecordParams
}

func (r *recordedActivity) Record(ctx context.Context, params activitylog.RecordParams) {
	r.params = append(r.params, params)
}

func newTemplateService(t *testing.T, repo *fakeTemplateRepo, activity *recordedActivity) Service {
	t.Helper()
	if activity == nil {
		activity = &recordedActivity{}
	}
	svc, err := NewService(repo, activity)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateTemplateDefaultsTypeAndRecordsActivity(t *testing.T) {
	var saved *models.Template
	repo := &fakeTemplateRepo{
		createFn: func(ctx context.Context, template *models.Template) error {
			saved = template
			return nil
		},
	}
	activity := &recordedActivity{}
	svc := newTemplateService(t, repo, activity)

	creator := uuid.New()
	out, err := svc.Create(context.Background(), creator, CreateTemplateDTO{
		Name:    "  Weekly digest  ",
		Content: "Here is what happened this week",
		TeamID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if saved == nil || out != saved {
		t.Fatal("template was not persisted")
	}
	if saved.Name != "Weekly digest" {
		t.Fatalf("name not trimmed: %q", saved.Name)
	}
	if saved.Type != enums.TemplateTypePost {
		t.Fatalf("expected default type post, got %s", saved.Type)
	}
	if saved.ID == uuid.Nil {
		t.Fatal("id not assigned")
	}
	if len(activity.params) != 1 || activity.params[0].Action != "template.created" {
		t.Fatalf("unexpected activity entries: %+v", activity.params)
	}
}

func TestCreateTemplateRejectsInvalidPlatform(t *testing.T) {
	svc := newTemplateService(t, &fakeTemplateRepo{}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateTemplateDTO{
		Name:      "promo",
		Content:   "hello",
		TeamID:    uuid.New(),
		Platforms: []string{"myspace"},
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateTemplateRequiresContent(t *testing.T) {
	svc := newTemplateService(t, &fakeTemplateRepo{}, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateTemplateDTO{
		Name:   "promo",
		TeamID: uuid.New(),
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdateTemplateNotFound(t *testing.T) {
	repo := &fakeTemplateRepo{
		updateFn: func(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Template, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newTemplateService(t, repo, nil)

	name := "renamed"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateTemplateDTO{Name: &name})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestUpdateTemplateRejectsEmptyName(t *testing.T) {
	svc := newTemplateService(t, &fakeTemplateRepo{}, nil)

	name := "   "
	_, err := svc.Update(context.Background(), uuid.New(), UpdateTemplateDTO{Name: &name})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestRecordUsageNotFound(t *testing.T) {
	repo := &fakeTemplateRepo{
		incrementUsageFn: func(ctx context.Context, id uuid.UUID) error {
			return gorm.ErrRecordNotFound
		},
	}
	svc := newTemplateService(t, repo, nil)

	err := svc.RecordUsage(context.Background(), uuid.New())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteTemplateRecordsActivity(t *testing.T) {
	activity := &recordedActivity{}
	svc := newTemplateService(t, &fakeTemplateRepo{}, activity)

	if err := svc.Delete(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(activity.params) != 1 || activity.params[0].Action != "template.deleted" {
		t.Fatalf("unexpected activity entries: %+v", activity.params)
	}
}
