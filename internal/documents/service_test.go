package documents

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/logger"
)

type fakeDocumentRepo struct {
	created       []*models.Document
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*models.Document, error)
	markProcessed map[uuid.UUID]string
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeDocumentRepo) Create(ctx context.Context, document *models.Document) error {
	f.created = append(f.created, document)
	return nil
}

func (f *fakeDocumentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDocumentRepo) List(ctx context.Context, filters ListFilters) ([]models.Document, error) {
	var out []models.Document
	for _, d := range f.created {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDocumentRepo) MarkProcessed(ctx context.Context, id uuid.UUID, summary string) error {
	if f.markProcessed == nil {
		f.markProcessed = map[uuid.UUID]string{}
	}
	f.markProcessed[id] = summary
	return nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeFileStore struct {
	saved   map[string]string
	removed []string
	saveErr error
}

func (f *fakeFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	data, _ := io.ReadAll(r)
	if f.saved == nil {
		f.saved = map[string]string{}
	}
	url := "/uploads/" + originalName
	f.saved[url] = string(data)
	return url, nil
}

func (f *fakeFileStore) Remove(ctx context.Context, fileURL string) error {
	f.removed = append(f.removed, fileURL)
	return nil
}

type fakeSummarizer struct{}

func (fakeSummarizer) SummarizeDocument(ctx context.Context, name, content string) string {
	return "summary of " + name
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, params activitylog.RecordParams) {}

func newDocumentService(t *testing.T, repo *fakeDocumentRepo, files *fakeFileStore) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:       repo,
		Files:      files,
		Summarizer: fakeSummarizer{},
		Activity:   nopRecorder{},
		Logger:     logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateInlineDocumentIsSummarized(t *testing.T) {
	repo := &fakeDocumentRepo{}
	svc := newDocumentService(t, repo, &fakeFileStore{})

	doc, err := svc.Create(context.Background(), uuid.New(), CreateDocumentDTO{
		Name:    "Brand voice",
		Type:    enums.DocumentTypeBrandGuide,
		Content: "We speak plainly.",
		TeamID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !doc.IsProcessed {
		t.Fatal("expected document to be processed")
	}
	if doc.AISummary == nil || *doc.AISummary != "summary of Brand voice" {
		t.Fatalf("unexpected summary %v", doc.AISummary)
	}
	if got := repo.markProcessed[doc.ID]; got != *doc.AISummary {
		t.Fatalf("summary not persisted, got %q", got)
	}
}

func TestUploadStoresFileAndRecordsURL(t *testing.T) {
	repo := &fakeDocumentRepo{}
	files := &fakeFileStore{}
	svc := newDocumentService(t, repo, files)

	doc, err := svc.Upload(context.Background(), uuid.New(), UploadDocumentDTO{
		Name:     "Market research",
		Type:     enums.DocumentTypeMarketResearch,
		TeamID:   uuid.New(),
		Filename: "research.pdf",
		File:     strings.NewReader("pdf bytes"),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.FileURL == nil || *doc.FileURL != "/uploads/research.pdf" {
		t.Fatalf("unexpected file url %v", doc.FileURL)
	}
	if doc.IsProcessed {
		t.Fatal("file uploads should not be marked processed")
	}
	if files.saved[*doc.FileURL] != "pdf bytes" {
		t.Fatal("file contents not stored")
	}
}

func TestUploadFailureSurfacesDependencyError(t *testing.T) {
	files := &fakeFileStore{saveErr: errors.New("disk full")}
	svc := newDocumentService(t, &fakeDocumentRepo{}, files)

	_, err := svc.Upload(context.Background(), uuid.New(), UploadDocumentDTO{
		Name:     "doc",
		Type:     enums.DocumentTypeBusinessPlan,
		TeamID:   uuid.New(),
		Filename: "plan.docx",
		File:     strings.NewReader("x"),
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected DEPENDENCY_ERROR, got %v", err)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := newDocumentService(t, &fakeDocumentRepo{}, &fakeFileStore{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateDocumentDTO{
		Name:    "doc",
		Type:    enums.DocumentType("diary"),
		Content: "x",
		TeamID:  uuid.New(),
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	fileURL := "/uploads/old.pdf"
	id := uuid.New()
	repo := &fakeDocumentRepo{
		findByIDFn: func(ctx context.Context, got uuid.UUID) (*models.Document, error) {
			if got != id {
				return nil, gorm.ErrRecordNotFound
			}
			return &models.Document{ID: id, Name: "old", FileURL: &fileURL}, nil
		},
	}
	files := &fakeFileStore{}
	svc := newDocumentService(t, repo, files)

	if err := svc.Delete(context.Background(), uuid.New(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(files.removed) != 1 || files.removed[0] != fileURL {
		t.Fatalf("stored file not removed: %v", files.removed)
	}
}

func TestDeleteUnknownDocument(t *testing.T) {
	svc := newDocumentService(t, &fakeDocumentRepo{}, &fakeFileStore{})
	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
