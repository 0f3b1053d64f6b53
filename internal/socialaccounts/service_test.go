package socialaccounts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/security"
)

type fakeAccountRepo struct {
	created      []*models.SocialAccount
	createErr    error
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error)
	deactivateFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.SocialAccount) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, account)
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccountRepo) List(ctx context.Context, filters ListFilters) ([]models.SocialAccount, error) {
	var out []models.SocialAccount
	for _, a := range f.created {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccountRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, id)
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Record(ctx context.Context, params activitylog.RecordParams) {}

func newAccountService(t *testing.T, repo *fakeAccountRepo) (Service, *security.TokenVault) {
	t.Helper()
	vault, err := security.NewTokenVault("test-seal-key")
	if err != nil {
		t.Fatalf("NewTokenVault: %v", err)
	}
	svc, err := NewService(ServiceParams{Repo: repo, Vault: vault, Activity: nopRecorder{}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, vault
}

func TestConnectSealsTokensBeforePersisting(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc, vault := newAccountService(t, repo)

	refresh := "refresh-plaintext"
	dto, err := svc.Connect(context.Background(), uuid.New(), ConnectAccountDTO{
		Platform:     enums.PlatformInstagram,
		AccountID:    "ig-123",
		Username:     "brand",
		AccessToken:  "access-plaintext",
		RefreshToken: &refresh,
		TeamID:       uuid.New(),
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatal("account not persisted")
	}

	stored := repo.created[0]
	if stored.AccessToken == "access-plaintext" {
		t.Fatal("access token persisted in plaintext")
	}
	opened, err := vault.Open(stored.AccessToken)
	if err != nil || opened != "access-plaintext" {
		t.Fatalf("sealed token does not open: %v %q", err, opened)
	}
	if stored.RefreshToken == nil || *stored.RefreshToken == refresh {
		t.Fatal("refresh token persisted in plaintext")
	}
	if dto == nil {
		t.Fatal("expected response dto")
	}
}

func TestConnectDuplicateMapsToConflict(t *testing.T) {
	repo := &fakeAccountRepo{createErr: &pgconn.PgError{Code: "23505"}}
	svc, _ := newAccountService(t, repo)

	_, err := svc.Connect(context.Background(), uuid.New(), ConnectAccountDTO{
		Platform:    enums.PlatformTwitter,
		AccountID:   "tw-1",
		Username:    "brand",
		AccessToken: "tok",
		TeamID:      uuid.New(),
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestConnectRejectsUnknownPlatform(t *testing.T) {
	svc, _ := newAccountService(t, &fakeAccountRepo{})

	_, err := svc.Connect(context.Background(), uuid.New(), ConnectAccountDTO{
		Platform:    enums.Platform("myspace"),
		AccountID:   "x",
		Username:    "x",
		AccessToken: "tok",
		TeamID:      uuid.New(),
	})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestListNeverExposesTokens(t *testing.T) {
	repo := &fakeAccountRepo{}
	svc, _ := newAccountService(t, repo)

	_, err := svc.Connect(context.Background(), uuid.New(), ConnectAccountDTO{
		Platform:    enums.PlatformLinkedIn,
		AccountID:   "li-1",
		Username:    "brand",
		AccessToken: "tok",
		TeamID:      uuid.New(),
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	dtos, err := svc.List(context.Background(), ListFilters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected 1 account, got %d", len(dtos))
	}
}

func TestDisconnectKeepsRow(t *testing.T) {
	var deactivated uuid.UUID
	repo := &fakeAccountRepo{
		deactivateFn: func(ctx context.Context, id uuid.UUID) error {
			deactivated = id
			return nil
		},
	}
	svc, _ := newAccountService(t, repo)

	id := uuid.New()
	if err := svc.Disconnect(context.Background(), uuid.New(), id); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if deactivated != id {
		t.Fatal("deactivate not called with account id")
	}
}

func TestPlatformTokenOpensSealedToken(t *testing.T) {
	id := uuid.New()
	repo := &fakeAccountRepo{}
	svc, vault := newAccountService(t, repo)

	sealed, err := vault.Seal("live-token")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	repo.findByIDFn = func(ctx context.Context, got uuid.UUID) (*models.SocialAccount, error) {
		return &models.SocialAccount{ID: id, AccessToken: sealed, IsActive: true}, nil
	}

	token, err := svc.PlatformToken(context.Background(), id)
	if err != nil {
		t.Fatalf("PlatformToken: %v", err)
	}
	if token != "live-token" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestPlatformTokenRejectsDisconnected(t *testing.T) {
	repo := &fakeAccountRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error) {
			return &models.SocialAccount{ID: id, AccessToken: "sealed", IsActive: false}, nil
		},
	}
	svc, _ := newAccountService(t, repo)

	_, err := svc.PlatformToken(context.Background(), uuid.New())
	if pkgerrors.CodeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
}
