package socialaccounts

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// Service defines platform account operations. Connect is the only path that
// ever sees plaintext tokens; they are sealed before they reach the repo and
// never included in responses.
type Service interface {
	Connect(ctx context.Context, connectedBy uuid.UUID, dto ConnectAccountDTO) (*AccountDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*AccountDTO, error)
	List(ctx context.Context, filters ListFilters) ([]AccountDTO, error)
	Disconnect(ctx context.Context, actor, id uuid.UUID) error
	PlatformToken(ctx context.Context, id uuid.UUID) (string, error)
}

type accountRepository interface {
	Create(ctx context.Context, account *models.SocialAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error)
	List(ctx context.Context, filters ListFilters) ([]models.SocialAccount, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type tokenVault interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// ServiceParams bundles the social accounts service dependencies.
type ServiceParams struct {
	Repo     accountRepository
	Vault    tokenVault
	Activity activitylog.Recorder
}

type service struct {
	repo     accountRepository
	vault    tokenVault
	activity activitylog.Recorder
}

// NewService wires the social accounts service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "social accounts repository required")
	}
	if params.Vault == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "token vault required")
	}
	if params.Activity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity recorder required")
	}
	return &service{repo: params.Repo, vault: params.Vault, activity: params.Activity}, nil
}

func (s *service) Connect(ctx context.Context, connectedBy uuid.UUID, dto ConnectAccountDTO) (*AccountDTO, error) {
	if connectedBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "connector id required")
	}
	if dto.TeamID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	if !dto.Platform.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid platform")
	}
	accountID := strings.TrimSpace(dto.AccountID)
	username := strings.TrimSpace(dto.Username)
	if accountID == "" || username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account id and username are required")
	}
	if dto.AccessToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "access token is required")
	}

	sealedAccess, err := s.vault.Seal(dto.AccessToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seal access token")
	}
	var sealedRefresh *string
	if dto.RefreshToken != nil && *dto.RefreshToken != "" {
		sealed, err := s.vault.Seal(*dto.RefreshToken)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seal refresh token")
		}
		sealedRefresh = &sealed
	}

	account := &models.SocialAccount{
		ID:             uuid.New(),
		Platform:       dto.Platform,
		AccountID:      accountID,
		Username:       username,
		DisplayName:    dto.DisplayName,
		AccessToken:    sealedAccess,
		RefreshToken:   sealedRefresh,
		TokenExpiresAt: dto.TokenExpiresAt,
		IsActive:       true,
		ConnectedBy:    connectedBy,
		TeamID:         dto.TeamID,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "account already connected for this team")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "connect account")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     connectedBy,
		Action:     "social_account.connected",
		EntityType: "social_account",
		EntityID:   &account.ID,
		Details:    map[string]any{"platform": string(account.Platform), "username": account.Username},
	})
	return ToDTO(account), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*AccountDTO, error) {
	account, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(account), nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]AccountDTO, error) {
	if filters.Platform != "" && !filters.Platform.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid platform filter")
	}
	accounts, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list accounts")
	}
	return ToDTOs(accounts), nil
}

// Disconnect deactivates the connection. The row is kept so existing posts
// and analytics retain their platform linkage.
func (s *service) Disconnect(ctx context.Context, actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "account id required")
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "active account not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "disconnect account")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "social_account.disconnected",
		EntityType: "social_account",
		EntityID:   &id,
	})
	return nil
}

// PlatformToken opens the sealed access token for outbound platform calls.
func (s *service) PlatformToken(ctx context.Context, id uuid.UUID) (string, error) {
	account, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	if !account.IsActive {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict, "account is disconnected")
	}
	token, err := s.vault.Open(account.AccessToken)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open access token")
	}
	return token, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "account id required")
	}
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
	}
	return account, nil
}
