package activitylog

import (
	"context"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/db/models"
	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/logger"
)

// RecordParams captures one audit event.
type RecordParams struct {
	UserID     uuid.UUID
	Action     string
	EntityType string
	EntityID   *uuid.UUID
	Details    map[string]any
	IPAddress  *string
	UserAgent  *string
}

// Recorder is the write surface mutating services depend on. Record is
// best-effort: failures are logged, never propagated, so an audit outage
// cannot fail the operation being audited.
type Recorder interface {
	Record(ctx context.Context, params RecordParams)
}

// Service exposes audit trail reads plus the Recorder write surface.
type Service interface {
	Recorder
	List(ctx context.Context, filters ListFilters) ([]models.ActivityLog, error)
}

type logRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, filters ListFilters) ([]models.ActivityLog, error)
}

type service struct {
	repo logRepository
	logg *logger.Logger
}

// NewService wires the activity log service.
func NewService(repo logRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity log repository required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) Record(ctx context.Context, params RecordParams) {
	if params.UserID == uuid.Nil || params.Action == "" || params.EntityType == "" {
		s.logg.Warn(s.logg.WithField(ctx, "action", params.Action), "dropping malformed activity entry")
		return
	}

	details := params.Details
	if details == nil {
		details = map[string]any{}
	}

	entry := &models.ActivityLog{
		ID:         uuid.New(),
		UserID:     params.UserID,
		Action:     params.Action,
		EntityType: params.EntityType,
		EntityID:   params.EntityID,
		Details:    dbtypes.JSONMap(details),
		IPAddress:  params.IPAddress,
		UserAgent:  params.UserAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "action", params.Action), "recording activity entry", err)
	}
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.ActivityLog, error) {
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list activity entries")
	}
	return rows, nil
}
