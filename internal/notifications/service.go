package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/logger"
)

// Service defines notification list/read operations plus the lifecycle hooks
// the posts service calls. Hooks are best-effort: a notification failure never
// fails the operation that triggered it.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	PostScheduled(ctx context.Context, userID, postID uuid.UUID, title string, at time.Time)
	PostPublished(ctx context.Context, userID, postID uuid.UUID, title string)
}

type notificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	List(ctx context.Context, filters ListFilters) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo notificationRepository
	logg *logger.Logger
}

// NewService wires the notifications service.
func NewService(repo notificationRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications repository required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Notification, error) {
	if filters.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list notifications")
	}
	return rows, nil
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if notificationID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}

	found, err := s.repo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notification read")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	count, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notifications read")
	}
	return count, nil
}

func (s *service) PostScheduled(ctx context.Context, userID, postID uuid.UUID, title string, at time.Time) {
	s.deliver(ctx, &models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    enums.NotificationTypePostScheduled,
		Title:   "Post scheduled",
		Message: fmt.Sprintf("%q is scheduled for %s", title, at.Format(time.RFC1123)),
	}, postID)
}

func (s *service) PostPublished(ctx context.Context, userID, postID uuid.UUID, title string) {
	s.deliver(ctx, &models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    enums.NotificationTypePostPublished,
		Title:   "Post published",
		Message: fmt.Sprintf("%q is now live", title),
	}, postID)
}

func (s *service) deliver(ctx context.Context, notification *models.Notification, postID uuid.UUID) {
	actionURL := "/posts/" + postID.String()
	notification.ActionURL = &actionURL
	if err := s.repo.Create(ctx, notification); err != nil {
		s.logg.Error(s.logg.WithUserID(ctx, notification.UserID.String()), "delivering notification", err)
	}
}
