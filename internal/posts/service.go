package posts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// Service defines the post lifecycle operations.
//
// Status machine: draft -> scheduled -> published, with failed reachable from
// scheduled when delivery breaks. Schedule and Publish are the only entry
// points for transitions; Update never touches status or timestamps.
type Service interface {
	Create(ctx context.Context, createdBy uuid.UUID, dto CreatePostDTO) (*PostDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*PostDTO, error)
	List(ctx context.Context, filters ListFilters) ([]PostDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdatePostDTO) (*PostDTO, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
	Schedule(ctx context.Context, actor, id uuid.UUID, at time.Time) (*PostDTO, error)
	Publish(ctx context.Context, actor, id uuid.UUID) (*PostDTO, error)
}

type postRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	List(ctx context.Context, filters ListFilters) ([]models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type lifecycleNotifier interface {
	PostScheduled(ctx context.Context, userID, postID uuid.UUID, title string, at time.Time)
	PostPublished(ctx context.Context, userID, postID uuid.UUID, title string)
}

// ServiceParams bundles the posts service dependencies.
type ServiceParams struct {
	Repo     postRepository
	Activity activitylog.Recorder
	Notifier lifecycleNotifier
}

type service struct {
	repo     postRepository
	activity activitylog.Recorder
	notifier lifecycleNotifier
}

// NewService wires the posts service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "posts repository required")
	}
	if params.Activity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity recorder required")
	}
	if params.Notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "lifecycle notifier required")
	}
	return &service{repo: params.Repo, activity: params.Activity, notifier: params.Notifier}, nil
}

func (s *service) Create(ctx context.Context, createdBy uuid.UUID, dto CreatePostDTO) (*PostDTO, error) {
	if createdBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "creator id required")
	}
	if dto.TeamID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	title := strings.TrimSpace(dto.Title)
	if title == "" || strings.TrimSpace(dto.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title and content are required")
	}

	postType := dto.Type
	if postType == "" {
		postType = enums.PostTypeText
	}
	if !postType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid post type")
	}

	platforms, err := normalizePlatforms(dto.Platforms)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:          uuid.New(),
		Title:       title,
		Content:     dto.Content,
		Type:        postType,
		Status:      enums.PostStatusDraft,
		Platforms:   platforms,
		CreatedBy:   createdBy,
		TeamID:      dto.TeamID,
		AIGenerated: dto.AIGenerated,
		AIPrompt:    dto.AIPrompt,
		MediaURLs:   normalizeStrings(dto.MediaURLs),
		Hashtags:    normalizeStrings(dto.Hashtags),
		Mentions:    normalizeStrings(dto.Mentions),
	}

	if dto.ScheduledAt != nil {
		if err := validateSchedulable(post, *dto.ScheduledAt); err != nil {
			return nil, err
		}
		at := dto.ScheduledAt.UTC()
		post.Status = enums.PostStatusScheduled
		post.ScheduledAt = &at
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create post")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     createdBy,
		Action:     "post.created",
		EntityType: "post",
		EntityID:   &post.ID,
		Details:    map[string]any{"title": post.Title, "status": string(post.Status)},
	})
	if post.Status == enums.PostStatusScheduled {
		s.notifier.PostScheduled(ctx, createdBy, post.ID, post.Title, *post.ScheduledAt)
	}

	return fromModel(post), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PostDTO, error) {
	post, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromModel(post), nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]PostDTO, error) {
	if filters.Status != "" && !filters.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
	}
	if filters.Platform != "" && !filters.Platform.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid platform filter")
	}
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list posts")
	}
	out := make([]PostDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *fromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdatePostDTO) (*PostDTO, error) {
	post, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
		}
		post.Title = title
	}
	if dto.Content != nil {
		post.Content = *dto.Content
	}
	if dto.Platforms != nil {
		platforms, err := normalizePlatforms(*dto.Platforms)
		if err != nil {
			return nil, err
		}
		if post.Status != enums.PostStatusDraft && len(platforms) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "platforms required outside draft")
		}
		post.Platforms = platforms
	}
	if dto.MediaURLs != nil {
		post.MediaURLs = normalizeStrings(*dto.MediaURLs)
	}
	if dto.Hashtags != nil {
		post.Hashtags = normalizeStrings(*dto.Hashtags)
	}
	if dto.Mentions != nil {
		post.Mentions = normalizeStrings(*dto.Mentions)
	}

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update post")
	}
	return fromModel(post), nil
}

func (s *service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "post id required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete post")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "post.deleted",
		EntityType: "post",
		EntityID:   &id,
	})
	return nil
}

func (s *service) Schedule(ctx context.Context, actor, id uuid.UUID, at time.Time) (*PostDTO, error) {
	post, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Status != enums.PostStatusDraft && post.Status != enums.PostStatusScheduled {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only draft or scheduled posts can be scheduled").
			WithDetails(map[string]any{"status": string(post.Status)})
	}
	if err := validateSchedulable(post, at); err != nil {
		return nil, err
	}

	scheduledAt := at.UTC()
	post.Status = enums.PostStatusScheduled
	post.ScheduledAt = &scheduledAt
	post.PublishedAt = nil

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "schedule post")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "post.scheduled",
		EntityType: "post",
		EntityID:   &post.ID,
		Details:    map[string]any{"scheduled_at": scheduledAt},
	})
	s.notifier.PostScheduled(ctx, post.CreatedBy, post.ID, post.Title, scheduledAt)

	return fromModel(post), nil
}

func (s *service) Publish(ctx context.Context, actor, id uuid.UUID) (*PostDTO, error) {
	post, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Status == enums.PostStatusPublished {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "post is already published")
	}
	if len(post.Platforms) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "platforms required before publishing")
	}

	now := time.Now().UTC()
	post.Status = enums.PostStatusPublished
	post.PublishedAt = &now
	post.ScheduledAt = nil

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "publish post")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "post.published",
		EntityType: "post",
		EntityID:   &post.ID,
		Details:    map[string]any{"platforms": []string(post.Platforms)},
	})
	s.notifier.PostPublished(ctx, post.CreatedBy, post.ID, post.Title)

	return fromModel(post), nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "post id required")
	}
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load post")
	}
	return post, nil
}

func validateSchedulable(post *models.Post, at time.Time) error {
	if at.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "scheduled_at required")
	}
	if len(post.Platforms) == 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "platforms required before scheduling")
	}
	return nil
}

func normalizePlatforms(raw []string) (dbtypes.StringArray, error) {
	out := make(dbtypes.StringArray, 0, len(raw))
	for _, value := range raw {
		platform, err := enums.ParsePlatform(strings.TrimSpace(value))
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid platform "+value)
		}
		out = append(out, string(platform))
	}
	return out, nil
}

func normalizeStrings(raw []string) dbtypes.StringArray {
	out := make(dbtypes.StringArray, 0, len(raw))
	for _, value := range raw {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
