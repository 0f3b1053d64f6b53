package posts

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// PostDTO is the transport shape for a post.
type PostDTO struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Type        enums.PostType   `json:"type"`
	Status      enums.PostStatus `json:"status"`
	Platforms   []string         `json:"platforms"`
	ScheduledAt *time.Time       `json:"scheduled_at,omitempty"`
	PublishedAt *time.Time       `json:"published_at,omitempty"`
	CreatedBy   uuid.UUID        `json:"created_by"`
	TeamID      uuid.UUID        `json:"team_id"`
	AIGenerated bool             `json:"ai_generated"`
	AIPrompt    *string          `json:"ai_prompt,omitempty"`
	MediaURLs   []string         `json:"media_urls"`
	Hashtags    []string         `json:"hashtags"`
	Mentions    []string         `json:"mentions"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreatePostDTO holds the fields accepted when creating a post.
type CreatePostDTO struct {
	Title       string         `json:"title" validate:"required,min=1,max=300"`
	Content     string         `json:"content" validate:"required"`
	Type        enums.PostType `json:"type" validate:"omitempty"`
	TeamID      uuid.UUID      `json:"team_id" validate:"required"`
	Platforms   []string       `json:"platforms" validate:"omitempty,dive,min=1"`
	ScheduledAt *time.Time     `json:"scheduled_at"`
	AIGenerated bool           `json:"ai_generated"`
	AIPrompt    *string        `json:"ai_prompt"`
	MediaURLs   []string       `json:"media_urls" validate:"omitempty,dive,url"`
	Hashtags    []string       `json:"hashtags"`
	Mentions    []string       `json:"mentions"`
}

// UpdatePostDTO carries the mutable content fields. Nil means unchanged.
// Status transitions go through Schedule and Publish, never through Update.
type UpdatePostDTO struct {
	Title     *string   `json:"title" validate:"omitempty,min=1,max=300"`
	Content   *string   `json:"content" validate:"omitempty"`
	Platforms *[]string `json:"platforms" validate:"omitempty"`
	MediaURLs *[]string `json:"media_urls" validate:"omitempty,dive,url"`
	Hashtags  *[]string `json:"hashtags"`
	Mentions  *[]string `json:"mentions"`
}

// ScheduleDTO carries the target timestamp for scheduling.
type ScheduleDTO struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

func fromModel(p *models.Post) *PostDTO {
	if p == nil {
		return nil
	}
	return &PostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Type:        p.Type,
		Status:      p.Status,
		Platforms:   append([]string{}, p.Platforms...),
		ScheduledAt: p.ScheduledAt,
		PublishedAt: p.PublishedAt,
		CreatedBy:   p.CreatedBy,
		TeamID:      p.TeamID,
		AIGenerated: p.AIGenerated,
		AIPrompt:    p.AIPrompt,
		MediaURLs:   append([]string{}, p.MediaURLs...),
		Hashtags:    append([]string{}, p.Hashtags...),
		Mentions:    append([]string{}, p.Mentions...),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
