package client

import (
	"time"

	"github.com/google/uuid"
)

// The gateway mirrors the wire shapes instead of importing server internals so
// the package stands alone as an SDK.

// User is the account profile returned by the auth and user endpoints.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Company     string     `json:"company"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthResult is the token+profile pair issued by login and register.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterInput collects the signup fields.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company,omitempty"`
}

// UpdateProfileInput carries partial profile changes. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty"`
	Company   *string `json:"company,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type Team struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CompanyID   string    `json:"company_id"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamMember struct {
	ID       uuid.UUID `json:"id"`
	TeamID   uuid.UUID `json:"team_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type CreateTeamInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CompanyID   string `json:"company_id"`
}

type UpdateTeamInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type AddMemberInput struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role,omitempty"`
}

type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Platforms   []string   `json:"platforms"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	TeamID      uuid.UUID  `json:"team_id"`
	AIGenerated bool       `json:"ai_generated"`
	AIPrompt    *string    `json:"ai_prompt,omitempty"`
	MediaURLs   []string   `json:"media_urls"`
	Hashtags    []string   `json:"hashtags"`
	Mentions    []string   `json:"mentions"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreatePostInput struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Type        string     `json:"type,omitempty"`
	Platforms   []string   `json:"platforms,omitempty"`
	TeamID      uuid.UUID  `json:"team_id"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	AIGenerated bool       `json:"ai_generated,omitempty"`
	AIPrompt    *string    `json:"ai_prompt,omitempty"`
	MediaURLs   []string   `json:"media_urls,omitempty"`
	Hashtags    []string   `json:"hashtags,omitempty"`
	Mentions    []string   `json:"mentions,omitempty"`
}

// UpdatePostInput carries the mutable content fields. Nil means unchanged;
// status transitions go through SchedulePost and PublishPost instead.
type UpdatePostInput struct {
	Title     *string    `json:"title,omitempty"`
	Content   *string    `json:"content,omitempty"`
	Platforms *[]string  `json:"platforms,omitempty"`
	MediaURLs *[]string  `json:"media_urls,omitempty"`
	Hashtags  *[]string  `json:"hashtags,omitempty"`
	Mentions  *[]string  `json:"mentions,omitempty"`
}

// PostFilters narrow ListPosts. Zero values are omitted from the query string.
type PostFilters struct {
	TeamID    uuid.UUID
	CreatedBy uuid.UUID
	Status    string
	Type      string
	Platform  string
}

type Template struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Platforms   []string  `json:"platforms"`
	CreatedBy   uuid.UUID `json:"created_by"`
	TeamID      uuid.UUID `json:"team_id"`
	IsPublic    bool      `json:"is_public"`
	UsageCount  int64     `json:"usage_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTemplateInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	Type        string    `json:"type,omitempty"`
	Category    string    `json:"category,omitempty"`
	Platforms   []string  `json:"platforms,omitempty"`
	TeamID      uuid.UUID `json:"team_id"`
	IsPublic    bool      `json:"is_public,omitempty"`
}

type UpdateTemplateInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

type TemplateFilters struct {
	TeamID   uuid.UUID
	Type     string
	Category string
	IsPublic *bool
}

type Document struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	FileURL     *string   `json:"file_url,omitempty"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	TeamID      uuid.UUID `json:"team_id"`
	IsProcessed bool      `json:"is_processed"`
	AISummary   *string   `json:"ai_summary,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateDocumentInput struct {
	Name    string    `json:"name"`
	Type    string    `json:"type,omitempty"`
	Content string    `json:"content"`
	TeamID  uuid.UUID `json:"team_id"`
}

type DocumentFilters struct {
	TeamID      uuid.UUID
	UploadedBy  uuid.UUID
	Type        string
	IsProcessed *bool
}

type CalendarEvent struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Type        string     `json:"type"`
	PostID      *uuid.UUID `json:"post_id,omitempty"`
	TeamID      uuid.UUID  `json:"team_id"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreateEventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Type        string     `json:"type,omitempty"`
	PostID      *uuid.UUID `json:"post_id,omitempty"`
	TeamID      uuid.UUID  `json:"team_id"`
}

type UpdateEventInput struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartAt     *time.Time `json:"start_at,omitempty"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	PostID      *uuid.UUID `json:"post_id,omitempty"`
}

type EventFilters struct {
	TeamID uuid.UUID
	PostID uuid.UUID
	Type   string
	Start  time.Time
	End    time.Time
}

type SocialAccount struct {
	ID             uuid.UUID  `json:"id"`
	Platform       string     `json:"platform"`
	AccountID      string     `json:"account_id"`
	Username       string     `json:"username"`
	DisplayName    *string    `json:"display_name,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	ConnectedBy    uuid.UUID  `json:"connected_by"`
	TeamID         uuid.UUID  `json:"team_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ConnectAccountInput struct {
	Platform       string     `json:"platform"`
	AccountID      string     `json:"account_id"`
	Username       string     `json:"username"`
	DisplayName    *string    `json:"display_name,omitempty"`
	AccessToken    string     `json:"access_token"`
	RefreshToken   *string    `json:"refresh_token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	TeamID         uuid.UUID  `json:"team_id"`
}

type AccountFilters struct {
	TeamID   uuid.UUID
	Platform string
	IsActive *bool
}

// EngagementMetrics matches the JSON metrics column on analytics rows.
type EngagementMetrics struct {
	Likes       int64 `json:"likes"`
	Shares      int64 `json:"shares"`
	Comments    int64 `json:"comments"`
	Reach       int64 `json:"reach"`
	Impressions int64 `json:"impressions"`
}

type AnalyticsRow struct {
	ID         uuid.UUID         `json:"id"`
	PostID     uuid.UUID         `json:"post_id"`
	Platform   string            `json:"platform"`
	Metrics    EngagementMetrics `json:"metrics"`
	RecordedAt time.Time         `json:"recorded_at"`
	CreatedAt  time.Time         `json:"created_at"`
}

type RecordAnalyticsInput struct {
	PostID     uuid.UUID         `json:"post_id"`
	Platform   string            `json:"platform"`
	Metrics    EngagementMetrics `json:"metrics"`
	RecordedAt *time.Time        `json:"recorded_at,omitempty"`
}

type Dashboard struct {
	PostCounts map[string]int64 `json:"post_counts"`
	TotalPosts int64            `json:"total_posts"`
	Engagement EngagementTotals `json:"engagement"`
}

type EngagementTotals struct {
	Likes       int64 `json:"likes"`
	Shares      int64 `json:"shares"`
	Comments    int64 `json:"comments"`
	Reach       int64 `json:"reach"`
	Impressions int64 `json:"impressions"`
	Snapshots   int64 `json:"snapshots"`
}

type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	ActionURL *string   `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationFilters struct {
	Type       string
	UnreadOnly bool
}

type ActivityEntry struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	Details    map[string]any `json:"details"`
	IPAddress  *string        `json:"ip_address,omitempty"`
	UserAgent  *string        `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ActivityFilters struct {
	UserID     uuid.UUID
	EntityType string
	Action     string
}

type GenerateContentInput struct {
	Prompt   string `json:"prompt"`
	Type     string `json:"type"`
	Platform string `json:"platform,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

type GeneratedContent struct {
	Content  string `json:"content"`
	Type     string `json:"type"`
	Platform string `json:"platform,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

type GenerateImageInput struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style,omitempty"`
}

type GeneratedImage struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
	Style  string `json:"style,omitempty"`
}

type EnhanceContentInput struct {
	Content      string `json:"content"`
	Instructions string `json:"instructions,omitempty"`
}

type EnhancedContent struct {
	Content      string `json:"content"`
	Original     string `json:"original"`
	Instructions string `json:"instructions,omitempty"`
}

// UserFilters narrow ListUsers.
type UserFilters struct {
	Role     string
	IsActive *bool
	Company  string
}

// TeamFilters narrow ListTeams.
type TeamFilters struct {
	CompanyID string
	CreatedBy uuid.UUID
}
