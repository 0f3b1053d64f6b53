package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/internal/ai"
	"github.com/socialai/socialai-backend/internal/analytics"
	"github.com/socialai/socialai-backend/internal/auth"
	"github.com/socialai/socialai-backend/internal/calendar"
	"github.com/socialai/socialai-backend/internal/documents"
	"github.com/socialai/socialai-backend/internal/notifications"
	"github.com/socialai/socialai-backend/internal/posts"
	"github.com/socialai/socialai-backend/internal/socialaccounts"
	"github.com/socialai/socialai-backend/internal/teams"
	"github.com/socialai/socialai-backend/internal/templates"
	"github.com/socialai/socialai-backend/internal/users"
	pkgauth "github.com/socialai/socialai-backend/pkg/auth"
	"github.com/socialai/socialai-backend/pkg/auth/session"
	"github.com/socialai/socialai-backend/pkg/config"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	"github.com/socialai/socialai-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct {
	loginFn func(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return &auth.AuthResponse{}, nil
}

func (stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	return &auth.AuthResponse{}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error { return nil }

type stubUsersService struct {
	getFn func(ctx context.Context, id uuid.UUID) (*users.UserDTO, error)
}

func (s stubUsersService) Get(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return &users.UserDTO{ID: id}, nil
}

func (stubUsersService) List(ctx context.Context, filters users.ListFilters) ([]users.UserDTO, error) {
	return nil, nil
}

func (stubUsersService) Update(ctx context.Context, id uuid.UUID, dto users.UpdateUserDTO) (*users.UserDTO, error) {
	panic("unimplemented")
}

func (stubUsersService) Deactivate(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

type stubTeamsService struct{}

func (stubTeamsService) Create(ctx context.Context, createdBy uuid.UUID, dto teams.CreateTeamDTO) (*teams.TeamDTO, error) {
	panic("unimplemented")
}

func (stubTeamsService) Get(ctx context.Context, id uuid.UUID) (*teams.TeamDTO, error) {
	panic("unimplemented")
}

func (stubTeamsService) List(ctx context.Context, filters teams.ListFilters) ([]teams.TeamDTO, error) {
	return nil, nil
}

func (stubTeamsService) Update(ctx context.Context, id uuid.UUID, dto teams.UpdateTeamDTO) (*teams.TeamDTO, error) {
	panic("unimplemented")
}

func (stubTeamsService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubTeamsService) AddMember(ctx context.Context, actor, teamID uuid.UUID, dto teams.AddMemberDTO) (*teams.MemberDTO, error) {
	panic("unimplemented")
}

func (stubTeamsService) ListMembers(ctx context.Context, teamID uuid.UUID) ([]teams.MemberDTO, error) {
	return nil, nil
}

func (stubTeamsService) RemoveMember(ctx context.Context, actor, teamID, userID uuid.UUID) error {
	panic("unimplemented")
}

type stubPostsService struct {
	listFn func(ctx context.Context, filters posts.ListFilters) ([]posts.PostDTO, error)
}

func (stubPostsService) Create(ctx context.Context, createdBy uuid.UUID, dto posts.CreatePostDTO) (*posts.PostDTO, error) {
	panic("unimplemented")
}

func (stubPostsService) Get(ctx context.Context, id uuid.UUID) (*posts.PostDTO, error) {
	panic("unimplemented")
}

func (s stubPostsService) List(ctx context.Context, filters posts.ListFilters) ([]posts.PostDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filters)
	}
	return nil, nil
}

func (stubPostsService) Update(ctx context.Context, id uuid.UUID, dto posts.UpdatePostDTO) (*posts.PostDTO, error) {
	panic("unimplemented")
}

func (stubPostsService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubPostsService) Schedule(ctx context.Context, actor, id uuid.UUID, at time.Time) (*posts.PostDTO, error) {
	panic("unimplemented")
}

func (stubPostsService) Publish(ctx context.Context, actor, id uuid.UUID) (*posts.PostDTO, error) {
	panic("unimplemented")
}

type stubTemplatesService struct{}

func (stubTemplatesService) Create(ctx context.Context, createdBy uuid.UUID, dto templates.CreateTemplateDTO) (*models.Template, error) {
	panic("unimplemented")
}

func (stubTemplatesService) Get(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	panic("unimplemented")
}

func (stubTemplatesService) List(ctx context.Context, filters templates.ListFilters) ([]models.Template, error) {
	return nil, nil
}

func (stubTemplatesService) Update(ctx context.Context, id uuid.UUID, dto templates.UpdateTemplateDTO) (*models.Template, error) {
	panic("unimplemented")
}

func (stubTemplatesService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubTemplatesService) RecordUsage(ctx context.Context, id uuid.UUID) error {
	panic("unimplemented")
}

type stubDocumentsService struct{}

func (stubDocumentsService) Create(ctx context.Context, uploadedBy uuid.UUID, dto documents.CreateDocumentDTO) (*models.Document, error) {
	panic("unimplemented")
}

func (stubDocumentsService) Upload(ctx context.Context, uploadedBy uuid.UUID, dto documents.UploadDocumentDTO) (*models.Document, error) {
	panic("unimplemented")
}

func (stubDocumentsService) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	panic("unimplemented")
}

func (stubDocumentsService) List(ctx context.Context, filters documents.ListFilters) ([]models.Document, error) {
	return nil, nil
}

func (stubDocumentsService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	panic("unimplemented")
}

type stubCalendarService struct{}

func (stubCalendarService) Create(ctx context.Context, createdBy uuid.UUID, dto calendar.CreateEventDTO) (*models.CalendarEvent, error) {
	panic("unimplemented")
}

func (stubCalendarService) Get(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error) {
	panic("unimplemented")
}

func (stubCalendarService) List(ctx context.Context, filters calendar.ListFilters) ([]models.CalendarEvent, error) {
	return nil, nil
}

func (stubCalendarService) Update(ctx context.Context, id uuid.UUID, dto calendar.UpdateEventDTO) (*models.CalendarEvent, error) {
	panic("unimplemented")
}

func (stubCalendarService) Delete(ctx context.Context, actor, id uuid.UUID) error {
	panic("unimplemented")
}

type stubSocialAccountsService struct{}

func (stubSocialAccountsService) Connect(ctx context.Context, connectedBy uuid.UUID, dto socialaccounts.ConnectAccountDTO) (*socialaccounts.AccountDTO, error) {
	panic("unimplemented")
}

func (stubSocialAccountsService) Get(ctx context.Context, id uuid.UUID) (*socialaccounts.AccountDTO, error) {
	panic("unimplemented")
}

func (stubSocialAccountsService) List(ctx context.Context, filters socialaccounts.ListFilters) ([]socialaccounts.AccountDTO, error) {
	return nil, nil
}

func (stubSocialAccountsService) Disconnect(ctx context.Context, actor, id uuid.UUID) error {
	panic("unimplemented")
}

func (stubSocialAccountsService) PlatformToken(ctx context.Context, id uuid.UUID) (string, error) {
	panic("unimplemented")
}

type stubAnalyticsService struct{}

func (stubAnalyticsService) Record(ctx context.Context, dto analytics.RecordDTO) (*models.Analytics, error) {
	panic("unimplemented")
}

func (stubAnalyticsService) PerPost(ctx context.Context, postID uuid.UUID, platform enums.Platform) ([]models.Analytics, error) {
	return nil, nil
}

func (stubAnalyticsService) Dashboard(ctx context.Context, teamID uuid.UUID) (*analytics.Dashboard, error) {
	return &analytics.Dashboard{}, nil
}

type stubNotificationsService struct{}

func (stubNotificationsService) List(ctx context.Context, filters notifications.ListFilters) ([]models.Notification, error) {
	return nil, nil
}

func (stubNotificationsService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	panic("unimplemented")
}

func (stubNotificationsService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (stubNotificationsService) PostScheduled(ctx context.Context, userID, postID uuid.UUID, title string, at time.Time) {
}

func (stubNotificationsService) PostPublished(ctx context.Context, userID, postID uuid.UUID, title string) {
}

type stubActivityService struct{}

func (stubActivityService) Record(ctx context.Context, params activitylog.RecordParams) {}

func (stubActivityService) List(ctx context.Context, filters activitylog.ListFilters) ([]models.ActivityLog, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "socialai-test",
			ExpirationMinutes: 5,
		},
	}
}

func testServices() Services {
	return Services{
		Auth:           stubAuthService{},
		Users:          stubUsersService{},
		Teams:          stubTeamsService{},
		Posts:          stubPostsService{},
		Templates:      stubTemplatesService{},
		Documents:      stubDocumentsService{},
		Calendar:       stubCalendarService{},
		SocialAccounts: stubSocialAccountsService{},
		Analytics:      stubAnalyticsService{},
		Notifications:  stubNotificationsService{},
		Activity:       stubActivityService{},
		AI:             ai.NewGenerator(config.AIConfig{ImageBaseURL: "https://picsum.photos", ImageSize: 512}),
	}
}

func newTestRouter(cfg *config.Config, uploadsDir string) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		prometheus.NewRegistry(),
		stubPinger{},
		nil,
		stubSessionChecker{},
		uploadsDir,
		testServices(),
	)
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   enums.UserRoleUser,
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(testConfig(), "")

	for _, path := range []string{"/api/posts", "/api/users/me", "/api/notifications", "/api/analytics/dashboard"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token, got %d", path, resp.Code)
		}
	}
}

func TestProtectedRouteAcceptsToken(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, "")

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for /api/users/me with token, got %d", resp.Code)
	}
}

func TestLoginIsPublic(t *testing.T) {
	cfg := testConfig()
	called := false
	logg := logger.New(logger.Options{ServiceName: "test-routing", Output: io.Discard})
	svcs := testServices()
	svcs.Auth = stubAuthService{loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
		called = true
		return &auth.AuthResponse{}, nil
	}}
	router := NewRouter(cfg, logg, prometheus.NewRegistry(), stubPinger{}, nil, stubSessionChecker{}, "", svcs)

	body := `{"email":"casey@example.com","password":"correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for login, got %d: %s", resp.Code, resp.Body.String())
	}
	if !called {
		t.Fatal("login handler not reached")
	}
}

func TestLogoutRequiresToken(t *testing.T) {
	router := newTestRouter(testConfig(), "")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for logout without token, got %d", resp.Code)
	}
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig(), "")

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for /health/live, got %d", resp.Code)
	}
}

func TestMetricsEndpointServed(t *testing.T) {
	router := newTestRouter(testConfig(), "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for /metrics, got %d", resp.Code)
	}
}

func TestUnknownRouteReturnsJSONEnvelope(t *testing.T) {
	router := newTestRouter(testConfig(), "")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding 404 body: %v", err)
	}
	if envelope.Error.Code != "NOT_FOUND" {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
}

func TestUploadsServedWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "asset.txt"), []byte("stored"), 0o600); err != nil {
		t.Fatalf("seeding upload dir: %v", err)
	}
	router := newTestRouter(testConfig(), dir)

	req := httptest.NewRequest(http.MethodGet, "/uploads/asset.txt", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for stored upload, got %d", resp.Code)
	}
	if resp.Body.String() != "stored" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestAIGenerateReachable(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, "")

	body := `{"prompt":"spring launch","type":"social-post","platform":"twitter","tone":"casual"}`
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for ai generate, got %d: %s", resp.Code, resp.Body.String())
	}
}

func jsonBody(body string) io.Reader {
	return bytes.NewBufferString(body)
}
