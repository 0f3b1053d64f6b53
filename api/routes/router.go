package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/socialai/socialai-backend/api/controllers"
	"github.com/socialai/socialai-backend/api/middleware"
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
	"github.com/socialai/socialai-backend/pkg/auth/session"
	"github.com/socialai/socialai-backend/pkg/config"
	"github.com/socialai/socialai-backend/pkg/logger"
	"github.com/socialai/socialai-backend/pkg/metrics"
	"github.com/socialai/socialai-backend/pkg/redis"
	"github.com/socialai/socialai-backend/pkg/types"
)

// Services bundles everything the HTTP surface dispatches to.
type Services struct {
	Auth           auth.Service
	Users          users.Service
	Teams          teams.Service
	Posts          posts.Service
	Templates      templates.Service
	Documents      documents.Service
	Calendar       calendar.Service
	SocialAccounts socialaccounts.Service
	Analytics      analytics.Service
	Notifications  notifications.Service
	Activity       activitylog.Service
	AI             ai.Generator
}

// NewRouter assembles the full HTTP surface. Health probes and the metrics
// endpoint stay outside /api; everything under /api except login and register
// requires a live session.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	dbPinger controllers.Pinger,
	redisClient *redis.Client,
	sessions session.Checker,
	uploadsDir string,
	svcs Services,
) http.Handler {
	httpMetrics := metrics.NewHTTPMetrics(registry)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	passthrough := func(next http.Handler) http.Handler { return next }
	loginLimit, registerLimit := passthrough, passthrough
	if redisClient != nil {
		loginLimit = middleware.AuthRateLimit(middleware.NewAuthRateLimitPolicy(
			"login",
			cfg.AuthRateLimit.LoginWindow,
			cfg.AuthRateLimit.LoginIPLimit,
			cfg.AuthRateLimit.LoginEmailLimit,
		), redisClient, logg)
		registerLimit = middleware.AuthRateLimit(middleware.NewAuthRateLimitPolicy(
			"register",
			cfg.AuthRateLimit.RegisterWindow,
			cfg.AuthRateLimit.RegisterIPLimit,
			cfg.AuthRateLimit.RegisterEmailLimit,
		), redisClient, logg)
	}

	healthDeps := map[string]controllers.Pinger{"database": dbPinger}
	if redisClient != nil {
		healthDeps["redis"] = redisClient
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, healthDeps))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	if uploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimit).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
			r.With(registerLimit).Post("/register", controllers.AuthRegister(svcs.Auth, logg))
			r.With(middleware.Auth(cfg.JWT, sessions, logg)).
				Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", controllers.UserProfile(svcs.Users, logg))
				r.Put("/me", controllers.UserUpdateProfile(svcs.Users, logg))
				r.Get("/", controllers.UserList(svcs.Users, logg))
				r.Get("/{userId}", controllers.UserDetail(svcs.Users, logg))
				r.Delete("/{userId}", controllers.UserDeactivate(svcs.Users, logg))
			})

			r.Route("/posts", func(r chi.Router) {
				r.Post("/", controllers.PostCreate(svcs.Posts, logg))
				r.Get("/", controllers.PostList(svcs.Posts, logg))
				r.Get("/{postId}", controllers.PostDetail(svcs.Posts, logg))
				r.Put("/{postId}", controllers.PostUpdate(svcs.Posts, logg))
				r.Delete("/{postId}", controllers.PostDelete(svcs.Posts, logg))
				r.Post("/{postId}/schedule", controllers.PostSchedule(svcs.Posts, logg))
				r.Post("/{postId}/publish", controllers.PostPublish(svcs.Posts, logg))
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/generate", controllers.AIGenerate(svcs.AI, logg))
				r.Post("/generate-image", controllers.AIGenerateImage(svcs.AI, logg))
				r.Post("/enhance", controllers.AIEnhance(svcs.AI, logg))
			})

			r.Route("/templates", func(r chi.Router) {
				r.Post("/", controllers.TemplateCreate(svcs.Templates, logg))
				r.Get("/", controllers.TemplateList(svcs.Templates, logg))
				r.Get("/{templateId}", controllers.TemplateDetail(svcs.Templates, logg))
				r.Put("/{templateId}", controllers.TemplateUpdate(svcs.Templates, logg))
				r.Delete("/{templateId}", controllers.TemplateDelete(svcs.Templates, logg))
				r.Post("/{templateId}/use", controllers.TemplateUse(svcs.Templates, logg))
			})

			r.Route("/calendar/events", func(r chi.Router) {
				r.Post("/", controllers.CalendarEventCreate(svcs.Calendar, logg))
				r.Get("/", controllers.CalendarEventList(svcs.Calendar, logg))
				r.Get("/{eventId}", controllers.CalendarEventDetail(svcs.Calendar, logg))
				r.Put("/{eventId}", controllers.CalendarEventUpdate(svcs.Calendar, logg))
				r.Delete("/{eventId}", controllers.CalendarEventDelete(svcs.Calendar, logg))
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Post("/", controllers.AnalyticsRecord(svcs.Analytics, logg))
				r.Get("/dashboard", controllers.AnalyticsDashboard(svcs.Analytics, logg))
				r.Get("/posts/{postId}", controllers.AnalyticsPerPost(svcs.Analytics, logg))
			})

			r.Route("/social-accounts", func(r chi.Router) {
				r.Get("/", controllers.SocialAccountList(svcs.SocialAccounts, logg))
				r.Post("/connect", controllers.SocialAccountConnect(svcs.SocialAccounts, logg))
				r.Get("/{accountId}", controllers.SocialAccountDetail(svcs.SocialAccounts, logg))
				r.Post("/{accountId}/disconnect", controllers.SocialAccountDisconnect(svcs.SocialAccounts, logg))
			})

			r.Route("/teams", func(r chi.Router) {
				r.Post("/", controllers.TeamCreate(svcs.Teams, logg))
				r.Get("/", controllers.TeamList(svcs.Teams, logg))
				r.Get("/{teamId}", controllers.TeamDetail(svcs.Teams, logg))
				r.Put("/{teamId}", controllers.TeamUpdate(svcs.Teams, logg))
				r.Delete("/{teamId}", controllers.TeamDelete(svcs.Teams, logg))
				r.Get("/{teamId}/members", controllers.TeamMembers(svcs.Teams, logg))
				r.Post("/{teamId}/members", controllers.TeamAddMember(svcs.Teams, logg))
				r.Delete("/{teamId}/members/{userId}", controllers.TeamRemoveMember(svcs.Teams, logg))
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", controllers.DocumentCreate(svcs.Documents, logg))
				r.Post("/upload", controllers.DocumentUpload(svcs.Documents, cfg.Storage.MaxUploadBytes(), logg))
				r.Get("/", controllers.DocumentList(svcs.Documents, logg))
				r.Get("/{documentId}", controllers.DocumentDetail(svcs.Documents, logg))
				r.Delete("/{documentId}", controllers.DocumentDelete(svcs.Documents, logg))
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", controllers.NotificationList(svcs.Notifications, logg))
				r.Post("/{notificationId}/read", controllers.NotificationMarkRead(svcs.Notifications, logg))
				r.Post("/read-all", controllers.NotificationMarkAllRead(svcs.Notifications, logg))
			})

			r.Route("/activity", func(r chi.Router) {
				r.Get("/", controllers.ActivityList(svcs.Activity, logg))
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(types.ErrorEnvelope{
			Error: types.APIError{Code: "NOT_FOUND", Message: "route not found"},
		})
	})

	return r
}
