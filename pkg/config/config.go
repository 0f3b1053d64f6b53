package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "socialai"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Config is the full runtime configuration, loaded once at process start.
type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Vault         VaultConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
	Features      FeatureFlagsConfig
	AI            AIConfig
	Storage       StorageConfig
}

// Load reads the environment into a Config and normalizes derived values.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.Features.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"SOCIALAI_APP_ENV" required:"true"`
	Port     string `envconfig:"SOCIALAI_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"SOCIALAI_LOG_LEVEL" default:"info"`
}

// IsDev reports whether the service runs in development mode.
func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// IsProd reports whether the service runs in production mode.
func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"SOCIALAI_DB_DSN"`
	SQLitePath string `envconfig:"SOCIALAI_SQLITE_PATH" default:"file::memory:?cache=shared"`

	Host     string `envconfig:"SOCIALAI_DB_HOST"`
	Port     int    `envconfig:"SOCIALAI_DB_PORT" default:"5432"`
	User     string `envconfig:"SOCIALAI_DB_USER"`
	Password string `envconfig:"SOCIALAI_DB_PASSWORD"`
	Name     string `envconfig:"SOCIALAI_DB_NAME"`
	SSLMode  string `envconfig:"SOCIALAI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SOCIALAI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SOCIALAI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SOCIALAI_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SOCIALAI_REDIS_URL"`
	Address      string        `envconfig:"SOCIALAI_REDIS_ADDR"`
	Password     string        `envconfig:"SOCIALAI_REDIS_PASSWORD"`
	DB           int           `envconfig:"SOCIALAI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SOCIALAI_REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"SOCIALAI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SOCIALAI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SOCIALAI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SOCIALAI_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SOCIALAI_JWT_ISSUER" default:"socialai-manager"`
	ExpirationMinutes int    `envconfig:"SOCIALAI_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"SOCIALAI_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the server-side session lifetime.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SOCIALAI_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SOCIALAI_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SOCIALAI_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SOCIALAI_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SOCIALAI_ARGON_KEY_LEN" default:"32"`
}

// VaultConfig holds the symmetric key used to seal third-party platform tokens
// before they are persisted.
type VaultConfig struct {
	TokenKey string `envconfig:"SOCIALAI_TOKEN_SEAL_KEY" required:"true"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"SOCIALAI_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"SOCIALAI_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"SOCIALAI_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"SOCIALAI_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"SOCIALAI_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"SOCIALAI_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SOCIALAI_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SOCIALAI_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SOCIALAI_AUTO_MIGRATE" default:"false"`
}

// StorageConfig controls where uploaded document files land.
type StorageConfig struct {
	UploadDir     string `envconfig:"SOCIALAI_UPLOAD_DIR" default:"./uploads"`
	PublicBaseURL string `envconfig:"SOCIALAI_UPLOAD_BASE_URL" default:"/uploads"`
	MaxUploadMB   int64  `envconfig:"SOCIALAI_MAX_UPLOAD_MB" default:"10"`
}

// MaxUploadBytes returns the multipart upload cap in bytes.
func (s StorageConfig) MaxUploadBytes() int64 {
	if s.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return s.MaxUploadMB << 20
}

// AIConfig tunes the content generator.
type AIConfig struct {
	ImageBaseURL string `envconfig:"SOCIALAI_AI_IMAGE_BASE_URL" default:"https://picsum.photos"`
	ImageSize    int    `envconfig:"SOCIALAI_AI_IMAGE_SIZE" default:"512"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite || db.DSN != "" {
		return nil
	}

	missing := []string{}
	required := []struct {
		env   string
		value string
	}{
		{"SOCIALAI_DB_HOST", db.Host},
		{"SOCIALAI_DB_USER", db.User},
		{"SOCIALAI_DB_NAME", db.Name},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either SOCIALAI_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
