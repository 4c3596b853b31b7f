package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Email     EmailConfig
	Portal    PortalConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs error
	if c.RateLimit.Enabled() && !c.Redis.Configured() {
		errs = multierr.Append(errs, fmt.Errorf("%s requires %s or %s", EnvRateLimitWindow, EnvRedisURL, EnvRedisAddr))
	}
	for _, field := range []struct{ env, addr string }{
		{EnvEmailOrderFrom, c.Email.OrderFrom},
		{EnvEmailQCFrom, c.Email.QCFrom},
		{EnvAdminEmail, c.Email.AdminRecipient},
	} {
		if _, err := mail.ParseAddress(field.addr); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: invalid address %q: %w", field.env, field.addr, err))
		}
	}
	if c.Portal.BaseURL != "" {
		if u, err := url.Parse(c.Portal.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s: invalid url %q", EnvPortalURL, c.Portal.BaseURL))
		}
	}
	return errs
}

type AppConfig struct {
	Env          string `envconfig:"ESPRESSOLAB_APP_ENV" required:"true"`
	Port         string `envconfig:"ESPRESSOLAB_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ESPRESSOLAB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ESPRESSOLAB_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"ESPRESSOLAB_AUTO_MIGRATE" default:"false"`

	CORSAllowedOrigins []string `envconfig:"ESPRESSOLAB_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"ESPRESSOLAB_DB_DSN"`

	LegacyHost     string `envconfig:"ESPRESSOLAB_DB_HOST"`
	LegacyPort     int    `envconfig:"ESPRESSOLAB_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ESPRESSOLAB_DB_USER"`
	LegacyPassword string `envconfig:"ESPRESSOLAB_DB_PASSWORD"`
	LegacyName     string `envconfig:"ESPRESSOLAB_DB_NAME"`
	LegacySSLMode  string `envconfig:"ESPRESSOLAB_DB_SSLMODE" default:"require"`

	MaxOpenConns    int           `envconfig:"ESPRESSOLAB_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"ESPRESSOLAB_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"ESPRESSOLAB_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ESPRESSOLAB_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; the trigger rate limiter is the only consumer.
type RedisConfig struct {
	URL          string        `envconfig:"ESPRESSOLAB_REDIS_URL"`
	Address      string        `envconfig:"ESPRESSOLAB_REDIS_ADDR"`
	Password     string        `envconfig:"ESPRESSOLAB_REDIS_PASSWORD"`
	DB           int           `envconfig:"ESPRESSOLAB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ESPRESSOLAB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ESPRESSOLAB_REDIS_MIN_IDLE_CONNS" default:"1"`
	DialTimeout  time.Duration `envconfig:"ESPRESSOLAB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ESPRESSOLAB_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"ESPRESSOLAB_REDIS_WRITE_TIMEOUT" default:"3s"`
}

func (r RedisConfig) Configured() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

// AuthConfig holds the shared secret that signs caller JWTs (the Supabase project JWT secret).
type AuthConfig struct {
	JWTSecret string `envconfig:"ESPRESSOLAB_JWT_SECRET"`
	Issuer    string `envconfig:"ESPRESSOLAB_JWT_ISSUER"`
}

func (a AuthConfig) Enabled() bool {
	return strings.TrimSpace(a.JWTSecret) != ""
}

type RateLimitConfig struct {
	Window  time.Duration `envconfig:"ESPRESSOLAB_RATE_LIMIT_WINDOW" default:"0s"`
	IPLimit int           `envconfig:"ESPRESSOLAB_RATE_LIMIT_IP_LIMIT" default:"60"`
}

func (r RateLimitConfig) Enabled() bool {
	return r.Window > 0 && r.IPLimit > 0
}

type EmailConfig struct {
	ResendAPIKey   string        `envconfig:"ESPRESSOLAB_RESEND_API_KEY" required:"true"`
	ResendBaseURL  string        `envconfig:"ESPRESSOLAB_RESEND_BASE_URL" default:"https://api.resend.com"`
	Timeout        time.Duration `envconfig:"ESPRESSOLAB_RESEND_TIMEOUT" default:"15s"`
	OrderFrom      string        `envconfig:"ESPRESSOLAB_EMAIL_ORDER_FROM" default:"The Espresso Lab <orders@espressolab.com>"`
	QCFrom         string        `envconfig:"ESPRESSOLAB_EMAIL_QC_FROM" default:"The Espresso Lab <qc@espressolab.com>"`
	AdminRecipient string        `envconfig:"ESPRESSOLAB_ADMIN_EMAIL" default:"admin@espressolab.com"`
}

// PortalConfig points at the customer/admin portal used in email call-to-action links.
type PortalConfig struct {
	BaseURL string `envconfig:"ESPRESSOLAB_PORTAL_URL"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
