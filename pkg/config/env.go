package config

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv          = "ESPRESSOLAB_APP_ENV"
	EnvPort            = "ESPRESSOLAB_APP_PORT"
	EnvDBDSN           = "ESPRESSOLAB_DB_DSN"
	EnvDBHost          = "ESPRESSOLAB_DB_HOST"
	EnvDBPort          = "ESPRESSOLAB_DB_PORT"
	EnvDBUser          = "ESPRESSOLAB_DB_USER"
	EnvDBPassword      = "ESPRESSOLAB_DB_PASSWORD"
	EnvDBName          = "ESPRESSOLAB_DB_NAME"
	EnvRedisURL        = "ESPRESSOLAB_REDIS_URL"
	EnvRedisAddr       = "ESPRESSOLAB_REDIS_ADDR"
	EnvJWTSecret       = "ESPRESSOLAB_JWT_SECRET"
	EnvRateLimitWindow = "ESPRESSOLAB_RATE_LIMIT_WINDOW"
	EnvResendAPIKey    = "ESPRESSOLAB_RESEND_API_KEY"
	EnvEmailOrderFrom  = "ESPRESSOLAB_EMAIL_ORDER_FROM"
	EnvEmailQCFrom     = "ESPRESSOLAB_EMAIL_QC_FROM"
	EnvAdminEmail      = "ESPRESSOLAB_ADMIN_EMAIL"
	EnvPortalURL       = "ESPRESSOLAB_PORTAL_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
