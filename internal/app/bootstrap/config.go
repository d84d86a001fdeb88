// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the blog API.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mysql_dsn, mongo_uri, token_secret, etc.
//   - Environment variables: BLOGAPI_MYSQL_DSN, BLOGAPI_MONGO_URI, etc.
//   - Command-line flags: --mysql_dsn, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mysql_dsn", Default: "blog:blog@tcp(localhost:3306)/blog?parseTime=true", Desc: "MySQL DSN for the relational store"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "blog_api", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Bearer token configuration
	{Name: "token_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC signing secret for bearer tokens (must be strong in production)"},
	{Name: "token_ttl", Default: "24h", Desc: "Bearer token lifetime (e.g., 24h, 12h, 90m)"},

	// Admin bootstrap: creates/promotes this account on startup when set
	{Name: "bootstrap_admin_username", Default: "", Desc: "Username of the bootstrap admin account (created on startup if missing)"},
	{Name: "bootstrap_admin_email", Default: "", Desc: "Email for the bootstrap admin account"},
	{Name: "bootstrap_admin_password", Default: "", Desc: "Password for the bootstrap admin account"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, BLOGAPI_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BLOGAPI", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MySQLDSN: appValues.String("mysql_dsn"),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		TokenSecret: appValues.String("token_secret"),
		TokenTTL:    appValues.Duration("token_ttl", 24*time.Hour),

		BootstrapAdminUsername: appValues.String("bootstrap_admin_username"),
		BootstrapAdminEmail:    appValues.String("bootstrap_admin_email"),
		BootstrapAdminPassword: appValues.String("bootstrap_admin_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
//
// The MongoDB URI format is validated here to catch configuration errors
// early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.MySQLDSN == "" {
		return fmt.Errorf("mysql_dsn must be set")
	}

	if coreCfg.Env == "prod" && appCfg.TokenSecret == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("token_secret must be changed from the default in production")
	}

	// Bootstrap admin settings come as a set: all three or none.
	if appCfg.BootstrapAdminUsername != "" {
		if appCfg.BootstrapAdminEmail == "" || appCfg.BootstrapAdminPassword == "" {
			return fmt.Errorf("bootstrap_admin_username requires bootstrap_admin_email and bootstrap_admin_password")
		}
	}

	return nil
}
