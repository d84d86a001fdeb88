// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level, CORS); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// Relational store (identity, memberships, comments, likes,
	// article identifiers)
	MySQLDSN string // e.g. "blog:blog@tcp(localhost:3306)/blog?parseTime=true"

	// Document store (article content)
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Bearer credential signing
	TokenSecret string
	TokenTTL    time.Duration

	// Optional admin account created at startup if missing
	BootstrapAdminUsername string
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}
