// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/waffle/config"
	adminstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/admins"
	userstore "github.com/dattali18/FSWD-Project-6-Backend/internal/app/store/users"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// When bootstrap admin credentials are configured, the account is created
// (or promoted) here so a fresh deployment always has at least one admin
// able to manage roles.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.BootstrapAdminUsername == "" {
		return nil
	}
	return ensureBootstrapAdmin(ctx, appCfg, deps, logger)
}

func ensureBootstrapAdmin(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	users := userstore.New(deps.SQL)
	admins := adminstore.New(deps.SQL)

	user, err := users.GetByUsername(ctx, appCfg.BootstrapAdminUsername)
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		user, err = users.Create(ctx, appCfg.BootstrapAdminUsername, appCfg.BootstrapAdminEmail, appCfg.BootstrapAdminPassword)
		if err != nil {
			return fmt.Errorf("create bootstrap admin: %w", err)
		}
		logger.Info("created bootstrap admin account",
			zap.String("username", user.Username))
	case err != nil:
		return fmt.Errorf("look up bootstrap admin: %w", err)
	}

	if user.Role != models.RoleAdmin {
		if err := users.UpdateRole(ctx, user.ID, models.RoleAdmin); err != nil {
			return fmt.Errorf("promote bootstrap admin: %w", err)
		}
	}
	if err := admins.Grant(ctx, user.ID); err != nil {
		return fmt.Errorf("grant bootstrap admin membership: %w", err)
	}

	logger.Info("bootstrap admin ready", zap.String("username", user.Username))
	return nil
}
