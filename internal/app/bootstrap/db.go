// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/indexes"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/domain/models"
	"go.uber.org/zap"
)

// EnsureSchema migrates the relational tables and creates MongoDB indexes.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := deps.SQL.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.AdminMembership{},
		&models.WriterMembership{},
		&models.ArticleRecord{},
		&models.Comment{},
		&models.Like{},
	); err != nil {
		logger.Error("relational migration failed", zap.Error(err))
		return fmt.Errorf("migrate relational schema: %w", err)
	}

	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("mongo index creation failed", zap.Error(err))
		return fmt.Errorf("ensure mongo indexes: %w", err)
	}

	return nil
}
