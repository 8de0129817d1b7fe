package migrate

import (
	"context"
	"fmt"

	"github.com/qawafel/crm-backend/pkg/config"
	"github.com/qawafel/crm-backend/pkg/db"
	"github.com/qawafel/crm-backend/pkg/logger"
)

// MaybeRunOnBoot applies the embedded migrations at process start when the
// auto-migrate flag is on. The init loader still ensures the schema on every
// call; this only moves the first run out of the request path.
func MaybeRunOnBoot(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dialect": string(client.Dialect())})
	logg.Info(ctx, "running goose migrations (auto-migrate)")

	if err := EnsureSchema(ctx, client); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
