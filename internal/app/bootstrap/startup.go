// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/jvetere1999/passion-os/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// Handler deadlines are tunable per deployment; defaults otherwise.
	timeouts.Configure(timeouts.Config{})
	logger.Info("today service starting",
		zap.String("base_url", appCfg.BaseURL),
		zap.Int("gap_days", appCfg.GapDays))
	return nil
}
