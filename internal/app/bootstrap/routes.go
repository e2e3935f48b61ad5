// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/jvetere1999/passion-os/internal/app/features/health"
	todayfeature "github.com/jvetere1999/passion-os/internal/app/features/today"
	focusstore "github.com/jvetere1999/passion-os/internal/app/store/focus"
	habitstore "github.com/jvetere1999/passion-os/internal/app/store/habits"
	inboxstore "github.com/jvetere1999/passion-os/internal/app/store/inbox"
	planstore "github.com/jvetere1999/passion-os/internal/app/store/plans"
	queststore "github.com/jvetere1999/passion-os/internal/app/store/quests"
	userstore "github.com/jvetere1999/passion-os/internal/app/store/users"
	settingsstore "github.com/jvetere1999/passion-os/internal/app/store/usersettings"
	"github.com/jvetere1999/passion-os/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The Today dashboard exposes a small JSON
// surface: the aggregated /api/today payload plus the session-state
// endpoints the dashboard client posts to.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	agg := &todayfeature.Aggregator{
		Plans:    planstore.New(db),
		Focus:    focusstore.New(db),
		Habits:   habitstore.New(db),
		Quests:   queststore.New(db),
		Inbox:    inboxstore.New(db),
		Users:    userstore.New(db),
		Settings: settingsstore.New(db),
		GapDays:  appCfg.GapDays,
		Log:      logger,
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// The Today dashboard API
	todayHandler := todayfeature.NewHandler(agg, sessionMgr, logger)
	r.Mount("/api/today", todayfeature.Routes(todayHandler))

	return r, nil
}
