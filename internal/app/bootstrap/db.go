// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	focusstore "github.com/jvetere1999/passion-os/internal/app/store/focus"
	habitstore "github.com/jvetere1999/passion-os/internal/app/store/habits"
	inboxstore "github.com/jvetere1999/passion-os/internal/app/store/inbox"
	planstore "github.com/jvetere1999/passion-os/internal/app/store/plans"
	queststore "github.com/jvetere1999/passion-os/internal/app/store/quests"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used by every store.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the dashboard queries depend on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	for name, ensure := range map[string]func(context.Context) error{
		"daily_plans":    planstore.New(db).EnsureIndexes,
		"focus_sessions": focusstore.New(db).EnsureIndexes,
		"habits":         habitstore.New(db).EnsureIndexes,
		"quest_progress": queststore.New(db).EnsureIndexes,
		"inbox_items":    inboxstore.New(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Error("index setup failed", zap.String("collection", name), zap.Error(err))
			return err
		}
	}
	return nil
}
