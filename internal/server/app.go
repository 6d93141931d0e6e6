// Package server initializes and runs the application: configuration,
// logging, database, migrations, services, and the HTTP server with
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akovalyov/notekeeper/internal/logging"
	"github.com/akovalyov/notekeeper/internal/server/auth"
	"github.com/akovalyov/notekeeper/internal/server/config"
	"github.com/akovalyov/notekeeper/internal/server/repositories/repomanager"
	"github.com/akovalyov/notekeeper/internal/server/rest"
	"github.com/akovalyov/notekeeper/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return nil, fmt.Errorf("repository manager init error: %w", err)
	}

	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	codec, err := auth.NewCodec(cfg.SecretKey, cfg.SigningAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("token codec init error: %w", err)
	}
	issuer := auth.NewIssuer(codec, cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration)
	resolver := auth.NewResolver(codec, rm.Users(db))

	us := services.NewUserService(db, rm, issuer)
	ns := services.NewNoteService(db, rm)
	cs := services.NewCategoryService(db, rm)

	srv := rest.NewServer(cfg.EndpointAddrHTTP, logger, db, us, ns, cs, resolver)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
}
