package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/taskward/taskward/app/taskward/config"
	"github.com/taskward/taskward/bridge/authbridge"
	"github.com/taskward/taskward/bridge/checkbridge"
	"github.com/taskward/taskward/bridge/repositories/tasksrepobridge"
	"github.com/taskward/taskward/bridge/scaffolding/mid"
	"github.com/taskward/taskward/core/repositories/sessionsrepo"
	"github.com/taskward/taskward/core/repositories/sessionsrepo/stores/sessionspgxstore"
	"github.com/taskward/taskward/core/repositories/tasksrepo"
	"github.com/taskward/taskward/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/taskward/taskward/infrastructure/postgresdb"
	"github.com/taskward/taskward/infrastructure/web"
	"github.com/taskward/taskward/sdk/environment"
	"github.com/taskward/taskward/sdk/logger"
	"github.com/taskward/taskward/sdk/telemetry"
)

var build = "develop"
var appName = "TASKWARD"

// sweepInterval is how often expired sessions get cleaned up.
const sweepInterval = time.Hour

func main() {
	environment.LoadEnv("")
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Println("configuring logger:", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	users := usersrepo.NewRepository(log, userspgxstore.NewStore(log, pg))
	sessions := sessionsrepo.NewRepository(log, sessionspgxstore.NewStore(log, pg))
	tasks := tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pg))

	webCfg, err := web.LoadServerConfig(appName)
	if err != nil {
		return fmt.Errorf("webserver config: %w", err)
	}

	cfg := config.Taskward{
		Build:     build,
		Logger:    log,
		Telemetry: telemetry.NewTelemetry(),
		Pool:      pg,
		Repositories: config.Repositories{
			Users:    users,
			Sessions: sessions,
			Tasks:    tasks,
		},
		CORSOrigins: webCfg.CORSOrigins,
	}

	server := web.NewWebServer(webCfg, webHandler(cfg), logger.NewStdLogger(log, slog.LevelError))

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go sweepSessions(sweepCtx, log, sessions)

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, webCfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Taskward) http.Handler {
	app := web.NewWebHandler(
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithCORS(cfg.CORSOrigins),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	authen := mid.Authenticate(cfg.Logger, cfg.Repositories.Sessions, cfg.Repositories.Users)

	root := app.Group("")

	authbridge.AddHttpRoutes(root, authbridge.Config{
		Log:          cfg.Logger,
		Users:        cfg.Repositories.Users,
		Sessions:     cfg.Repositories.Sessions,
		Authenticate: authen,
	})

	tasksrepobridge.AddHttpRoutes(root, tasksrepobridge.Config{
		Log:          cfg.Logger,
		Repository:   cfg.Repositories.Tasks,
		Authenticate: authen,
	})

	checkbridge.AddHttpRoutes(root, checkbridge.Config{
		Log:  cfg.Logger,
		Pool: cfg.Pool,
	})

	return app
}

// sweepSessions deletes expired session rows on a ticker until the context
// is canceled.
func sweepSessions(ctx context.Context, log *logger.Logger, sessions *sessionsrepo.Repository) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			count, err := sessions.DeleteExpired(ctx)
			if err != nil {
				log.ErrorContext(ctx, "session sweep", "err", err)
				continue
			}
			if count > 0 {
				log.InfoContext(ctx, "session sweep", "deleted", count)
			}
		}
	}
}
