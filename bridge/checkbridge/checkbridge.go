// Package checkbridge provides liveness and readiness endpoints.
package checkbridge

import (
	"context"
	"net/http"

	"github.com/taskward/taskward/bridge/scaffolding/errs"
	"github.com/taskward/taskward/bridge/scaffolding/fopbridge"
	"github.com/taskward/taskward/infrastructure/postgresdb"
	"github.com/taskward/taskward/infrastructure/web"
	"github.com/taskward/taskward/sdk/logger"
)

// Config holds configuration for the check bridge.
type Config struct {
	Log  *logger.Logger
	Pool *postgresdb.Pool
}

type bridge struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// AddHttpRoutes registers the health routes. They stay outside any
// authentication.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := &bridge{
		log:  cfg.Log,
		pool: cfg.Pool,
	}

	group.GET("/healthz", b.httpHealthz)
}

func (b *bridge) httpHealthz(ctx context.Context, r *http.Request) web.Encoder {
	if err := postgresdb.StatusCheck(ctx, b.pool); err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return fopbridge.NewMessageResponse("ok")
}
