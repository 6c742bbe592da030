// Package authbridge contains the HTTP handlers for registration, login,
// and logout.
package authbridge

import (
	"github.com/taskward/taskward/core/repositories/sessionsrepo"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/infrastructure/web"
	"github.com/taskward/taskward/sdk/logger"
)

// Config holds configuration for the auth bridge.
type Config struct {
	Log          *logger.Logger
	Users        *usersrepo.Repository
	Sessions     *sessionsrepo.Repository
	Authenticate web.Middleware
}

type bridge struct {
	log      *logger.Logger
	users    *usersrepo.Repository
	sessions *sessionsrepo.Repository
}

func newBridge(cfg Config) *bridge {
	return &bridge{
		log:      cfg.Log,
		users:    cfg.Users,
		sessions: cfg.Sessions,
	}
}

// AddHttpRoutes registers the auth HTTP routes. Logout requires an active
// session; register and login are public.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)

	group.POST("/register", b.httpRegister)
	group.POST("/login", b.httpLogin)
	group.GET("/logout", b.httpLogout, cfg.Authenticate)
}
