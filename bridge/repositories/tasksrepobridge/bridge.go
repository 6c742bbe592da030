// Package tasksrepobridge contains the HTTP handlers for task CRUD and the
// composed task listing.
package tasksrepobridge

import (
	"github.com/taskward/taskward/core/repositories/tasksrepo"
	"github.com/taskward/taskward/infrastructure/web"
	"github.com/taskward/taskward/sdk/logger"
)

// Config holds configuration for the task bridge.
type Config struct {
	Log          *logger.Logger
	Repository   *tasksrepo.Repository
	Authenticate web.Middleware
}

type bridge struct {
	log            *logger.Logger
	taskRepository *tasksrepo.Repository
}

func newBridge(cfg Config) *bridge {
	return &bridge{
		log:            cfg.Log,
		taskRepository: cfg.Repository,
	}
}

// AddHttpRoutes registers all task HTTP routes. Every route requires an
// authenticated session.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg)

	group.GET("/tasks", b.httpList, cfg.Authenticate)
	group.GET("/tasks/{task_id}", b.httpGetByID, cfg.Authenticate)
	group.POST("/tasks", b.httpCreate, cfg.Authenticate)
	group.PUT("/tasks/{task_id}", b.httpUpdate, cfg.Authenticate)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Authenticate)
}
