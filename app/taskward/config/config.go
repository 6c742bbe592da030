package config

import (
	"github.com/taskward/taskward/core/repositories/sessionsrepo"
	"github.com/taskward/taskward/core/repositories/tasksrepo"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/infrastructure/postgresdb"
	"github.com/taskward/taskward/sdk/logger"
	"github.com/taskward/taskward/sdk/telemetry"
)

// Repositories holds the repositories this instance of taskward wires into
// its HTTP bridges.
type Repositories struct {
	Users    *usersrepo.Repository
	Sessions *sessionsrepo.Repository
	Tasks    *tasksrepo.Repository
}

// Taskward is the overall configuration for the taskward application.
type Taskward struct {
	Build  string
	Logger *logger.Logger

	Repositories Repositories
	Telemetry    telemetry.Telemetry
	Pool         *postgresdb.Pool
	CORSOrigins  []string
}
