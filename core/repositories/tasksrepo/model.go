package tasksrepo

import "time"

// StatusPending is the status a task gets when none is supplied. Status is
// otherwise a free-form string the service never interprets.
const StatusPending = "pending"

// Task is a single tracked work item owned by one user.
type Task struct {
	TaskID      string    `db:"task_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	UserID      string    `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CreateTask contains the fields for creating a new task. UserID is the
// owner and is immutable after creation.
type CreateTask struct {
	Title       string
	Description string
	Status      string
	UserID      string
}

// UpdateTask contains the fields a task owner may change. All fields are
// optional to support partial updates. Ownership and timestamps are managed
// by the store.
type UpdateTask struct {
	Title       *string
	Description *string
	Status      *string
}
