package tasksrepo

import "github.com/taskward/taskward/core/scaffolding/fop"

// QueryFilter holds the available fields a task list query can be filtered
// on. A nil UserID means no ownership scoping (admin listing).
type QueryFilter struct {
	UserID *string
	Status *string
}

// Set of storage columns task listings can be ordered by.
const (
	OrderByTitle       = "title"
	OrderByDescription = "description"
	OrderByStatus      = "status"
	OrderByCreatedAt   = "created_at"
	OrderByUpdatedAt   = "updated_at"
)

// DefaultOrderBy is insertion order.
func DefaultOrderBy() fop.By {
	return fop.NewBy(OrderByCreatedAt, fop.ASC)
}
