// Package tasksrepo manages task records. Every read and write except the
// admin listing is scoped to the owning user.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskward/taskward/core/scaffolding/fop"
	"github.com/taskward/taskward/sdk/logger"
)

// Set of error values for CRUD operations on the task resource. A task owned
// by someone else is reported as not found, never as forbidden.
var (
	ErrNotFound = errors.New("task not found")
)

type Storer interface {
	Create(ctx context.Context, input CreateTask) (Task, error)
	Get(ctx context.Context, taskID string, ownerID string) (Task, error)
	List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Task, error)
	Update(ctx context.Context, taskID string, ownerID string, updates UpdateTask) (Task, error)
	Delete(ctx context.Context, taskID string, ownerID string) (Task, error)
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

func (r *Repository) Create(ctx context.Context, input CreateTask) (Task, error) {
	if input.Status == "" {
		input.Status = StatusPending
	}

	record, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	return record, nil
}

// Get retrieves a task by ID if it belongs to ownerID.
func (r *Repository) Get(ctx context.Context, taskID string, ownerID string) (Task, error) {
	record, err := r.storer.Get(ctx, taskID, ownerID)
	if err != nil {
		return Task{}, fmt.Errorf("task repository get: %w", err)
	}

	return record, nil
}

// List retrieves tasks matching the filter, ordered and paginated. An empty
// page is a valid result, not an error.
func (r *Repository) List(ctx context.Context, filter QueryFilter, orderBy fop.By, page fop.Page) ([]Task, error) {
	records, err := r.storer.List(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("task repository list: %w", err)
	}

	return records, nil
}

// Update applies a partial update to a task owned by ownerID and returns the
// updated record.
func (r *Repository) Update(ctx context.Context, taskID string, ownerID string, updates UpdateTask) (Task, error) {
	record, err := r.storer.Update(ctx, taskID, ownerID, updates)
	if err != nil {
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}

	return record, nil
}

// Delete removes a task owned by ownerID and returns the deleted record.
func (r *Repository) Delete(ctx context.Context, taskID string, ownerID string) (Task, error) {
	record, err := r.storer.Delete(ctx, taskID, ownerID)
	if err != nil {
		return Task{}, fmt.Errorf("task repository delete: %w", err)
	}

	return record, nil
}
