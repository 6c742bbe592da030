// Package taskspgxstore implements the tasksrepo.Storer interface against
// PostgreSQL.
package taskspgxstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/taskward/taskward/core/repositories/tasksrepo"
	"github.com/taskward/taskward/core/scaffolding/fop"
	"github.com/taskward/taskward/infrastructure/postgresdb"
	"github.com/taskward/taskward/sdk/logger"
)

const taskColumns = `task_id, title, description, status, user_id, created_at, updated_at`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Create inserts a new task.
func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	query := `INSERT INTO tasks (task_id, title, description, status, user_id)
		VALUES (@task_id, @title, @description, @status, @user_id)
		RETURNING ` + taskColumns

	args := pgx.NamedArgs{
		"task_id":     uuid.NewString(),
		"title":       input.Title,
		"description": input.Description,
		"status":      input.Status,
		"user_id":     input.UserID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Get retrieves a task by ID, scoped to its owner. A foreign task is
// indistinguishable from a missing one.
func (s *Store) Get(ctx context.Context, taskID string, ownerID string) (tasksrepo.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE task_id = @task_id AND user_id = @user_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
		"user_id": ownerID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// List retrieves tasks with filtering, ordering, and offset pagination. The
// clauses compose in a fixed order: WHERE, then ORDER BY, then LIMIT/OFFSET.
func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter, orderBy fop.By, page fop.Page) ([]tasksrepo.Task, error) {
	var buf bytes.Buffer
	buf.WriteString(`SELECT ` + taskColumns + ` FROM tasks`)

	args := pgx.NamedArgs{}
	applyFilter(&buf, args, filter)

	if err := postgresdb.AddOrderByClause(&buf, orderBy.Field, "task_id", orderBy.Direction); err != nil {
		return nil, fmt.Errorf("order by clause: %w", err)
	}

	postgresdb.AddLimitOffsetClause(&buf, args, page.Limit, page.Offset())

	rows, err := s.pool.Query(ctx, buf.String(), args)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

func applyFilter(buf *bytes.Buffer, args pgx.NamedArgs, filter tasksrepo.QueryFilter) {
	var conditions []string

	if filter.UserID != nil {
		conditions = append(conditions, "user_id = @user_id")
		args["user_id"] = *filter.UserID
	}

	if filter.Status != nil {
		conditions = append(conditions, "status = @status")
		args["status"] = *filter.Status
	}

	if len(conditions) > 0 {
		buf.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
}

// Update applies a partial update to a task owned by ownerID. updated_at is
// always refreshed, so an empty update still touches the row.
func (s *Store) Update(ctx context.Context, taskID string, ownerID string, updates tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	fields := []string{"updated_at = @updated_at"}
	args := pgx.NamedArgs{
		"task_id":    taskID,
		"user_id":    ownerID,
		"updated_at": time.Now(),
	}

	if updates.Title != nil {
		fields = append(fields, "title = @title")
		args["title"] = *updates.Title
	}
	if updates.Description != nil {
		fields = append(fields, "description = @description")
		args["description"] = *updates.Description
	}
	if updates.Status != nil {
		fields = append(fields, "status = @status")
		args["status"] = *updates.Status
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE task_id = @task_id AND user_id = @user_id RETURNING `+taskColumns,
		strings.Join(fields, ", "))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Delete removes a task owned by ownerID and returns the deleted record.
func (s *Store) Delete(ctx context.Context, taskID string, ownerID string) (tasksrepo.Task, error) {
	query := `DELETE FROM tasks
		WHERE task_id = @task_id AND user_id = @user_id
		RETURNING ` + taskColumns

	args := pgx.NamedArgs{
		"task_id": taskID,
		"user_id": ownerID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}
