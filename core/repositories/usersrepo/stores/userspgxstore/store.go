// Package userspgxstore implements the usersrepo.Storer interface against
// PostgreSQL.
package userspgxstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/infrastructure/postgresdb"
	"github.com/taskward/taskward/sdk/logger"
)

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

// Create inserts a new user.
func (s *Store) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	query := `INSERT INTO users (user_id, username, password_hash, is_admin)
		VALUES (@user_id, @username, @password_hash, @is_admin)
		RETURNING user_id, username, password_hash, is_admin, created_at`

	args := pgx.NamedArgs{
		"user_id":       uuid.NewString(),
		"username":      input.Username,
		"password_hash": input.PasswordHash,
		"is_admin":      input.IsAdmin,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, mapUserError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		return usersrepo.User{}, mapUserError(err)
	}

	return record, nil
}

// mapUserError translates the unique violation on users.username into the
// repository sentinel. pgx may surface it either from Query or from row
// collection.
func mapUserError(err error) error {
	err = postgresdb.HandlePgError(err)
	if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
		return usersrepo.ErrUsernameTaken
	}
	return err
}

// GetByID retrieves a single user by ID.
func (s *Store) GetByID(ctx context.Context, userID string) (usersrepo.User, error) {
	query := `SELECT user_id, username, password_hash, is_admin, created_at
		FROM users
		WHERE user_id = @user_id`

	args := pgx.NamedArgs{
		"user_id": userID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usersrepo.User{}, usersrepo.ErrNotFound
		}
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// GetByUsername retrieves a single user by username. Usernames are unique.
func (s *Store) GetByUsername(ctx context.Context, username string) (usersrepo.User, error) {
	query := `SELECT user_id, username, password_hash, is_admin, created_at
		FROM users
		WHERE username = @username`

	args := pgx.NamedArgs{
		"username": username,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usersrepo.User{}, usersrepo.ErrNotFound
		}
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}
