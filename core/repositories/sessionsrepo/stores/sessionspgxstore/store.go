// Package sessionspgxstore implements the sessionsrepo.Storer interface
// against PostgreSQL.
package sessionspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/taskward/taskward/core/repositories/sessionsrepo"
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

// Create inserts a new session.
func (s *Store) Create(ctx context.Context, input sessionsrepo.CreateSession) (sessionsrepo.Session, error) {
	query := `INSERT INTO user_sessions (token, user_id, expires_at)
		VALUES (@token, @user_id, @expires_at)
		RETURNING token, user_id, created_at, expires_at`

	args := pgx.NamedArgs{
		"token":      input.Token,
		"user_id":    input.UserID,
		"expires_at": input.ExpiresAt,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return sessionsrepo.Session{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[sessionsrepo.Session])
	if err != nil {
		return sessionsrepo.Session{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Get retrieves a session by token.
func (s *Store) Get(ctx context.Context, token string) (sessionsrepo.Session, error) {
	query := `SELECT token, user_id, created_at, expires_at
		FROM user_sessions
		WHERE token = @token`

	args := pgx.NamedArgs{
		"token": token,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return sessionsrepo.Session{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[sessionsrepo.Session])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sessionsrepo.Session{}, sessionsrepo.ErrNotFound
		}
		return sessionsrepo.Session{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Delete removes a session by token.
func (s *Store) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM user_sessions WHERE token = @token`

	args := pgx.NamedArgs{
		"token": token,
	}

	result, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if result.RowsAffected() == 0 {
		return sessionsrepo.ErrNotFound
	}

	return nil
}

// DeleteExpired removes all sessions past their expiry and reports how many
// were removed.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM user_sessions WHERE expires_at < now()`

	result, err := s.pool.Exec(ctx, query)
	if err != nil {
		return 0, postgresdb.HandlePgError(err)
	}

	return result.RowsAffected(), nil
}
