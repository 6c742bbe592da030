// Package sessionsrepo manages server-side login sessions. Tokens are opaque
// random strings; an expired session behaves exactly like a missing one.
package sessionsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskward/taskward/sdk/cryptids"
	"github.com/taskward/taskward/sdk/logger"
)

// DefaultTTL is how long a session stays valid after login.
const DefaultTTL = 24 * time.Hour

// Set of error values for CRUD operations on the session resource.
var (
	ErrNotFound = errors.New("session not found")
)

type Storer interface {
	Create(ctx context.Context, input CreateSession) (Session, error)
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type Repository struct {
	log    *logger.Logger
	storer Storer
	ttl    time.Duration
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
		ttl:    DefaultTTL,
	}
}

// Create opens a new session for the user and returns it with a freshly
// generated token.
func (r *Repository) Create(ctx context.Context, userID string) (Session, error) {
	token, err := cryptids.GenerateToken()
	if err != nil {
		return Session{}, fmt.Errorf("session repository generate token: %w", err)
	}

	record, err := r.storer.Create(ctx, CreateSession{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(r.ttl),
	})
	if err != nil {
		return Session{}, fmt.Errorf("session repository create: %w", err)
	}

	return record, nil
}

// Get resolves a token to its session. Expired sessions are reported as
// ErrNotFound.
func (r *Repository) Get(ctx context.Context, token string) (Session, error) {
	record, err := r.storer.Get(ctx, token)
	if err != nil {
		return Session{}, fmt.Errorf("session repository get: %w", err)
	}

	if time.Now().After(record.ExpiresAt) {
		return Session{}, fmt.Errorf("session repository get: %w", ErrNotFound)
	}

	return record, nil
}

// Delete removes a session, logging the user out.
func (r *Repository) Delete(ctx context.Context, token string) error {
	if err := r.storer.Delete(ctx, token); err != nil {
		return fmt.Errorf("session repository delete: %w", err)
	}

	return nil
}

// DeleteExpired removes sessions past their expiry. Called by the background
// sweeper.
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	count, err := r.storer.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("session repository delete expired: %w", err)
	}

	return count, nil
}
