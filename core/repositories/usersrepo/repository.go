package usersrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskward/taskward/sdk/logger"
)

// Set of error values for CRUD operations on the user resource.
var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type Storer interface {
	Create(ctx context.Context, input CreateUser) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
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

func (r *Repository) Create(ctx context.Context, input CreateUser) (User, error) {
	record, err := r.storer.Create(ctx, input)
	if err != nil {
		return User{}, fmt.Errorf("user repository create: %w", err)
	}

	return record, nil
}

func (r *Repository) GetByID(ctx context.Context, userID string) (User, error) {
	record, err := r.storer.GetByID(ctx, userID)
	if err != nil {
		return User{}, fmt.Errorf("user repository get by id: %w", err)
	}

	return record, nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (User, error) {
	record, err := r.storer.GetByUsername(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("user repository get by username: %w", err)
	}

	return record, nil
}
