package usersrepo

import "time"

// User is an account holder. PasswordHash never leaves the bridge layer
// unserialized.
type User struct {
	UserID       string    `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// CreateUser contains the fields for creating a new user. IsAdmin is set only
// at creation.
type CreateUser struct {
	Username     string
	PasswordHash string
	IsAdmin      bool
}
