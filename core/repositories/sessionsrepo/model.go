package sessionsrepo

import "time"

// Session is a server-side login session. The token is the opaque value
// carried in the session cookie.
type Session struct {
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// CreateSession contains the fields for persisting a new session.
type CreateSession struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}
