// Package mid provides app level middleware support.
package mid

import (
	"context"
	"errors"

	"github.com/taskward/taskward/core/repositories/sessionsrepo"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/infrastructure/web"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "task_session"

type ctxKey int

const (
	userKey ctxKey = iota + 1
	sessionKey
)

func setUser(ctx context.Context, user usersrepo.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated user from the context.
func GetUser(ctx context.Context) (usersrepo.User, error) {
	v, ok := ctx.Value(userKey).(usersrepo.User)
	if !ok {
		return usersrepo.User{}, errors.New("user not found in context")
	}

	return v, nil
}

func setSession(ctx context.Context, session sessionsrepo.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession returns the active session from the context. Logout needs the
// token to delete the right row.
func GetSession(ctx context.Context) (sessionsrepo.Session, error) {
	v, ok := ctx.Value(sessionKey).(sessionsrepo.Session)
	if !ok {
		return sessionsrepo.Session{}, errors.New("session not found in context")
	}

	return v, nil
}

// isError tests if the Encoder has an error inside of it.
func isError(e web.Encoder) error {
	err, isError := e.(error)
	if isError {
		return err
	}
	return nil
}
