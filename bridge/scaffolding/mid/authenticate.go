package mid

import (
	"context"
	"net/http"

	"github.com/taskward/taskward/bridge/scaffolding/errs"
	"github.com/taskward/taskward/core/repositories/sessionsrepo"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/infrastructure/web"
	"github.com/taskward/taskward/sdk/logger"
)

// Authenticate resolves the session cookie to a user and attaches both the
// user and the session to the context. A missing, unknown, or expired
// session stops the chain with Unauthenticated; the handler never runs.
func Authenticate(log *logger.Logger, sessions *sessionsrepo.Repository, users *usersrepo.Repository) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				return errs.Newf(errs.Unauthenticated, "authentication required")
			}

			session, err := sessions.Get(ctx, cookie.Value)
			if err != nil {
				return errs.Newf(errs.Unauthenticated, "authentication required")
			}

			user, err := users.GetByID(ctx, session.UserID)
			if err != nil {
				log.ErrorContext(ctx, "session resolved to missing user", "user_id", session.UserID)
				return errs.Newf(errs.Unauthenticated, "authentication required")
			}

			ctx = setUser(ctx, user)
			ctx = setSession(ctx, session)

			return next(ctx, r)
		}
	}
}
