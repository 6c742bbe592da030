package authbridge

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskward/taskward/bridge/scaffolding/errs"
	"github.com/taskward/taskward/bridge/scaffolding/fopbridge"
	"github.com/taskward/taskward/bridge/scaffolding/mid"
	"github.com/taskward/taskward/core/repositories/usersrepo"
	"github.com/taskward/taskward/infrastructure/web"
)

func (b *bridge) httpRegister(ctx context.Context, r *http.Request) web.Encoder {
	var req RegisterRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	_, err = b.users.Create(ctx, usersrepo.CreateUser{
		Username:     req.Username,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, usersrepo.ErrUsernameTaken) {
			return errs.Newf(errs.Conflict, "username already taken")
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return fopbridge.NewMessageResponse("User registered successfully")
}

func (b *bridge) httpLogin(ctx context.Context, r *http.Request) web.Encoder {
	var req LoginRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	// An unknown username and a bad password answer identically so the
	// response never reveals whether the username exists.
	user, err := b.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, usersrepo.ErrNotFound) {
			return errs.Newf(errs.Unauthenticated, "invalid credentials")
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return errs.Newf(errs.Unauthenticated, "invalid credentials")
	}

	session, err := b.sessions.Create(ctx, user.UserID)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	w := web.GetWriter(ctx)
	http.SetCookie(w, &http.Cookie{
		Name:     mid.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return fopbridge.NewMessageResponse("Logged in successfully")
}

func (b *bridge) httpLogout(ctx context.Context, r *http.Request) web.Encoder {
	session, err := mid.GetSession(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	if err := b.sessions.Delete(ctx, session.Token); err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	w := web.GetWriter(ctx)
	http.SetCookie(w, &http.Cookie{
		Name:     mid.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return fopbridge.NewMessageResponse("Logged out successfully")
}
