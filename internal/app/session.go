package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/screenline/cinebook/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserId = sessionKey("userID")
	SessionKeyRole   = sessionKey("role")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const (
	identityContextKey = contextKey("identity")
	loggerContextKey   = contextKey("logger")
)

// identity is the authenticated caller of a request.
type identity struct {
	UserID int
	Role   domain.Role
}

func (i identity) isAdmin() bool {
	return i.Role == domain.RoleAdmin
}

func (app *Application) contextSetIdentity(r *http.Request, id identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityContextKey, id)
	return r.WithContext(ctx)
}

func (app *Application) contextGetIdentity(r *http.Request) identity {
	id, ok := r.Context().Value(identityContextKey).(identity)
	if !ok {
		panic("missing identity from context")
	}

	return id
}

func (app *Application) contextGetUserId(r *http.Request) int {
	return app.contextGetIdentity(r).UserID
}

// contextGetLogger returns the request scoped logger, or the application
// logger outside of logRequest.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
