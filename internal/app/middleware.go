package app

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/screenline/cinebook/api"
	"github.com/screenline/cinebook/internal/domain"
	"go.opentelemetry.io/otel/trace"
)

const adminScope = "admin"

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// logRequest attaches a logger carrying the request and trace ids to the
// request context and logs every completed request.
func (app *Application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

		spanCtx := trace.SpanContextFromContext(r.Context())
		if spanCtx.HasTraceID() {
			logger = logger.With("trace_id", spanCtx.TraceID().String())
		}

		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId := app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
		if userId == 0 {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		role := domain.Role(app.sessionManager.GetString(r.Context(), SessionKeyRole.String()))
		if role == "" {
			role = domain.RoleCustomer
		}

		r = app.contextSetIdentity(r, identity{UserID: userId, Role: role})

		next.ServeHTTP(w, r)
	})
}

// requireAdmin must run after requireAuthentication.
func (app *Application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.contextGetIdentity(r).isAdmin() {
			app.contextGetLogger(r).Warn("non-admin tried to access admin resource", "path", r.URL.Path)
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authorize applies the security requirement the router attached to the
// matched operation. Operations without one are public.
func (app *Application) authorize(next http.Handler) http.Handler {
	authenticated := app.requireAuthentication(next)
	admin := app.requireAuthentication(app.requireAdmin(next))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scopes, ok := r.Context().Value(api.CookieAuthScopes).([]string)

		switch {
		case !ok:
			next.ServeHTTP(w, r)
		case slices.Contains(scopes, adminScope):
			admin.ServeHTTP(w, r)
		default:
			authenticated.ServeHTTP(w, r)
		}
	})
}
