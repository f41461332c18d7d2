package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/screenline/cinebook/api"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/mailer"
	"github.com/screenline/cinebook/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTicketPrice = 200

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env: "test",
			Booking: BookingConfig{
				TicketPrice: decimal.NewFromInt(testTicketPrice),
			},
		},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:         mailer.NewMockMailer(),
		sessionManager: scs.New(),
		posters:        domain.NewPosterCatalog(nil),
		metrics:        newBookingMetrics(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession loads an empty session into the request and stores the user in it.
func setupTestSession(t *testing.T, app *Application, r *http.Request, userId int, role domain.Role) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "")
	require.NoError(t, err)

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)
	app.sessionManager.Put(ctx, SessionKeyRole.String(), string(role))

	return r.WithContext(ctx)
}

// executeRequest builds a request and a recorder. A string body is sent as is,
// anything else is encoded as JSON.
func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}

	r := httptest.NewRequest(method, url, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	return httptest.NewRecorder(), r
}

// serve dispatches the request through the generated router so path and query
// parameters are bound as in production.
func serve(app *Application, w http.ResponseWriter, r *http.Request) {
	handler := api.HandlerWithOptions(app, api.ChiServerOptions{
		ErrorHandlerFunc: app.invalidParamResponse,
	})

	handler.ServeHTTP(w, r)
}

func withIdentity(app *Application, r *http.Request, userId int, role domain.Role) *http.Request {
	return app.contextSetIdentity(r, identity{UserID: userId, Role: role})
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

// checkErrorResponse asserts the status code and, for error statuses, the
// message. For 422 responses wantErrMessage must be one of the reported issues.
func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	require.Equal(t, wantStatus, w.Code)

	if wantStatus < http.StatusBadRequest || wantErrMessage == "" {
		return
	}

	if wantStatus == http.StatusUnprocessableEntity {
		resp := decodeResponse[api.ValidationErrorResponse](t, w)

		issues := make([]string, len(resp.ValidationErrors))
		for i, vErr := range resp.ValidationErrors {
			issues[i] = vErr.Issue
		}

		assert.Contains(t, issues, wantErrMessage)
		return
	}

	resp := decodeResponse[api.ErrorResponse](t, w)
	assert.Equal(t, wantErrMessage, resp.Message)
}

func ptr[T any](v T) *T {
	return &v
}
