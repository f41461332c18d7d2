package app

import (
	"context"
	"errors"
	"net/http"
	"testing"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/screenline/cinebook/api"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/mocks"
	"github.com/screenline/cinebook/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		createFunc     func(context.Context, *domain.User) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful registration",
			body: api.RegisterRequest{
				Username: "alice",
				Email:    ptr(openapi_types.Email("alice@example.com")),
				Password: "Secret123!",
			},
			createFunc: func(ctx context.Context, user *domain.User) error {
				user.ID = 7
				return nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "invalid password",
			body:           api.RegisterRequest{Username: "alice", Password: "secret"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrInvalidPassword,
		},
		{
			name:           "invalid username characters",
			body:           api.RegisterRequest{Username: "al ice", Password: "Secret123!"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrInvalidUsername,
		},
		{
			name:           "invalid email",
			body:           `{"username": "alice", "email": "not-an-email", "password": "Secret123!"}`,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrInvalidEmail,
		},
		{
			name:           "unknown field",
			body:           `{"username": "alice", "password": "Secret123!", "admin": true}`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `body contains unknown key "admin"`,
		},
		{
			name: "username taken",
			body: api.RegisterRequest{Username: "alice", Password: "Secret123!"},
			createFunc: func(ctx context.Context, user *domain.User) error {
				return domain.ErrUserAlreadyExists
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: ErrUsernameTaken,
		},
		{
			name: "database error",
			body: api.RegisterRequest{Username: "alice", Password: "Secret123!"},
			createFunc: func(ctx context.Context, user *domain.User) error {
				return errors.New("connection refused")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *domain.User

			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{
					CreateFunc: func(ctx context.Context, user *domain.User) error {
						created = user
						return tt.createFunc(ctx, user)
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/users", tt.body)

			app.RegisterUser(w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus != http.StatusCreated {
				return
			}

			resp := decodeResponse[api.UserResponse](t, w)
			assert.Equal(t, 7, resp.Id)
			assert.Equal(t, "alice", resp.Username)
			assert.Equal(t, "customer", resp.Role)
			require.NotNil(t, resp.Email)
			assert.Equal(t, openapi_types.Email("alice@example.com"), *resp.Email)

			require.NotNil(t, created)
			assert.Equal(t, domain.RoleCustomer, created.Role)
			assert.Equal(t, ptr("alice@example.com"), created.Email)

			match, err := created.Password.Matches("Secret123!")
			require.NoError(t, err)
			assert.True(t, match)
		})
	}
}

func TestLogin(t *testing.T) {
	admin := &domain.User{ID: 3, Username: "root", Role: domain.RoleAdmin}
	require.NoError(t, admin.Password.Set("Secret123!"))

	tests := []struct {
		name              string
		body              any
		loggedInAs        int
		getByUsernameFunc func(context.Context, string) (*domain.User, error)
		wantStatus        int
		wantErrMessage    string
		wantUserId        int
		wantRole          string
	}{
		{
			name: "successful login stores the user and role",
			body: api.LoginRequest{Username: "root", Password: "Secret123!"},
			getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return admin, nil
			},
			wantStatus: http.StatusNoContent,
			wantUserId: 3,
			wantRole:   "admin",
		},
		{
			name:       "already logged in",
			body:       api.LoginRequest{Username: "root", Password: "Secret123!"},
			loggedInAs: 9,
			wantStatus: http.StatusOK,
			wantUserId: 9,
			wantRole:   "customer",
		},
		{
			name:           "missing password",
			body:           api.LoginRequest{Username: "root"},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			body: api.LoginRequest{Username: "nobody", Password: "Secret123!"},
			getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			body: api.LoginRequest{Username: "root", Password: "Wrong123!"},
			getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return admin, nil
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrInvalidCredentials,
		},
		{
			name: "database error",
			body: api.LoginRequest{Username: "root", Password: "Secret123!"},
			getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
				return nil, errors.New("connection refused")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{GetByUsernameFunc: tt.getByUsernameFunc}
			})

			w, r := executeRequest(t, http.MethodPost, "/sessions", tt.body)

			if tt.loggedInAs != 0 {
				r = setupTestSession(t, app, r, tt.loggedInAs, domain.RoleCustomer)
			}

			var gotUserId int
			var gotRole string

			handler := app.sessionManager.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				app.Login(w, r)

				gotUserId = app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
				gotRole = app.sessionManager.GetString(r.Context(), SessionKeyRole.String())
			}))
			handler.ServeHTTP(w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			assert.Equal(t, tt.wantUserId, gotUserId)
			assert.Equal(t, tt.wantRole, gotRole)

			if tt.wantStatus == http.StatusOK {
				resp := decodeResponse[api.AlreadyLoggedInResponse](t, w)
				assert.Equal(t, "You are already logged in", resp.Message)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name           string
		loggedIn       bool
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "destroys the session",
			loggedIn:   true,
			wantStatus: http.StatusNoContent,
		},
		{
			name:           "no session",
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication()

			w, r := executeRequest(t, http.MethodDelete, "/sessions", nil)

			if tt.loggedIn {
				r = setupTestSession(t, app, r, 1, domain.RoleCustomer)
			}

			var remaining int

			handler := app.sessionManager.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				app.Logout(w, r)

				remaining = app.sessionManager.GetInt(r.Context(), SessionKeyUserId.String())
			}))
			handler.ServeHTTP(w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
			assert.Zero(t, remaining)
		})
	}
}
