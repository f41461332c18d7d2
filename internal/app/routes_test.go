package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionCookie commits a session for the user to the session store and
// returns the cookie a browser would send with it.
func sessionCookie(t *testing.T, app *Application, userId int, role domain.Role) *http.Cookie {
	ctx, err := app.sessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)
	app.sessionManager.Put(ctx, SessionKeyRole.String(), string(role))

	token, _, err := app.sessionManager.Commit(ctx)
	require.NoError(t, err)

	return &http.Cookie{Name: app.sessionManager.Cookie.Name, Value: token}
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		role           domain.Role
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "public operation without a session",
			method:     http.MethodGet,
			url:        "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:           "customer operation without a session",
			method:         http.MethodGet,
			url:            "/users/me/profile",
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:           "admin operation without a session",
			method:         http.MethodGet,
			url:            "/theatres",
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:           "admin operation as a customer",
			method:         http.MethodGet,
			url:            "/theatres",
			role:           domain.RoleCustomer,
			wantStatus:     http.StatusForbidden,
			wantErrMessage: ErrForbiddenAccess,
		},
		{
			name:       "admin operation as an admin",
			method:     http.MethodGet,
			url:        "/theatres",
			role:       domain.RoleAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:           "path parameter is not a number",
			method:         http.MethodGet,
			url:            "/showtimes/first/seats",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid showtimeId parameter",
		},
		{
			name:           "query parameter is not a number",
			method:         http.MethodGet,
			url:            "/movies?pageSize=ten",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "pageSize must be an integer value",
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			url:            "/screens",
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "unsupported method",
			method:         http.MethodPatch,
			url:            "/movies",
			wantStatus:     http.StatusMethodNotAllowed,
			wantErrMessage: ErrMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theatreRepo := new(mocks.MockTheatreRepo)
			theatreRepo.On("GetAll", mock.Anything).Return([]domain.Theatre{{ID: 1, Name: "Grand Hall"}}, nil).Maybe()

			app := newTestApplication(func(a *Application) {
				a.theatreRepo = theatreRepo
			})

			w, r := executeRequest(t, tt.method, tt.url, nil)
			if tt.role != "" {
				r.AddCookie(sessionCookie(t, app, 3, tt.role))
			}

			app.Routes().ServeHTTP(w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func TestGetOpenAPIDocument(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/openapi.json", nil)

	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	doc, err := openapi3.NewLoader().LoadFromData(w.Body.Bytes())
	require.NoError(t, err)

	reserve := doc.Paths.Value("/showtimes/{showtimeId}/bookings")
	require.NotNil(t, reserve)
	require.NotNil(t, reserve.Post)
	assert.Equal(t, "CreateBooking", reserve.Post.OperationID)

	require.NotNil(t, reserve.Post.Security)
	assert.Equal(t, openapi3.SecurityRequirements{{"cookieAuth": []string{}}}, *reserve.Post.Security)

	theatres := doc.Paths.Value("/theatres")
	require.NotNil(t, theatres)
	require.NotNil(t, theatres.Get)
	require.NotNil(t, theatres.Get.Security)
	assert.Equal(t, openapi3.SecurityRequirements{{"cookieAuth": []string{"admin"}}}, *theatres.Get.Security)

	seats := doc.Paths.Value("/showtimes/{showtimeId}/seats")
	require.NotNil(t, seats)
	require.NotNil(t, seats.Get)
	assert.Nil(t, seats.Get.Security)
}
