package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/repository"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":     {},
	"requestId":     {},
	"createdAt":     {},
	"reference":     {},
	"startsAt":      {},
	"showtimeStart": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(&cookie)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}

		cleanValue(m[k])
	}
}

func cleanValue(v any) {
	switch value := v.(type) {
	case map[string]any:
		cleanMap(value)
	case []any:
		for _, item := range value {
			cleanValue(item)
		}
	}
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

func jsonBody(format string, args ...any) io.Reader {
	return strings.NewReader(fmt.Sprintf(format, args...))
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func ptr[T any](v T) *T {
	return &v
}

func (s *BaseSuite) createUser(username string, email *string) int {
	user := domain.User{
		Username: username,
		Email:    email,
		Role:     domain.RoleCustomer,
	}
	s.Require().NoError(user.Password.Set(TestUserPassword))

	err := repository.NewPostgresUserRepository(s.app.DB).Create(context.Background(), &user)
	s.Require().NoError(err)

	return user.ID
}

func (s *BaseSuite) userId(username string) int {
	user, err := repository.NewPostgresUserRepository(s.app.DB).GetByUsername(context.Background(), username)
	s.Require().NoError(err)

	return user.ID
}

// login signs in through the API and returns the session cookie.
func (s *BaseSuite) login(username, password string) http.Cookie {
	req, err := prepareRequest(http.MethodPost, "/sessions",
		jsonBody(`{"username": %q, "password": %q}`, username, password), nil, nil)
	s.Require().NoError(err)

	rec := httptest.NewRecorder()
	s.app.Handler.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session_id" {
			return *cookie
		}
	}

	s.FailNow("login did not set a session cookie")
	return http.Cookie{}
}

// resetCatalogue drops every movie, theatre, showtime and booking together
// with cached seat maps, then seeds one movie playing in one theatre at an
// upcoming and a past showtime.
func (s *BaseSuite) resetCatalogue() {
	ctx := context.Background()

	_, err := s.app.DB.Exec(ctx, `TRUNCATE movies, theatres, showtimes, bookings, booking_seats RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)

	keys, err := s.app.Redis.Keys(ctx, "seatmap:*").Result()
	s.Require().NoError(err)
	if len(keys) > 0 {
		s.Require().NoError(s.app.Redis.Del(ctx, keys...).Err())
	}

	_, err = s.app.DB.Exec(ctx, `
		INSERT INTO movies (title, director, release_year, genre, rating, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, TestMovieTitle, TestMovieDirector, TestMovieReleaseYear, TestMovieGenre, TestMovieRating, TestMoviePosterUrl)
	s.Require().NoError(err)

	_, err = s.app.DB.Exec(ctx, `INSERT INTO theatres (name, location) VALUES ($1, 'Main Street 1')`, TestTheatreName)
	s.Require().NoError(err)

	_, err = s.app.DB.Exec(ctx, `
		INSERT INTO showtimes (movie_id, theatre_id, screen, starts_at, total_seats)
		VALUES ($1, $2, 'Screen 1', $3, $5), ($1, $2, 'Screen 2', $4, $5)
	`, TestMovieId, TestTheatreId, TestUpcomingStart, TestPastStart, TestTotalSeats)
	s.Require().NoError(err)
}

func (s *BaseSuite) reserve(userId, showtimeId int, seats ...int) *domain.Booking {
	booking, err := s.app.Bookings.Reserve(context.Background(), showtimeId, userId, seats)
	s.Require().NoError(err)

	return booking
}

// bookedSeats reads the taken seats of a showtime straight from the database.
func bookedSeats(t testing.TB, app *TestApp, showtimeId int) []int {
	rows, err := app.DB.Query(context.Background(),
		`SELECT seat_number FROM booking_seats WHERE showtime_id = $1 ORDER BY seat_number`, showtimeId)
	require.NoError(t, err)
	defer rows.Close()

	seats := []int{}
	for rows.Next() {
		var seat int
		require.NoError(t, rows.Scan(&seat))
		seats = append(seats, seat)
	}
	require.NoError(t, rows.Err())

	return seats
}

func seatRange(from, to int) []int {
	seats := make([]int, 0, to-from+1)
	for seat := from; seat <= to; seat++ {
		seats = append(seats, seat)
	}
	return seats
}
