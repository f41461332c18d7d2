package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/screenline/cinebook/api"
	"github.com/screenline/cinebook/internal/booking/bookingtest"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/mailer"
	"github.com/screenline/cinebook/internal/mocks"
	"github.com/screenline/cinebook/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name           string
		showtimeId     string
		body           any
		reserves       bool
		reserveErr     error
		wantStatus     int
		wantErrMessage string
		wantConflicts  []int
	}{
		{
			name:       "reserves the seats",
			showtimeId: "3",
			body:       api.CreateBookingRequest{Seats: []int{4, 5}},
			reserves:   true,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "invalid showtime id",
			showtimeId:     "third",
			body:           api.CreateBookingRequest{Seats: []int{4}},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid showtimeId parameter",
		},
		{
			name:           "missing seats",
			showtimeId:     "3",
			body:           `{}`,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "malformed body",
			showtimeId:     "3",
			body:           `{"seats": [4,`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body contains badly-formed JSON",
		},
		{
			name:           "seat outside the showtime",
			showtimeId:     "3",
			body:           api.CreateBookingRequest{Seats: []int{41}},
			reserves:       true,
			reserveErr:     fmt.Errorf("%w: seat 41 is outside the range 1-40", domain.ErrInvalidSeatRequest),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid seat request: seat 41 is outside the range 1-40",
		},
		{
			name:           "unknown showtime",
			showtimeId:     "3",
			body:           api.CreateBookingRequest{Seats: []int{4}},
			reserves:       true,
			reserveErr:     domain.ErrShowtimeNotFound,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "seats already booked",
			showtimeId:     "3",
			body:           api.CreateBookingRequest{Seats: []int{4, 5}},
			reserves:       true,
			reserveErr:     &domain.SeatConflictError{ShowtimeID: 3, Seats: []int{5}},
			wantStatus:     http.StatusConflict,
			wantErrMessage: ErrSeatsTaken,
			wantConflicts:  []int{5},
		},
		{
			name:           "gives up under contention",
			showtimeId:     "3",
			body:           api.CreateBookingRequest{Seats: []int{4}},
			reserves:       true,
			reserveErr:     fmt.Errorf("failed to lock showtime: %w", domain.ErrConcurrentUpdate),
			wantStatus:     http.StatusConflict,
			wantErrMessage: ErrBookingContention,
		},
		{
			name:           "storage failure",
			showtimeId:     "3",
			body:           api.CreateBookingRequest{Seats: []int{4}},
			reserves:       true,
			reserveErr:     errors.New("connection reset"),
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(mocks.MockBookingService)

			if tt.reserves {
				seats := tt.body.(api.CreateBookingRequest).Seats

				if tt.reserveErr != nil {
					bookings.On("Reserve", mock.Anything, 3, 8, seats).Return(nil, tt.reserveErr)
				} else {
					booking := domain.NewBooking(8, 3, seats)
					booking.ID = 12
					bookings.On("Reserve", mock.Anything, 3, 8, seats).Return(booking, nil)
				}
			}

			app := newTestApplication(func(a *Application) {
				a.bookings = bookings
				a.userRepo = &mocks.MockUserRepo{
					GetByIdFunc: func(ctx context.Context, id int) (*domain.User, error) {
						return &domain.User{ID: id, Username: "bob"}, nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/showtimes/"+tt.showtimeId+"/bookings", tt.body)
			r = withIdentity(app, r, 8, domain.RoleCustomer)

			serve(app, w, r)
			app.wg.Wait()

			bookings.AssertExpectations(t)

			if tt.wantConflicts != nil {
				require.Equal(t, tt.wantStatus, w.Code)

				resp := decodeResponse[api.SeatConflictResponse](t, w)
				assert.Equal(t, tt.wantErrMessage, resp.Message)
				assert.Equal(t, tt.wantConflicts, resp.ConflictingSeats)
				return
			}

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus != http.StatusCreated {
				return
			}

			assert.Equal(t, "/users/me/bookings/12/ticket", w.Header().Get("Location"))

			resp := decodeResponse[api.BookingResponse](t, w)
			assert.Equal(t, 12, resp.Id)
			assert.Equal(t, 3, resp.ShowtimeId)
			assert.Equal(t, []int{4, 5}, resp.Seats)
			assert.Equal(t, "400", resp.TotalPrice.String())

			// bob has no email address
			assert.Empty(t, app.mailer.(*mailer.MockMailer).GetSentEmails())
		})
	}
}

func TestCreateBookingSendsConfirmation(t *testing.T) {
	startsAt := time.Date(2030, 5, 1, 18, 0, 0, 0, time.UTC)

	booking := domain.NewBooking(8, 3, []int{4, 5})
	booking.ID = 12

	bookings := new(mocks.MockBookingService)
	bookings.On("Reserve", mock.Anything, 3, 8, []int{5, 4}).Return(booking, nil)

	showtimeRepo := new(mocks.MockShowtimeRepo)
	showtimeRepo.On("GetById", mock.Anything, 3).Return(&domain.Showtime{ID: 3, MovieID: 1, StartsAt: startsAt}, nil)

	movieRepo := new(mocks.MockMovieRepo)
	movieRepo.On("GetById", mock.Anything, 1).Return(&domain.Movie{ID: 1, Title: "Heat"}, nil)

	mockMailer := mailer.NewMockMailer()

	app := newTestApplication(func(a *Application) {
		a.bookings = bookings
		a.showtimeRepo = showtimeRepo
		a.movieRepo = movieRepo
		a.mailer = mockMailer
		a.userRepo = &mocks.MockUserRepo{
			GetByIdFunc: func(ctx context.Context, id int) (*domain.User, error) {
				return &domain.User{ID: id, Username: "alice", Email: ptr("alice@example.com")}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodPost, "/showtimes/3/bookings", api.CreateBookingRequest{Seats: []int{5, 4}})
	r = withIdentity(app, r, 8, domain.RoleCustomer)

	serve(app, w, r)
	app.wg.Wait()

	require.Equal(t, http.StatusCreated, w.Code)

	emails := mockMailer.GetSentEmails()
	require.Len(t, emails, 1)
	assert.Equal(t, "alice@example.com", emails[0].Recipient)
	assert.Equal(t, "booking_confirmation.tmpl", emails[0].TemplateFile)

	data, ok := emails[0].Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", data["username"])
	assert.Equal(t, booking.Reference.String(), data["reference"])
	assert.Equal(t, []int{4, 5}, data["seats"])
	assert.Equal(t, "400.00", data["totalPrice"])
	assert.Equal(t, "Heat", data["movieTitle"])
	assert.Equal(t, startsAt, data["startsAt"])
}

func TestGetSeatMap(t *testing.T) {
	tests := []struct {
		name           string
		seatMap        *domain.SeatMap
		seatMapErr     error
		wantStatus     int
		wantErrMessage string
		wantResponse   api.SeatMapResponse
	}{
		{
			name:       "partially booked showtime",
			seatMap:    domain.NewSeatMap(3, 5, []int{4, 2}),
			wantStatus: http.StatusOK,
			wantResponse: api.SeatMapResponse{
				ShowtimeId:     3,
				TotalSeats:     5,
				BookedSeats:    []int{2, 4},
				FreeSeats:      []int{1, 3, 5},
				AvailableSeats: 3,
			},
		},
		{
			name:       "empty showtime",
			seatMap:    domain.NewSeatMap(3, 2, nil),
			wantStatus: http.StatusOK,
			wantResponse: api.SeatMapResponse{
				ShowtimeId:     3,
				TotalSeats:     2,
				BookedSeats:    []int{},
				FreeSeats:      []int{1, 2},
				AvailableSeats: 2,
			},
		},
		{
			name:           "unknown showtime",
			seatMapErr:     domain.ErrShowtimeNotFound,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(mocks.MockBookingService)
			if tt.seatMapErr != nil {
				bookings.On("SeatMap", mock.Anything, 3).Return(nil, tt.seatMapErr)
			} else {
				bookings.On("SeatMap", mock.Anything, 3).Return(tt.seatMap, nil)
			}

			app := newTestApplication(func(a *Application) {
				a.bookings = bookings
			})

			w, r := executeRequest(t, http.MethodGet, "/showtimes/3/seats", nil)

			serve(app, w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
			bookings.AssertExpectations(t)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantResponse, decodeResponse[api.SeatMapResponse](t, w))
			}
		})
	}
}

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		name           string
		cancelErr      error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "cancels own booking",
			wantStatus: http.StatusNoContent,
		},
		{
			name:           "booking of another user",
			cancelErr:      domain.ErrForbidden,
			wantStatus:     http.StatusForbidden,
			wantErrMessage: ErrForbiddenAccess,
		},
		{
			name:           "unknown booking",
			cancelErr:      domain.ErrBookingNotFound,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(mocks.MockBookingService)
			bookings.On("Cancel", mock.Anything, 21, 8).Return(tt.cancelErr)

			app := newTestApplication(func(a *Application) {
				a.bookings = bookings
			})

			w, r := executeRequest(t, http.MethodDelete, "/users/me/bookings/21", nil)
			r = withIdentity(app, r, 8, domain.RoleCustomer)

			serve(app, w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
			bookings.AssertExpectations(t)
		})
	}
}

func TestCancelPastBookings(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		deleted        int
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "removes past bookings",
			body:       api.CancelPastBookingsRequest{BookingIds: []int{1, 2, 3}},
			deleted:    2,
			wantStatus: http.StatusOK,
		},
		{
			name:           "no ids",
			body:           api.CancelPastBookingsRequest{BookingIds: []int{}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must contain at least 1 items",
		},
		{
			name:           "non positive id",
			body:           api.CancelPastBookingsRequest{BookingIds: []int{1, -2}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(mocks.MockBookingService)
			if tt.wantStatus == http.StatusOK {
				ids := tt.body.(api.CancelPastBookingsRequest).BookingIds
				bookings.On("CancelPast", mock.Anything, 8, ids).Return(tt.deleted, nil)
			}

			app := newTestApplication(func(a *Application) {
				a.bookings = bookings
			})

			w, r := executeRequest(t, http.MethodPost, "/users/me/bookings/purge", tt.body)
			r = withIdentity(app, r, 8, domain.RoleCustomer)

			app.CancelPastBookings(w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
			bookings.AssertExpectations(t)

			if tt.wantStatus == http.StatusOK {
				resp := decodeResponse[api.CancelPastBookingsResponse](t, w)
				assert.Equal(t, tt.deleted, resp.Deleted)
			}
		})
	}
}

func TestGetUserBookings(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		wantFilters    *domain.BookingFilters
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:        "defaults",
			url:         "/users/me/bookings",
			wantFilters: &domain.BookingFilters{Pagination: domain.Pagination{Page: 1, PageSize: 10}},
			wantStatus:  http.StatusOK,
		},
		{
			name:        "filtered by month",
			url:         "/users/me/bookings?month=2025-03&page=2&pageSize=5",
			wantFilters: &domain.BookingFilters{Pagination: domain.Pagination{Page: 2, PageSize: 5}, Month: "2025-03"},
			wantStatus:  http.StatusOK,
		},
		{
			name:           "malformed month",
			url:            "/users/me/bookings?month=2025-3",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrInvalidMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := new(mocks.MockBookingRepo)
			if tt.wantFilters != nil {
				summaries := []domain.BookingSummary{
					{BookingID: 5, Username: "alice", MovieTitle: "Heat", Seats: []int{1, 2}},
				}
				metadata := domain.NewMetadata(1, tt.wantFilters.Page, tt.wantFilters.PageSize)

				bookingRepo.On("GetSummariesByUserId", mock.Anything, 8, *tt.wantFilters).Return(summaries, metadata, nil)
				bookingRepo.On("GetBookingMonthsByUserId", mock.Anything, 8).Return(nil, nil)
			}

			app := newTestApplication(func(a *Application) {
				a.bookingRepo = bookingRepo
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)
			r = withIdentity(app, r, 8, domain.RoleCustomer)

			serve(app, w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)
			bookingRepo.AssertExpectations(t)

			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := decodeResponse[api.UserBookingsResponse](t, w)
			require.Len(t, resp.Bookings, 1)
			assert.Equal(t, 5, resp.Bookings[0].Id)
			assert.Empty(t, resp.Bookings[0].Username)
			assert.Equal(t, []string{}, resp.Months)
		})
	}
}

func TestGetBookingTicket(t *testing.T) {
	ctx := context.Background()

	ledger := bookingtest.NewMemoryLedger()
	ledger.AddShowtime(domain.Showtime{ID: 3, StartsAt: time.Now().Add(time.Hour)})

	booking := domain.NewBooking(8, 3, []int{1, 2})
	err := ledger.InShowtimeTx(ctx, 3, func(ctx context.Context, tx domain.SeatLedgerTx) error {
		return tx.InsertBooking(ctx, booking)
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		bookingId      string
		userId         int
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "owner gets a png",
			bookingId:  fmt.Sprint(booking.ID),
			userId:     8,
			wantStatus: http.StatusOK,
		},
		{
			name:           "other user",
			bookingId:      fmt.Sprint(booking.ID),
			userId:         9,
			wantStatus:     http.StatusForbidden,
			wantErrMessage: ErrForbiddenAccess,
		},
		{
			name:           "unknown booking",
			bookingId:      "999",
			userId:         8,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.ledger = ledger
			})

			w, r := executeRequest(t, http.MethodGet, "/users/me/bookings/"+tt.bookingId+"/ticket", nil)
			r = withIdentity(app, r, tt.userId, domain.RoleCustomer)

			serve(app, w, r)

			checkErrorResponse(t, w, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
				assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
			}
		})
	}
}
