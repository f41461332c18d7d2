package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID         int
	Reference  uuid.UUID
	UserID     int
	ShowtimeID int
	Seats      []int
	CreatedAt  time.Time
}

func NewBooking(userID, showtimeID int, seats []int) *Booking {
	return &Booking{
		Reference:  uuid.New(),
		UserID:     userID,
		ShowtimeID: showtimeID,
		Seats:      seats,
	}
}

type BookingSummary struct {
	BookingID      int
	Reference      uuid.UUID
	Username       string
	MovieTitle     string
	MoviePosterUrl string
	TheatreName    string
	Screen         string
	ShowtimeStart  time.Time
	Seats          []int
	CreatedAt      time.Time
}

type BookingFilters struct {
	Pagination
	// Month restricts results to bookings created in that calendar month (YYYY-MM).
	Month string
}

type BookingStats struct {
	Bookings int
	Tickets  int
}

type BookingRepository interface {
	GetSummariesByUserId(ctx context.Context, userId int, filters BookingFilters) ([]BookingSummary, *Metadata, error)
	GetBookingMonthsByUserId(ctx context.Context, userId int) ([]string, error)
	GetStatsByUserId(ctx context.Context, userId int) (*BookingStats, error)
	GetAllSummaries(ctx context.Context, pagination Pagination) ([]BookingSummary, *Metadata, error)
}

// SeatLedger is the storage behind seat reservations. InShowtimeTx runs fn with
// exclusive access to one showtime: calls for the same showtime never
// interleave, calls for different showtimes never wait on each other, and
// nothing fn writes is visible unless fn returns nil.
type SeatLedger interface {
	InShowtimeTx(ctx context.Context, showtimeID int, fn func(ctx context.Context, tx SeatLedgerTx) error) error
	SeatMap(ctx context.Context, showtimeID int) (*SeatMap, error)
	FindBooking(ctx context.Context, bookingID int) (*Booking, error)
}

type SeatLedgerTx interface {
	Showtime() Showtime
	BookedSeats(ctx context.Context) ([]int, error)
	InsertBooking(ctx context.Context, booking *Booking) error
	FindBooking(ctx context.Context, bookingID int) (*Booking, error)
	DeleteBooking(ctx context.Context, bookingID int) error
	UpdateShowtime(ctx context.Context, showtime *Showtime) error
}
