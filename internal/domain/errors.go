package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrTheatreAlreadyExists = errors.New("theatre already exists")
	ErrRecordNotFound       = errors.New("record not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidSeatRequest   = errors.New("invalid seat request")
	ErrSeatConflict         = errors.New("seat(s) are already booked")
	ErrConcurrentUpdate     = errors.New("concurrent update detected")

	ErrMovieNotFound    = fmt.Errorf("movie: %w", ErrRecordNotFound)
	ErrTheatreNotFound  = fmt.Errorf("theatre: %w", ErrRecordNotFound)
	ErrShowtimeNotFound = fmt.Errorf("showtime: %w", ErrRecordNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking: %w", ErrRecordNotFound)
)

// SeatConflictError reports the requested seats that another booking already holds.
type SeatConflictError struct {
	ShowtimeID int
	Seats      []int
}

func (e *SeatConflictError) Error() string {
	seats := make([]string, len(e.Seats))
	for i, seat := range e.Seats {
		seats[i] = strconv.Itoa(seat)
	}

	return fmt.Sprintf("seats [%s] of showtime %d are already booked", strings.Join(seats, ", "), e.ShowtimeID)
}

func (e *SeatConflictError) Is(target error) bool {
	return target == ErrSeatConflict
}
