package domain

import (
	"fmt"
	"slices"
)

// SeatMap is the occupancy of one showtime. Seat ids run from 1 to TotalSeats without gaps.
type SeatMap struct {
	ShowtimeID int   `json:"showtimeId"`
	TotalSeats int   `json:"totalSeats"`
	Booked     []int `json:"booked"`
}

func NewSeatMap(showtimeID, totalSeats int, booked []int) *SeatMap {
	sorted := slices.Clone(booked)
	slices.Sort(sorted)

	return &SeatMap{
		ShowtimeID: showtimeID,
		TotalSeats: totalSeats,
		Booked:     sorted,
	}
}

// Free returns the seats of the showtime that no booking holds, ascending.
func (m *SeatMap) Free() []int {
	booked := make(map[int]struct{}, len(m.Booked))
	for _, seat := range m.Booked {
		booked[seat] = struct{}{}
	}

	free := make([]int, 0, m.TotalSeats-len(booked))
	for seat := 1; seat <= m.TotalSeats; seat++ {
		if _, ok := booked[seat]; !ok {
			free = append(free, seat)
		}
	}

	return free
}

// IsBooked reports whether seat is held by a booking.
func (m *SeatMap) IsBooked(seat int) bool {
	_, found := slices.BinarySearch(m.Booked, seat)
	return found
}

// NormalizeSeatRequest checks a requested seat set against the capacity of a showtime
// and returns it sorted ascending. Every failure wraps ErrInvalidSeatRequest.
func NormalizeSeatRequest(seats []int, totalSeats int) ([]int, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: at least one seat must be requested", ErrInvalidSeatRequest)
	}

	seen := make(map[int]struct{}, len(seats))

	for _, seat := range seats {
		if seat < 1 || seat > totalSeats {
			return nil, fmt.Errorf("%w: seat %d is outside the range 1-%d", ErrInvalidSeatRequest, seat, totalSeats)
		}

		if _, dup := seen[seat]; dup {
			return nil, fmt.Errorf("%w: seat %d is requested more than once", ErrInvalidSeatRequest, seat)
		}

		seen[seat] = struct{}{}
	}

	normalized := slices.Clone(seats)
	slices.Sort(normalized)

	return normalized, nil
}

// ConflictingSeats returns the members of requested that are already booked, ascending.
func ConflictingSeats(requested, booked []int) []int {
	taken := make(map[int]struct{}, len(booked))
	for _, seat := range booked {
		taken[seat] = struct{}{}
	}

	var conflicts []int
	for _, seat := range requested {
		if _, ok := taken[seat]; ok {
			conflicts = append(conflicts, seat)
		}
	}

	slices.Sort(conflicts)

	return conflicts
}
