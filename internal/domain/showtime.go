package domain

import (
	"context"
	"time"
)

const DefaultTotalSeats = 40

type Showtime struct {
	ID         int
	MovieID    int
	TheatreID  int
	Screen     string
	StartsAt   time.Time
	TotalSeats int
	CreatedAt  time.Time
}

// HasStarted reports whether the screening began before now.
func (s Showtime) HasStarted(now time.Time) bool {
	return s.StartsAt.Before(now)
}

// ShowtimeListing is a showtime joined with the theatre it plays in and its current occupancy.
type ShowtimeListing struct {
	Showtime
	TheatreName string
	BookedSeats int
}

type ShowtimeRepository interface {
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetByMovieId(ctx context.Context, movieID int) ([]ShowtimeListing, error)
	GetIdsByTheatreId(ctx context.Context, theatreID int) ([]int, error)
	Create(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
