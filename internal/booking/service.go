// Package booking implements seat reservation for showtimes. The check that
// requested seats are free and the write that takes them run as one unit per
// showtime, so two overlapping requests can never both succeed.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/screenline/cinebook/internal/domain"
)

const DefaultMaxAttempts = 3

// SeatMapCache keeps recently read seat maps. Get returns a nil map on a miss
// together with the generation to pass to Set; Set drops the map when the
// showtime was invalidated after that generation was read.
type SeatMapCache interface {
	Get(ctx context.Context, showtimeID int) (*domain.SeatMap, int64, error)
	Set(ctx context.Context, seatMap *domain.SeatMap, generation int64) error
	Invalidate(ctx context.Context, showtimeID int) error
}

type Service struct {
	ledger      domain.SeatLedger
	cache       SeatMapCache
	logger      *slog.Logger
	maxAttempts uint
	newBackOff  func() backoff.BackOff
	now         func() time.Time
}

type Option func(*Service)

func WithCache(cache SeatMapCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithMaxAttempts bounds how many times a reservation is attempted when the
// storage reports a concurrent update.
func WithMaxAttempts(n uint) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(s *Service) {
		s.newBackOff = newBackOff
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(ledger domain.SeatLedger, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		ledger:      ledger,
		logger:      logger.With("component", "booking"),
		maxAttempts: DefaultMaxAttempts,
		newBackOff:  defaultBackOff,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond

	return b
}

// Reserve books seats on a showtime for a user. Either every requested seat is
// taken by the returned booking or nothing changes.
//
// It fails with domain.ErrShowtimeNotFound, an error wrapping
// domain.ErrInvalidSeatRequest, or a *domain.SeatConflictError listing the
// requested seats that are already booked.
func (s *Service) Reserve(ctx context.Context, showtimeID, userID int, seats []int) (*domain.Booking, error) {
	var booking *domain.Booking

	err := s.withRetry(ctx, "reserve", func() error {
		return s.ledger.InShowtimeTx(ctx, showtimeID, func(ctx context.Context, tx domain.SeatLedgerTx) error {
			requested, err := domain.NormalizeSeatRequest(seats, tx.Showtime().TotalSeats)
			if err != nil {
				return err
			}

			booked, err := tx.BookedSeats(ctx)
			if err != nil {
				return fmt.Errorf("failed to read booked seats: %w", err)
			}

			if conflicts := domain.ConflictingSeats(requested, booked); len(conflicts) > 0 {
				return &domain.SeatConflictError{ShowtimeID: showtimeID, Seats: conflicts}
			}

			candidate := domain.NewBooking(userID, showtimeID, requested)

			err = tx.InsertBooking(ctx, candidate)
			if err != nil {
				return err
			}

			booking = candidate

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, showtimeID)

	s.logger.Info("seats reserved",
		"booking_id", booking.ID,
		"showtime_id", showtimeID,
		"user_id", userID,
		"seats", booking.Seats,
	)

	return booking, nil
}

// Cancel deletes a booking owned by userID and releases its seats.
func (s *Service) Cancel(ctx context.Context, bookingID, userID int) error {
	_, err := s.cancel(ctx, bookingID, userID, false)
	return err
}

// CancelPast deletes those of the given bookings that belong to userID and whose
// showtime has already started. Unknown, foreign and upcoming bookings are skipped.
func (s *Service) CancelPast(ctx context.Context, userID int, bookingIDs []int) (int, error) {
	ids := slices.Clone(bookingIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	deleted := 0

	for _, id := range ids {
		ok, err := s.cancel(ctx, id, userID, true)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrForbidden) {
				continue
			}

			return deleted, err
		}

		if ok {
			deleted++
		}
	}

	return deleted, nil
}

func (s *Service) cancel(ctx context.Context, bookingID, userID int, onlyStarted bool) (bool, error) {
	found, err := s.ledger.FindBooking(ctx, bookingID)
	if err != nil {
		return false, err
	}

	if found.UserID != userID {
		return false, domain.ErrForbidden
	}

	var deleted bool

	err = s.withRetry(ctx, "cancel", func() error {
		deleted = false

		return s.ledger.InShowtimeTx(ctx, found.ShowtimeID, func(ctx context.Context, tx domain.SeatLedgerTx) error {
			booking, err := tx.FindBooking(ctx, bookingID)
			if err != nil {
				return err
			}

			if booking.UserID != userID {
				return domain.ErrForbidden
			}

			if onlyStarted && !tx.Showtime().HasStarted(s.now()) {
				return nil
			}

			err = tx.DeleteBooking(ctx, bookingID)
			if err != nil {
				return err
			}

			deleted = true

			return nil
		})
	})
	if err != nil {
		// the showtime was removed together with its bookings after the lookup
		if errors.Is(err, domain.ErrShowtimeNotFound) {
			return false, domain.ErrBookingNotFound
		}

		return false, err
	}

	if deleted {
		s.invalidate(ctx, found.ShowtimeID)
		s.logger.Info("booking cancelled",
			"booking_id", bookingID,
			"showtime_id", found.ShowtimeID,
			"user_id", userID,
			"seats", found.Seats,
		)
	}

	return deleted, nil
}

// SeatMap returns the occupancy of a showtime.
func (s *Service) SeatMap(ctx context.Context, showtimeID int) (*domain.SeatMap, error) {
	var (
		generation int64
		fill       bool
	)

	if s.cache != nil {
		seatMap, gen, err := s.cache.Get(ctx, showtimeID)
		switch {
		case err != nil:
			s.logger.Warn("failed to read seat map from cache", "showtime_id", showtimeID, "error", err)
		case seatMap != nil:
			return seatMap, nil
		default:
			generation, fill = gen, true
		}
	}

	seatMap, err := s.ledger.SeatMap(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	if fill {
		err = s.cache.Set(ctx, seatMap, generation)
		if err != nil {
			s.logger.Warn("failed to store seat map in cache", "showtime_id", showtimeID, "error", err)
		}
	}

	return seatMap, nil
}

// FreeSeats returns the seats of a showtime that no booking holds, ascending.
func (s *Service) FreeSeats(ctx context.Context, showtimeID int) ([]int, error) {
	seatMap, err := s.SeatMap(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	return seatMap.Free(), nil
}

// UpdateShowtime changes the schedule, screen or capacity of a showtime. The
// capacity may not drop below the highest seat that is already booked.
func (s *Service) UpdateShowtime(ctx context.Context, showtime *domain.Showtime) error {
	if showtime.TotalSeats < 1 {
		return fmt.Errorf("%w: a showtime needs at least one seat", domain.ErrInvalidSeatRequest)
	}

	err := s.withRetry(ctx, "update showtime", func() error {
		return s.ledger.InShowtimeTx(ctx, showtime.ID, func(ctx context.Context, tx domain.SeatLedgerTx) error {
			booked, err := tx.BookedSeats(ctx)
			if err != nil {
				return fmt.Errorf("failed to read booked seats: %w", err)
			}

			if len(booked) > 0 {
				if highest := slices.Max(booked); highest > showtime.TotalSeats {
					return fmt.Errorf("%w: seat %d is booked so capacity cannot drop to %d",
						domain.ErrInvalidSeatRequest, highest, showtime.TotalSeats)
				}
			}

			current := tx.Showtime()
			showtime.MovieID = current.MovieID
			showtime.CreatedAt = current.CreatedAt

			return tx.UpdateShowtime(ctx, showtime)
		})
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, showtime.ID)

	return nil
}

// Forget drops any cached seat map of a showtime that was removed.
func (s *Service) Forget(ctx context.Context, showtimeID int) {
	s.invalidate(ctx, showtimeID)
}

func (s *Service) invalidate(ctx context.Context, showtimeID int) {
	if s.cache == nil {
		return
	}

	err := s.cache.Invalidate(ctx, showtimeID)
	if err != nil {
		s.logger.Warn("failed to invalidate cached seat map", "showtime_id", showtimeID, "error", err)
	}
}

// withRetry reruns fn while the storage reports a concurrent update, up to
// maxAttempts times. Any other error ends the loop immediately.
func (s *Service) withRetry(ctx context.Context, operation string, fn func() error) error {
	attempt := 0

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++

		err := fn()
		if err == nil {
			return struct{}{}, nil
		}

		if errors.Is(err, domain.ErrConcurrentUpdate) {
			s.logger.Warn("concurrent update detected",
				"operation", operation,
				"attempt", attempt,
				"error", err,
			)
			return struct{}{}, err
		}

		return struct{}{}, backoff.Permanent(err)
	},
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(s.maxAttempts),
	)

	return err
}
