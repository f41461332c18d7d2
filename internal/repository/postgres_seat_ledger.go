package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/screenline/cinebook/internal/domain"
)

// PostgresSeatLedger serialises work on a showtime by locking its row for the
// length of the transaction. The booking_seats primary key rejects any double
// booking that slips past the lock.
type PostgresSeatLedger struct {
	db *pgxpool.Pool
}

func NewPostgresSeatLedger(db *pgxpool.Pool) *PostgresSeatLedger {
	return &PostgresSeatLedger{
		db: db,
	}
}

func (p *PostgresSeatLedger) InShowtimeTx(
	ctx context.Context,
	showtimeID int,
	fn func(ctx context.Context, tx domain.SeatLedgerTx) error) error {

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			SELECT id, movie_id, theatre_id, screen, starts_at, total_seats, created_at
			FROM showtimes
			WHERE id = $1
			FOR UPDATE
		`

		var showtime domain.Showtime

		err := tx.QueryRow(ctx, query, showtimeID).Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.TheatreID,
			&showtime.Screen,
			&showtime.StartsAt,
			&showtime.TotalSeats,
			&showtime.CreatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrShowtimeNotFound
			}

			return err
		}

		return fn(ctx, &postgresLedgerTx{tx: tx, showtime: showtime})
	})

	return concurrencyError(err)
}

func (p *PostgresSeatLedger) SeatMap(ctx context.Context, showtimeID int) (*domain.SeatMap, error) {
	query := `
		SELECT
			s.total_seats,
			COALESCE(
				array_agg(bs.seat_number ORDER BY bs.seat_number) FILTER (WHERE bs.seat_number IS NOT NULL),
				'{}'
			)
		FROM showtimes s
		LEFT JOIN booking_seats bs ON bs.showtime_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`

	var totalSeats int
	var booked []int

	err := p.db.QueryRow(ctx, query, showtimeID).Scan(&totalSeats, &booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, err
	}

	return domain.NewSeatMap(showtimeID, totalSeats, booked), nil
}

func (p *PostgresSeatLedger) FindBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	return findBooking(ctx, p.db, bookingID, 0)
}

// findBooking loads a booking with its seats. A non-zero showtimeID restricts
// the lookup to that showtime.
func findBooking(ctx context.Context, q querier, bookingID, showtimeID int) (*domain.Booking, error) {
	query := `
		SELECT
			b.id,
			b.reference,
			b.user_id,
			b.showtime_id,
			b.created_at,
			array_agg(bs.seat_number ORDER BY bs.seat_number)
		FROM bookings b
		JOIN booking_seats bs ON bs.booking_id = b.id
		WHERE b.id = $1 AND ($2 = 0 OR b.showtime_id = $2)
		GROUP BY b.id
	`

	var booking domain.Booking

	err := q.QueryRow(ctx, query, bookingID, showtimeID).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.CreatedAt,
		&booking.Seats,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}

		return nil, err
	}

	return &booking, nil
}

type postgresLedgerTx struct {
	tx       pgx.Tx
	showtime domain.Showtime
}

func (t *postgresLedgerTx) Showtime() domain.Showtime {
	return t.showtime
}

func (t *postgresLedgerTx) BookedSeats(ctx context.Context) ([]int, error) {
	query := `
		SELECT seat_number
		FROM booking_seats
		WHERE showtime_id = $1
		ORDER BY seat_number
	`

	rows, err := t.tx.Query(ctx, query, t.showtime.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]int, 0)

	for rows.Next() {
		var seat int

		err = rows.Scan(&seat)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (t *postgresLedgerTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (reference, user_id, showtime_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := t.tx.QueryRow(
		ctx,
		query,
		booking.Reference,
		booking.UserID,
		t.showtime.ID).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		return err
	}

	rows := make([][]any, 0, len(booking.Seats))
	for _, seat := range booking.Seats {
		rows = append(rows, []any{
			booking.ID,
			t.showtime.ID,
			seat,
		})
	}

	_, err = t.tx.CopyFrom(
		ctx,
		pgx.Identifier{"booking_seats"},
		[]string{"booking_id", "showtime_id", "seat_number"},
		pgx.CopyFromRows(rows),
	)

	return err
}

func (t *postgresLedgerTx) FindBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	return findBooking(ctx, t.tx, bookingID, t.showtime.ID)
}

func (t *postgresLedgerTx) DeleteBooking(ctx context.Context, bookingID int) error {
	query := `DELETE FROM bookings WHERE id = $1 AND showtime_id = $2`

	result, err := t.tx.Exec(ctx, query, bookingID, t.showtime.ID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (t *postgresLedgerTx) UpdateShowtime(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		UPDATE showtimes
		SET theatre_id = $1, screen = $2, starts_at = $3, total_seats = $4
		WHERE id = $5
	`

	_, err := t.tx.Exec(
		ctx,
		query,
		showtime.TheatreID,
		showtime.Screen,
		showtime.StartsAt,
		showtime.TotalSeats,
		t.showtime.ID,
	)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
			return domain.ErrTheatreNotFound
		}

		return err
	}

	t.showtime = *showtime

	return nil
}
