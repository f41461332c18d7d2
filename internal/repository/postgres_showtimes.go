package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/screenline/cinebook/internal/domain"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `
		SELECT id, movie_id, theatre_id, screen, starts_at, total_seats, created_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
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
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetByMovieId(ctx context.Context, movieID int) ([]domain.ShowtimeListing, error) {
	query := `
		SELECT
			s.id,
			s.movie_id,
			s.theatre_id,
			s.screen,
			s.starts_at,
			s.total_seats,
			s.created_at,
			t.name,
			(SELECT count(*) FROM booking_seats bs WHERE bs.showtime_id = s.id)
		FROM showtimes s
		JOIN theatres t ON t.id = s.theatre_id
		WHERE s.movie_id = $1
		ORDER BY s.starts_at, s.id
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.ShowtimeListing, 0)

	for rows.Next() {
		var listing domain.ShowtimeListing

		err = rows.Scan(
			&listing.ID,
			&listing.MovieID,
			&listing.TheatreID,
			&listing.Screen,
			&listing.StartsAt,
			&listing.TotalSeats,
			&listing.CreatedAt,
			&listing.TheatreName,
			&listing.BookedSeats,
		)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, listing)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowtimeRepository) GetIdsByTheatreId(ctx context.Context, theatreID int) ([]int, error) {
	rows, err := p.db.Query(ctx, `SELECT id FROM showtimes WHERE theatre_id = $1 ORDER BY id`, theatreID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[int])
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, theatre_id, screen, starts_at, total_seats)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		showtime.MovieID,
		showtime.TheatreID,
		showtime.Screen,
		showtime.StartsAt,
		showtime.TotalSeats,
	).Scan(&showtime.ID, &showtime.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			if pgErr.ConstraintName == "showtimes_movie_id_fkey" {
				return domain.ErrMovieNotFound
			}

			return domain.ErrTheatreNotFound
		}

		return err
	}

	return nil
}

// Delete removes a showtime; its bookings and their seats go with it.
func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrShowtimeNotFound
	}

	return nil
}
