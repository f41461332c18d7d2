package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/screenline/cinebook/internal/domain"
)

type PostgresTheatreRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheatreRepository(db *pgxpool.Pool) *PostgresTheatreRepository {
	return &PostgresTheatreRepository{
		db: db,
	}
}

func (p *PostgresTheatreRepository) GetAll(ctx context.Context) ([]domain.Theatre, error) {
	query := `SELECT id, name, location, created_at FROM theatres ORDER BY name`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theatres := make([]domain.Theatre, 0)

	for rows.Next() {
		var theatre domain.Theatre

		err = rows.Scan(&theatre.ID, &theatre.Name, &theatre.Location, &theatre.CreatedAt)
		if err != nil {
			return nil, err
		}

		theatres = append(theatres, theatre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theatres, nil
}

func (p *PostgresTheatreRepository) GetById(ctx context.Context, id int) (*domain.Theatre, error) {
	query := `SELECT id, name, location, created_at FROM theatres WHERE id = $1`

	var theatre domain.Theatre

	err := p.db.QueryRow(ctx, query, id).Scan(&theatre.ID, &theatre.Name, &theatre.Location, &theatre.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTheatreNotFound
		}

		return nil, err
	}

	return &theatre, nil
}

func (p *PostgresTheatreRepository) Create(ctx context.Context, theatre *domain.Theatre) error {
	query := `INSERT INTO theatres (name, location)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx, query, theatre.Name, theatre.Location).Scan(&theatre.ID, &theatre.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.UniqueViolation {
			return domain.ErrTheatreAlreadyExists
		}

		return err
	}

	return nil
}

// Delete removes a theatre together with its showtimes and their bookings.
func (p *PostgresTheatreRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM theatres WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTheatreNotFound
	}

	return nil
}
