package domain

import (
	"context"
	"time"
)

type Theatre struct {
	ID        int
	Name      string
	Location  string
	CreatedAt time.Time
}

type TheatreRepository interface {
	GetAll(ctx context.Context) ([]Theatre, error)
	GetById(ctx context.Context, id int) (*Theatre, error)
	Create(ctx context.Context, theatre *Theatre) error
	Delete(ctx context.Context, id int) error
}
