package integration_test

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/screenline/cinebook/internal/app"
	"github.com/screenline/cinebook/internal/booking"
	"github.com/screenline/cinebook/internal/cache"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/mailer"
	"github.com/screenline/cinebook/internal/repository"
	appvalidator "github.com/screenline/cinebook/internal/validator"
)

type TestApp struct {
	App      *app.Application
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Mailer   *mailer.MockMailer
	Bookings *booking.Service
	Handler  http.Handler
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	userRepo := repository.NewPostgresUserRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	theatreRepo := repository.NewPostgresTheatreRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)
	ledger := repository.NewPostgresSeatLedger(db)

	bookings := booking.NewService(ledger, logger,
		booking.WithMaxAttempts(cfg.Booking.MaxAttempts),
		booking.WithCache(cache.NewSeatMapCache(redisClient, cfg.Booking.SeatMapTTL)),
	)

	posters := domain.NewPosterCatalog(map[string]string{
		"Override Movie": "https://cdn.example.com/override.jpg",
	})

	application := app.NewApp(
		cfg,
		logger,
		validator,
		mailer,
		sessionManager,
		posters,
		userRepo,
		movieRepo,
		theatreRepo,
		showtimeRepo,
		bookingRepo,
		ledger,
		bookings,
	)

	return &TestApp{
		App:      application,
		DB:       db,
		Redis:    redisClient,
		Mailer:   mailer,
		Bookings: bookings,
		Handler:  application.Routes(),
	}, nil
}
