package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/screenline/cinebook/internal/booking"
	"github.com/screenline/cinebook/internal/cache"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/mailer"
	"github.com/screenline/cinebook/internal/repository"
	appvalidator "github.com/screenline/cinebook/internal/validator"
	"github.com/screenline/cinebook/internal/vcs"
	"github.com/screenline/cinebook/migrations"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	version = vcs.Version()
)

// BookingService reserves and releases seats. *booking.Service implements it.
type BookingService interface {
	Reserve(ctx context.Context, showtimeID, userID int, seats []int) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, userID int) error
	CancelPast(ctx context.Context, userID int, bookingIDs []int) (int, error)
	SeatMap(ctx context.Context, showtimeID int) (*domain.SeatMap, error)
	UpdateShowtime(ctx context.Context, showtime *domain.Showtime) error
	Forget(ctx context.Context, showtimeID int)
}

type Application struct {
	config         Config
	logger         *slog.Logger
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	posters        domain.PosterCatalog
	metrics        bookingMetrics
	wg             sync.WaitGroup

	userRepo     domain.UserRepository
	movieRepo    domain.MovieRepository
	theatreRepo  domain.TheatreRepository
	showtimeRepo domain.ShowtimeRepository
	bookingRepo  domain.BookingRepository
	bookings     BookingService
	ledger       domain.SeatLedger
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	LogFile          string
	AutoMigrate      bool
	Seed             bool
	DB               DBConfig
	Redis            RedisConfig
	SMTP             SMTPConfig
	Booking          BookingConfig
	Admin            AdminConfig
	PosterFile       string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type BookingConfig struct {
	TicketPrice  decimal.Decimal
	MaxAttempts  uint
	SeatMapTTL   time.Duration
	CacheSeatMap bool
}

type AdminConfig struct {
	Username string
	Password string
}

func Run() error {
	// values from a local .env file become flag defaults; a missing file is fine
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")
	flag.StringVar(&cfg.LogFile, "log-file", "", "Also write logs to this file, rotated by size")
	flag.BoolVar(&cfg.AutoMigrate, "auto-migrate", false, "Apply database migrations on startup")
	flag.BoolVar(&cfg.Seed, "seed", false, "Add sample movies and showtimes when the catalogue is empty")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Cinebook <no-reply@cinebook.local>", "SMTP sender")

	cfg.Booking.TicketPrice = decimal.NewFromInt(200)
	flag.Func("ticket-price", "Price of a single ticket (default 200)", func(s string) error {
		price, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}

		if price.IsNegative() {
			return errors.New("ticket price cannot be negative")
		}

		cfg.Booking.TicketPrice = price
		return nil
	})
	flag.UintVar(&cfg.Booking.MaxAttempts, "booking-max-attempts", booking.DefaultMaxAttempts, "Attempts per reservation when a concurrent update is detected")
	flag.BoolVar(&cfg.Booking.CacheSeatMap, "seatmap-cache", true, "Cache seat maps in Redis")
	flag.DurationVar(&cfg.Booking.SeatMapTTL, "seatmap-cache-ttl", cache.DefaultSeatMapTTL, "Lifetime of a cached seat map")

	flag.StringVar(&cfg.Admin.Username, "admin-username", os.Getenv("ADMIN_USERNAME"), "Username of the admin account ensured at startup")
	flag.StringVar(&cfg.Admin.Password, "admin-password", os.Getenv("ADMIN_PASSWORD"), "Password of the admin account ensured at startup")
	flag.StringVar(&cfg.PosterFile, "poster-overrides", "", "JSON file mapping movie titles to poster URLs")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := newLogger(cfg)

	if cfg.AutoMigrate {
		err := migrations.Up(cfg.DB.DSN)
		if err != nil {
			return err
		}

		logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	posters, err := loadPosterCatalog(cfg.PosterFile)
	if err != nil {
		return err
	}

	userRepo := repository.NewPostgresUserRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	theatreRepo := repository.NewPostgresTheatreRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)
	ledger := repository.NewPostgresSeatLedger(db)

	opts := []booking.Option{booking.WithMaxAttempts(cfg.Booking.MaxAttempts)}
	if cfg.Booking.CacheSeatMap {
		opts = append(opts, booking.WithCache(cache.NewSeatMapCache(redisClient, cfg.Booking.SeatMapTTL)))
	}

	bookingService := booking.NewService(ledger, logger, opts...)

	app := NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		posters,
		userRepo,
		movieRepo,
		theatreRepo,
		showtimeRepo,
		bookingRepo,
		ledger,
		bookingService,
	)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	err = app.EnsureAdmin(context.Background())
	if err != nil {
		return err
	}

	if cfg.Seed {
		err = app.SeedCatalogue(context.Background(), time.Now())
		if err != nil {
			return err
		}
	}

	return app.serve()
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	posters domain.PosterCatalog,
	userRepo domain.UserRepository,
	movieRepo domain.MovieRepository,
	theatreRepo domain.TheatreRepository,
	showtimeRepo domain.ShowtimeRepository,
	bookingRepo domain.BookingRepository,
	ledger domain.SeatLedger,
	bookings BookingService,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		validator:      validator,
		mailer:         mailer,
		sessionManager: sessionManager,
		posters:        posters,
		metrics:        newBookingMetrics(),
		userRepo:       userRepo,
		movieRepo:      movieRepo,
		theatreRepo:    theatreRepo,
		showtimeRepo:   showtimeRepo,
		bookingRepo:    bookingRepo,
		ledger:         ledger,
		bookings:       bookings,
	}
}

// newLogger writes text logs to stdout, to a rotating file when one is
// configured, and to the OpenTelemetry log pipeline when a collector is set.
func newLogger(cfg Config) *slog.Logger {
	var out io.Writer = os.Stdout

	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	handler := slog.Handler(slog.NewTextHandler(out, nil))

	if cfg.OtelCollectorUrl != "" {
		handler = NewMultiHandler(handler, otelslog.NewHandler("cinebook-api"))
	}

	return slog.New(handler)
}

func loadPosterCatalog(path string) (domain.PosterCatalog, error) {
	if path == "" {
		return domain.NewPosterCatalog(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read poster overrides: %w", err)
	}

	var entries map[string]string
	err = json.Unmarshal(data, &entries)
	if err != nil {
		return nil, fmt.Errorf("failed to parse poster overrides: %w", err)
	}

	return domain.NewPosterCatalog(entries), nil
}

// EnsureAdmin creates or promotes the configured admin account.
func (app *Application) EnsureAdmin(ctx context.Context) error {
	if app.config.Admin.Username == "" || app.config.Admin.Password == "" {
		return nil
	}

	admin := domain.User{Username: app.config.Admin.Username, Role: domain.RoleAdmin}

	err := admin.Password.Set(app.config.Admin.Password)
	if err != nil {
		return err
	}

	err = app.userRepo.UpsertAdmin(ctx, &admin)
	if err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}

	app.logger.Info("admin account ready", "username", admin.Username, "user_id", admin.ID)

	return nil
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.wg.Wait()
		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

// background runs fn in a goroutine that shutdown waits for. Panics are logged.
func (app *Application) background(logger *slog.Logger, fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic in background task", "panic", fmt.Sprintf("%v", err))
			}
		}()

		fn()
	}()
}
