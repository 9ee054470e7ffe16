package integration_test

import (
	"log/slog"
	"os"

	"github.com/cinegate/movie-booking-system/internal/app"
	"github.com/cinegate/movie-booking-system/internal/mailer"
	"github.com/cinegate/movie-booking-system/internal/repository"
	"github.com/cinegate/movie-booking-system/internal/reservation"
	appvalidator "github.com/cinegate/movie-booking-system/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	Mailer      *mailer.MockMailer
	Coordinator *reservation.Coordinator
	BookingRepo *repository.PostgresBookingRepository
	SeatRepo    *repository.PostgresSeatRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := mailer.NewMockMailer()

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
	seatRepo := repository.NewPostgresSeatRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	coordinator := reservation.NewCoordinator(bookingRepo, seatRepo, showtimeRepo, logger)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		sessionManager,
		userRepo,
		movieRepo,
		theatreRepo,
		showtimeRepo,
		seatRepo,
		bookingRepo,
		coordinator,
	)

	return &TestApp{
		App:         application,
		DB:          db,
		Mailer:      mockMailer,
		Coordinator: coordinator,
		BookingRepo: bookingRepo,
		SeatRepo:    seatRepo,
	}, nil
}
