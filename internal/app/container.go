package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/api"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/auth"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/booking"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/business"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/court"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/customer"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/metrics"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/notification"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/storage"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/release"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/settings"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	RequestTimeout time.Duration
	DBPool         *pgxpool.Pool
	JWTSecret      string

	// Redis is optional. When nil, bookings are serialized in-process.
	Redis       *redis.Client
	SlotLockTTL time.Duration

	// Storage holds uploaded files such as the club logo.
	Storage storage.Storage

	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router   *gin.Engine
	Verifier *auth.Verifier
	Metrics  *metrics.Metrics

	Courts   court.Service
	Settings settings.Service
	Bookings booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New()
	}

	verifier := auth.NewVerifier(cfg.JWTSecret)

	// Court Module
	courtService := court.NewService(court.NewPgxRepository(cfg.DBPool))

	// Customer Module
	customerService := customer.NewService(customer.NewPgxRepository(cfg.DBPool))

	// Settings Module
	settingsService := settings.NewService(settings.NewPgxRepository(cfg.DBPool), log.Named("settings"))

	// Notification Module
	notificationService := notification.NewService(notification.NewPgxRepository(cfg.DBPool))

	// Business Module
	businessService := business.NewService(business.NewPgxRepository(cfg.DBPool), cfg.Storage, log.Named("business"))

	// Release Module
	releaseService := release.NewService(release.NewPgxRepository(cfg.DBPool))

	// Booking Module
	var gate booking.Gate = booking.NewLocalGate()
	if cfg.Redis != nil {
		gate = booking.NewRedisGate(cfg.Redis, cfg.SlotLockTTL, log.Named("gate"))
	}
	bookingService := booking.NewService(booking.Dependencies{
		Repo:      booking.NewPgxRepository(cfg.DBPool),
		Courts:    courtService,
		Hours:     settingsService,
		Customers: customerService,
		Notifier:  notificationService,
		Gate:      gate,
		Recorder:  m,
		Logger:    log.Named("booking"),
	})

	// API Router Config
	routerParams := api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		RequestTimeout:      cfg.RequestTimeout,
		Logger:              log.Named("http"),
		Metrics:             m,
		Verifier:            verifier,
		CourtService:        courtService,
		CustomerService:     customerService,
		SettingsService:     settingsService,
		BusinessService:     businessService,
		BookingService:      bookingService,
		ReleaseService:      releaseService,
		NotificationService: notificationService,
	}
	if cfg.DBPool != nil {
		routerParams.DB = cfg.DBPool
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:   router,
		Verifier: verifier,
		Metrics:  m,
		Courts:   courtService,
		Settings: settingsService,
		Bookings: bookingService,
	}
}
