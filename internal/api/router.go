package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/auth"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/booking"
	bookingHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/booking/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/business"
	businessHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/business/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/court"
	courtHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/court/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/customer"
	customerHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/customer/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/metrics"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/notification"
	notificationHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/notification/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/release"
	releaseHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/release/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/settings"
	settingsHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/settings/http"
)

// Config holds everything the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	RequestTimeout time.Duration

	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	DB       Pinger
	Verifier *auth.Verifier

	CourtService        court.Service
	CustomerService     customer.Service
	SettingsService     settings.Service
	BusinessService     business.Service
	BookingService      booking.Service
	ReleaseService      release.Service
	NotificationService notification.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - RequestLogger: one structured line per request.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins(cfg.IsProduction, cfg.ProdOrigins)
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", healthHandler(cfg.DB))
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.Verifier, cfg.Logger)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	if cfg.RequestTimeout > 0 {
		v1.Use(Timeout(cfg.RequestTimeout))
	}
	{
		v1.GET("/me", authMiddleware, meHandler)
		courtHttp.RegisterRoutes(v1, courtHttp.NewHandler(cfg.CourtService), authMiddleware)
		customerHttp.RegisterRoutes(v1, customerHttp.NewHandler(cfg.CustomerService), authMiddleware)
		settingsHttp.RegisterRoutes(v1, settingsHttp.NewHandler(cfg.SettingsService), authMiddleware)
		businessHttp.RegisterRoutes(v1, businessHttp.NewHandler(cfg.BusinessService), authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHttp.NewHandler(cfg.BookingService), authMiddleware)
		releaseHttp.RegisterRoutes(v1, releaseHttp.NewHandler(cfg.ReleaseService), authMiddleware)
		notificationHttp.RegisterRoutes(v1, notificationHttp.NewHandler(cfg.NotificationService), authMiddleware)
	}

	return r
}

// allowedOrigins returns the comma separated PROD_ORIGINS in production and
// the local front-end dev servers otherwise.
func allowedOrigins(isProduction bool, prodOrigins string) []string {
	if !isProduction {
		return []string{"http://localhost:5173", "http://localhost:8081"}
	}

	var origins []string
	for o := range strings.SplitSeq(prodOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
