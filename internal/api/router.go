package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/peershare/item-sharing-backend/internal/booking"
	bookingHttp "github.com/peershare/item-sharing-backend/internal/booking/http"
	"github.com/peershare/item-sharing-backend/internal/identity"
	"github.com/peershare/item-sharing-backend/internal/item"
	itemHttp "github.com/peershare/item-sharing-backend/internal/item/http"
	"github.com/peershare/item-sharing-backend/internal/itemrequest"
	requestHttp "github.com/peershare/item-sharing-backend/internal/itemrequest/http"
	"github.com/peershare/item-sharing-backend/internal/metrics"
	"github.com/peershare/item-sharing-backend/internal/user"
	userHttp "github.com/peershare/item-sharing-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         zerolog.Logger
	RateLimitRPS   float64
	RateLimitBurst int

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles the middleware chain (logging, metrics, rate limiting,
// CORS) and registers routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Recovery captures panics to prevent server crashes and returns a 500.
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))
	r.Use(Metrics())
	r.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.HeaderUserID}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// All routes except user CRUD identify the caller by the sharer header.
	sharerMiddleware := identity.Required()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, sharerMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, sharerMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, sharerMiddleware)
	}

	return r
}
