package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userhub/account-service/docs"
	"github.com/userhub/account-service/internal/api/handler"
	"github.com/userhub/account-service/internal/api/middleware"
	"github.com/userhub/account-service/internal/core/service"
	mongodb "github.com/userhub/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/userhub/account-service/internal/infrastructure/db/redis"
	"github.com/userhub/account-service/internal/infrastructure/queue"
	"github.com/userhub/account-service/internal/token"
)

// Options carries everything the router needs beyond its datastores.
type Options struct {
	JWTSecret   string
	TokenTTL    time.Duration
	CacheTTL    time.Duration
	AuthWorkers int
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes
// registered. The per-account login serializer runs until ctx is
// cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	issuer := token.NewIssuer(opts.JWTSecret, opts.TokenTTL)

	serializer := queue.NewSerializer(opts.AuthWorkers, opts.Log)
	serializer.Start(ctx)

	repo := redisdb.NewAccountCache(mongodb.NewAccountRepository(db), rdb, opts.CacheTTL)
	authService := service.NewAuthService(repo, issuer, serializer)

	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(authService)
	authMiddleware := middleware.Auth(issuer)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Account lookup (token required) ---
	e.GET("/accounts/:id", accountHandler.Get, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
