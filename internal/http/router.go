package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/translate-service/internal/metrics"
	"github.com/guttosm/translate-service/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit   int
	RateWindow  time.Duration
	APIKeys     map[string]bool
	EnableAuth  bool
	Tokens      middleware.TokenValidator
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		EnableAuth: false,
	}
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Translation *Handler
	Config      *ConfigHandler
	Jobs        *JobsHandler
}

// NewRouter creates and configures the Gin router for the translation service.
// Only /api routes are rate limited; the returned stop func releases the limiter.
func NewRouter(handlers Handlers, healthHandler *HealthHandler, cfg RouterConfig) (*gin.Engine, func()) {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	stop := func() {}
	if cfg.RateLimit > 0 {
		limiter := middleware.NewClientLimiter(cfg.RateLimit, cfg.RateWindow)
		api.Use(limiter.Middleware())
		stop = limiter.Stop
	}
	for _, group := range routeGroups(handlers) {
		group.RegisterRoutes(api, &cfg)
	}

	return router, stop
}

func routeGroups(handlers Handlers) []RouteGroup {
	var groups []RouteGroup
	if handlers.Translation != nil {
		groups = append(groups, TranslationRoutes{handler: handlers.Translation})
	}
	if handlers.Config != nil {
		groups = append(groups, ConfigRoutes{handler: handlers.Config})
	}
	if handlers.Jobs != nil {
		groups = append(groups, JobsRoutes{handler: handlers.Jobs})
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
