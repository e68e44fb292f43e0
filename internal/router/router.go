package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hamyaran/admin-api/config"
	"github.com/hamyaran/admin-api/internal/middleware"
	"github.com/hamyaran/admin-api/pkg/logger"
)

// Handler is anything that can mount its routes on a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine  *gin.Engine
	cfg     *config.Config
	auth    *middleware.AuthMiddleware
	healthH Handler
	authH   Handler
	secure  []Handler
}

// NewRouter wires the middleware chain and keeps the handlers for Setup.
// The health and authH handlers are mounted outside the authenticated group;
// everything in secure sits behind the bearer token check.
func NewRouter(cfg *config.Config, log *logger.Logger, auth *middleware.AuthMiddleware,
	healthH, authH Handler, secure ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.Timeout(30*time.Second),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins: cfg.Security.AllowedOrigins,
			AllowMethods: cfg.Security.AllowedMethods,
			AllowHeaders: cfg.Security.AllowedHeaders,
		}),
	)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		engine.Use(limiter.RateLimit())
	}

	return &Router{
		engine:  engine,
		cfg:     cfg,
		auth:    auth,
		healthH: healthH,
		authH:   authH,
		secure:  secure,
	}
}

func (r *Router) Setup() {
	root := r.engine.Group("")
	r.healthH.RegisterRoutes(root)

	if r.cfg.Monitoring.PrometheusEnabled {
		r.engine.GET(r.cfg.Monitoring.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	// Uploaded files are served straight off disk.
	r.engine.Static(r.cfg.Storage.BaseURL, r.cfg.Storage.MediaDir)

	api := r.engine.Group("/api/v1")
	r.authH.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	for _, h := range r.secure {
		h.RegisterRoutes(protected)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
