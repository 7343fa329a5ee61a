package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobscreen-backend/internal/analyses"
	googleauth "jobscreen-backend/internal/auth"
	"jobscreen-backend/internal/shared/config"
	"jobscreen-backend/internal/shared/metrics"
	"jobscreen-backend/internal/shared/server/middleware"
	"jobscreen-backend/internal/shared/server/respond"
	"jobscreen-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	UserHandler     *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	// The classification endpoint verifies its own bearer token, so it sits
	// outside the JWT middleware and only behind the rate limiter.
	rule := middleware.RateLimitRule{
		Rate:  float64(deps.Config.RateLimitPerMinute) / 60.0,
		Burst: deps.Config.RateLimitBurst,
	}
	analyze := r.Group("/", middleware.RateLimit(rule, middleware.NewRateLimiter(nil)))
	deps.AnalysisHandler.RegisterAnalyzeRoute(analyze)

	api := r.Group("/api/v1")
	api.Use(middleware.Auth())
	deps.GoogleAuth.RegisterRoutes(api)
	deps.AnalysisHandler.RegisterRoutes(api)
	deps.UserHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
