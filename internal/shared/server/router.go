package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumescore-backend/internal/analyses"
	"resumescore-backend/internal/auth"
	"resumescore-backend/internal/shared/config"
	"resumescore-backend/internal/shared/metrics"
	"resumescore-backend/internal/shared/server/middleware"
	"resumescore-backend/internal/shared/server/respond"
)

// RouterDeps carries the wired handlers for route registration.
type RouterDeps struct {
	Config           config.Config
	AuthHandler      *auth.Handler
	GoogleAuth       *auth.GoogleService
	AnalysisHandler  *analyses.Handler
	IdentityResolver middleware.IdentityResolver
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}

	protected := api.Group("")
	protected.Use(middleware.SessionAuth(deps.IdentityResolver))
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(protected)
	}

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
