package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-styler/internal/documents"
	"resume-styler/internal/generatedresumes"
	"resume-styler/internal/shared/config"
	"resume-styler/internal/shared/metrics"
	"resume-styler/internal/shared/server/middleware"
	"resume-styler/internal/shared/server/respond"
)

// extractRateGroup names the token bucket shared by extraction uploads.
const extractRateGroup = "EXTRACT"

// RouterDeps lists the handlers mounted by NewRouter.
type RouterDeps struct {
	Config                 config.Config
	DocumentHandler        *documents.Handler
	GeneratedResumeHandler *generatedresumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GeneratedResumeHandler != nil {
		deps.GeneratedResumeHandler.RegisterRoutes(api)
	}
	if deps.DocumentHandler != nil {
		limiter := middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: extractRateGroup,
			Rules: map[string]middleware.RateLimitRule{
				extractRateGroup: {
					Rate:  deps.Config.ExtractRatePerMin / 60,
					Burst: deps.Config.ExtractBurst,
				},
			},
		})
		deps.DocumentHandler.RegisterRoutes(api, limiter)
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
