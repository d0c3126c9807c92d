package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/srkarthi1982/language-learning-buddy/internal/http/handlers"
	httpMW "github.com/srkarthi1982/language-learning-buddy/internal/http/middleware"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware
	CORSOrigins    []string

	HealthHandler  *httpH.HealthHandler
	AuthHandler    *httpH.AuthHandler
	ProfileHandler *httpH.LanguageProfileHandler
	VocabHandler   *httpH.VocabularyHandler
	SessionHandler *httpH.PracticeSessionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
			protected.GET("/me", cfg.AuthHandler.GetMe)
		}

		if cfg.ProfileHandler != nil {
			protected.POST("/profiles", cfg.ProfileHandler.Create)
			protected.PATCH("/profiles/:id", cfg.ProfileHandler.Update)
			protected.GET("/profiles", cfg.ProfileHandler.List)
		}

		if cfg.VocabHandler != nil {
			protected.PUT("/vocabulary", cfg.VocabHandler.Upsert)
			protected.DELETE("/vocabulary/:id", cfg.VocabHandler.Delete)
			protected.GET("/vocabulary", cfg.VocabHandler.List)
		}

		if cfg.SessionHandler != nil {
			protected.POST("/practice-sessions", cfg.SessionHandler.Start)
			protected.POST("/practice-sessions/:id/complete", cfg.SessionHandler.Complete)
			protected.GET("/practice-sessions", cfg.SessionHandler.List)
		}
	}

	return r
}
