package app

import (
	"github.com/gin-gonic/gin"

	internalHTTP "github.com/srkarthi1982/language-learning-buddy/internal/http"
	httpH "github.com/srkarthi1982/language-learning-buddy/internal/http/handlers"
	httpMW "github.com/srkarthi1982/language-learning-buddy/internal/http/middleware"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	Profile *httpH.LanguageProfileHandler
	Vocab   *httpH.VocabularyHandler
	Session *httpH.PracticeSessionHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(),
		Auth:    httpH.NewAuthHandler(services.Auth),
		Profile: httpH.NewLanguageProfileHandler(services.LanguageProfile),
		Vocab:   httpH.NewVocabularyHandler(services.Vocabulary),
		Session: httpH.NewPracticeSessionHandler(services.PracticeSession),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return internalHTTP.NewRouter(internalHTTP.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,
		CORSOrigins:    cfg.CORSOrigins,
		HealthHandler:  handlers.Health,
		AuthHandler:    handlers.Auth,
		ProfileHandler: handlers.Profile,
		VocabHandler:   handlers.Vocab,
		SessionHandler: handlers.Session,
	})
}
