package app

import (
	"gorm.io/gorm"

	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ids"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
	"github.com/srkarthi1982/language-learning-buddy/internal/services"
)

type Services struct {
	Auth            services.AuthService
	LanguageProfile services.LanguageProfileService
	Vocabulary      services.VocabularyService
	PracticeSession services.PracticeSessionService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")
	idSource := ids.Random()
	return Services{
		Auth: services.NewAuthService(
			db,
			log,
			idSource,
			repos.User,
			repos.UserToken,
			cfg.JWTSecretKey,
			cfg.AccessTokenTTL,
			cfg.RefreshTokenTTL,
		),
		LanguageProfile: services.NewLanguageProfileService(db, log, idSource, repos.LanguageProfile),
		Vocabulary:      services.NewVocabularyService(db, log, idSource, repos.VocabularyItem, repos.LanguageProfile),
		PracticeSession: services.NewPracticeSessionService(db, log, idSource, repos.PracticeSession, repos.LanguageProfile),
	}
}
