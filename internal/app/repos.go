package app

import (
	"gorm.io/gorm"

	authRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/auth"
	learningRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/learning"
	userRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/user"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type Repos struct {
	User            userRepo.UserRepo
	UserToken       authRepo.UserTokenRepo
	LanguageProfile learningRepo.LanguageProfileRepo
	VocabularyItem  learningRepo.VocabularyItemRepo
	PracticeSession learningRepo.PracticeSessionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            userRepo.NewUserRepo(db, log),
		UserToken:       authRepo.NewUserTokenRepo(db, log),
		LanguageProfile: learningRepo.NewLanguageProfileRepo(db, log),
		VocabularyItem:  learningRepo.NewVocabularyItemRepo(db, log),
		PracticeSession: learningRepo.NewPracticeSessionRepo(db, log),
	}
}
