package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/auth"
	learningRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/data/repos/testutil"
	userRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/user"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ctxutil"
)

// seqIDSource hands out a predictable uuid sequence so tests can assert
// on generated ids.
type seqIDSource struct {
	mu   sync.Mutex
	next int
}

func (s *seqIDSource) NewID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", s.next))
}

type testEnv struct {
	db  *gorm.DB
	ids *seqIDSource

	auth     AuthService
	profiles LanguageProfileService
	vocab    VocabularyService
	sessions PracticeSessionService

	profileRepo learningRepo.LanguageProfileRepo
	itemRepo    learningRepo.VocabularyItemRepo
	sessionRepo learningRepo.PracticeSessionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	idSource := &seqIDSource{}

	users := userRepo.NewUserRepo(db, log)
	tokens := authRepo.NewUserTokenRepo(db, log)
	profiles := learningRepo.NewLanguageProfileRepo(db, log)
	items := learningRepo.NewVocabularyItemRepo(db, log)
	sessions := learningRepo.NewPracticeSessionRepo(db, log)

	return &testEnv{
		db:          db,
		ids:         idSource,
		auth:        NewAuthService(db, log, idSource, users, tokens, "test-secret", time.Hour, 24*time.Hour),
		profiles:    NewLanguageProfileService(db, log, idSource, profiles),
		vocab:       NewVocabularyService(db, log, idSource, items, profiles),
		sessions:    NewPracticeSessionService(db, log, idSource, sessions, profiles),
		profileRepo: profiles,
		itemRepo:    items,
		sessionRepo: sessions,
	}
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: userID})
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }
