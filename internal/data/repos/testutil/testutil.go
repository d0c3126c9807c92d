package testutil

import (
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	authDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/auth"
	learningDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	userDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/user"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a fresh in-memory sqlite database, migrated for all models.
// The pool is capped at one connection; sqlite :memory: databases are
// per-connection.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := migrateAll(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func migrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&userDomain.User{},
		&authDomain.UserToken{},
		&learningDomain.LanguageProfile{},
		&learningDomain.VocabularyItem{},
		&learningDomain.PracticeSession{},
	)
}
