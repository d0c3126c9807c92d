package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/auth"
	learningDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	userDomain "github.com/srkarthi1982/language-learning-buddy/internal/domain/user"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/envutil"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	host := envutil.GetEnv("POSTGRES_HOST", "localhost", log)
	port := envutil.GetEnv("POSTGRES_PORT", "5432", log)
	user := envutil.GetEnv("POSTGRES_USER", "postgres", log)
	password := envutil.GetEnv("POSTGRES_PASSWORD", "", log)
	name := envutil.GetEnv("POSTGRES_NAME", "language_learning_buddy", log)
	sslMode := envutil.GetEnv("POSTGRES_SSLMODE", "disable", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, name, sslMode)

	serviceLog.Info("Connecting to Postgres...", "host", host, "db", name)
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Profile/item/session links are enforced in the services, not
		// by storage constraints.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: conn, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(
		&userDomain.User{},
		&authDomain.UserToken{},
		&learningDomain.LanguageProfile{},
		&learningDomain.VocabularyItem{},
		&learningDomain.PracticeSession{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
