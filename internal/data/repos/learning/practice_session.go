package learning

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type PracticeSessionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, session *learning.PracticeSession) (*learning.PracticeSession, error)
	GetForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*learning.PracticeSession, error)
	UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]any) error
	ListByProfile(ctx context.Context, tx *gorm.DB, profileID, userID uuid.UUID, offset, limit int) ([]*learning.PracticeSession, error)
}

type practiceSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPracticeSessionRepo(db *gorm.DB, baseLog *logger.Logger) PracticeSessionRepo {
	return &practiceSessionRepo{db: db, log: baseLog.With("repo", "PracticeSessionRepo")}
}

func (sr *practiceSessionRepo) Create(ctx context.Context, tx *gorm.DB, session *learning.PracticeSession) (*learning.PracticeSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (sr *practiceSessionRepo) GetForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*learning.PracticeSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result learning.PracticeSession
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (sr *practiceSessionRepo) UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Model(&learning.PracticeSession{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (sr *practiceSessionRepo) ListByProfile(ctx context.Context, tx *gorm.DB, profileID, userID uuid.UUID, offset, limit int) ([]*learning.PracticeSession, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*learning.PracticeSession
	if err := transaction.WithContext(ctx).
		Where("language_profile_id = ? AND user_id = ?", profileID, userID).
		Order("started_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
