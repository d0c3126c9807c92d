package learning

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

// LanguageProfileRepo persists learning tracks. Reads and writes are
// owner-scoped: a row belonging to another user behaves as absent.
type LanguageProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, profile *learning.LanguageProfile) (*learning.LanguageProfile, error)
	GetForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*learning.LanguageProfile, error)
	UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]any) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, includeInactive bool) ([]*learning.LanguageProfile, error)
}

type languageProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLanguageProfileRepo(db *gorm.DB, baseLog *logger.Logger) LanguageProfileRepo {
	return &languageProfileRepo{db: db, log: baseLog.With("repo", "LanguageProfileRepo")}
}

func (pr *languageProfileRepo) Create(ctx context.Context, tx *gorm.DB, profile *learning.LanguageProfile) (*learning.LanguageProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (pr *languageProfileRepo) GetForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*learning.LanguageProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result learning.LanguageProfile
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

func (pr *languageProfileRepo) UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Model(&learning.LanguageProfile{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (pr *languageProfileRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, includeInactive bool) ([]*learning.LanguageProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	query := transaction.WithContext(ctx).
		Where("user_id = ?", userID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var results []*learning.LanguageProfile
	if err := query.
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
