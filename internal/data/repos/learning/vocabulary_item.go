package learning

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type VocabularyItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *learning.VocabularyItem) (*learning.VocabularyItem, error)
	GetForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*learning.VocabularyItem, error)
	UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]any) error
	// DeleteForUser reports the number of rows removed so callers can
	// distinguish a real delete from a miss.
	DeleteForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (int64, error)
	ListByProfile(ctx context.Context, tx *gorm.DB, profileID, userID uuid.UUID, offset, limit int) ([]*learning.VocabularyItem, error)
}

type vocabularyItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVocabularyItemRepo(db *gorm.DB, baseLog *logger.Logger) VocabularyItemRepo {
	return &vocabularyItemRepo{db: db, log: baseLog.With("repo", "VocabularyItemRepo")}
}

func (vr *vocabularyItemRepo) Create(ctx context.Context, tx *gorm.DB, item *learning.VocabularyItem) (*learning.VocabularyItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (vr *vocabularyItemRepo) GetForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*learning.VocabularyItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var result learning.VocabularyItem
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

func (vr *vocabularyItemRepo) UpdateFieldsForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID, fields map[string]any) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	return transaction.WithContext(ctx).
		Model(&learning.VocabularyItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
}

func (vr *vocabularyItemRepo) DeleteForUser(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&learning.VocabularyItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (vr *vocabularyItemRepo) ListByProfile(ctx context.Context, tx *gorm.DB, profileID, userID uuid.UUID, offset, limit int) ([]*learning.VocabularyItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var results []*learning.VocabularyItem
	if err := transaction.WithContext(ctx).
		Where("language_profile_id = ? AND user_id = ?", profileID, userID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
