package learning

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyItem is one term scoped to a profile. user_id is a
// denormalized copy of the owning profile's user so every query can be
// owner-scoped without a join. The spaced-repetition fields are
// bookkeeping only; nothing in this backend schedules reviews.
type VocabularyItem struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LanguageProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"language_profile_id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Term               string  `gorm:"not null;column:term" json:"term"`
	Translation        *string `gorm:"column:translation" json:"translation,omitempty"`
	PartOfSpeech       *string `gorm:"column:part_of_speech" json:"part_of_speech,omitempty"`
	ExampleSentence    *string `gorm:"column:example_sentence" json:"example_sentence,omitempty"`
	ExampleTranslation *string `gorm:"column:example_translation" json:"example_translation,omitempty"`
	Difficulty         *string `gorm:"column:difficulty" json:"difficulty,omitempty"`
	Tags               *string `gorm:"column:tags" json:"tags,omitempty"`

	LastReviewedAt *time.Time `gorm:"column:last_reviewed_at" json:"last_reviewed_at,omitempty"`
	NextReviewAt   *time.Time `gorm:"column:next_review_at" json:"next_review_at,omitempty"`
	SuccessStreak  *int       `gorm:"column:success_streak" json:"success_streak,omitempty"`
	TotalReviews   *int       `gorm:"column:total_reviews" json:"total_reviews,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (VocabularyItem) TableName() string { return "vocabulary_item" }
