package learning

import (
	"time"

	"github.com/google/uuid"
)

// PracticeSession is one practice run against a profile. ended_at is
// null exactly while the session is open.
type PracticeSession struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LanguageProfileID uuid.UUID `gorm:"type:uuid;not null;index" json:"language_profile_id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Mode           *string    `gorm:"column:mode" json:"mode,omitempty"`
	StartedAt      time.Time  `gorm:"not null;column:started_at" json:"started_at"`
	EndedAt        *time.Time `gorm:"column:ended_at" json:"ended_at"`
	TotalQuestions *int       `gorm:"column:total_questions" json:"total_questions,omitempty"`
	CorrectAnswers *int       `gorm:"column:correct_answers" json:"correct_answers"`
	Notes          *string    `gorm:"column:notes" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (PracticeSession) TableName() string { return "practice_session" }
