package learning

import (
	"time"

	"github.com/google/uuid"
)

// LanguageProfile is a user's declared learning track. Profiles are
// never hard-deleted; deactivation is is_active=false.
type LanguageProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	TargetLanguage   string  `gorm:"not null;column:target_language" json:"target_language"`
	NativeLanguage   *string `gorm:"column:native_language" json:"native_language,omitempty"`
	ProficiencyLevel *string `gorm:"column:proficiency_level" json:"proficiency_level,omitempty"`
	Goals            *string `gorm:"column:goals" json:"goals,omitempty"`
	IsActive         bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (LanguageProfile) TableName() string { return "language_profile" }
