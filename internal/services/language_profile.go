package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	learningRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ids"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type CreateProfileInput struct {
	TargetLanguage   string
	NativeLanguage   *string
	ProficiencyLevel *string
	Goals            *string
}

// UpdateProfileInput carries a partial update: nil pointers mean "leave
// the stored value alone".
type UpdateProfileInput struct {
	ID               uuid.UUID
	TargetLanguage   *string
	NativeLanguage   *string
	ProficiencyLevel *string
	Goals            *string
	IsActive         *bool
}

type LanguageProfileService interface {
	Create(ctx context.Context, in CreateProfileInput) (*learning.LanguageProfile, error)
	Update(ctx context.Context, in UpdateProfileInput) (*learning.LanguageProfile, error)
	List(ctx context.Context, includeInactive bool) ([]*learning.LanguageProfile, error)
}

type languageProfileService struct {
	db       *gorm.DB
	log      *logger.Logger
	ids      ids.Source
	profiles learningRepo.LanguageProfileRepo
}

func NewLanguageProfileService(db *gorm.DB, log *logger.Logger, idSource ids.Source, profiles learningRepo.LanguageProfileRepo) LanguageProfileService {
	return &languageProfileService{
		db:       db,
		log:      log.With("service", "LanguageProfileService"),
		ids:      idSource,
		profiles: profiles,
	}
}

func (ps *languageProfileService) Create(ctx context.Context, in CreateProfileInput) (*learning.LanguageProfile, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.TargetLanguage) == "" {
		return nil, apierr.Validation("target_language is required")
	}

	now := time.Now().UTC()
	profile := &learning.LanguageProfile{
		ID:               ps.ids.NewID(),
		UserID:           caller,
		TargetLanguage:   in.TargetLanguage,
		NativeLanguage:   in.NativeLanguage,
		ProficiencyLevel: in.ProficiencyLevel,
		Goals:            in.Goals,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := ps.profiles.Create(ctx, nil, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

// Update merges provided fields over the stored row: an omitted field is
// left unchanged, never nulled. The returned record is the input merged
// over the previously loaded row, not a re-read.
func (ps *languageProfileService) Update(ctx context.Context, in UpdateProfileInput) (*learning.LanguageProfile, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if in.ID == uuid.Nil {
		return nil, apierr.Validation("id is required")
	}
	if in.TargetLanguage != nil && strings.TrimSpace(*in.TargetLanguage) == "" {
		return nil, apierr.Validation("target_language must not be empty")
	}

	existing, err := ps.profiles.GetForUser(ctx, nil, in.ID, caller)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if existing == nil {
		return nil, apierr.NotFound("profile not found")
	}

	now := time.Now().UTC()
	fields := map[string]any{"updated_at": now}
	merged := *existing
	merged.UpdatedAt = now

	if in.TargetLanguage != nil {
		fields["target_language"] = *in.TargetLanguage
		merged.TargetLanguage = *in.TargetLanguage
	}
	if in.NativeLanguage != nil {
		fields["native_language"] = *in.NativeLanguage
		merged.NativeLanguage = in.NativeLanguage
	}
	if in.ProficiencyLevel != nil {
		fields["proficiency_level"] = *in.ProficiencyLevel
		merged.ProficiencyLevel = in.ProficiencyLevel
	}
	if in.Goals != nil {
		fields["goals"] = *in.Goals
		merged.Goals = in.Goals
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
		merged.IsActive = *in.IsActive
	}

	if err := ps.profiles.UpdateFieldsForUser(ctx, nil, in.ID, caller, fields); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &merged, nil
}

func (ps *languageProfileService) List(ctx context.Context, includeInactive bool) ([]*learning.LanguageProfile, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	profiles, err := ps.profiles.ListByUser(ctx, nil, caller, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}
