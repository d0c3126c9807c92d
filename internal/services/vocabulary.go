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

// UpsertVocabularyInput creates when ID is nil and replaces when ID is
// set. On replace every optional field is overwritten from this input;
// an omitted field clears the stored column. That is deliberately
// different from the profile update's merge.
type UpsertVocabularyInput struct {
	ID                 *uuid.UUID
	LanguageProfileID  uuid.UUID
	Term               string
	Translation        *string
	PartOfSpeech       *string
	ExampleSentence    *string
	ExampleTranslation *string
	Difficulty         *string
	Tags               *string
	LastReviewedAt     *time.Time
	NextReviewAt       *time.Time
	SuccessStreak      *int
	TotalReviews       *int
}

type ListVocabularyInput struct {
	LanguageProfileID uuid.UUID
	PageParams
}

// VocabularyPage reports "total" as the number of items in this page,
// not the full collection count.
type VocabularyPage struct {
	Items    []*learning.VocabularyItem `json:"items"`
	Total    int                        `json:"total"`
	Page     int                        `json:"page"`
	PageSize int                        `json:"page_size"`
}

type VocabularyService interface {
	Upsert(ctx context.Context, in UpsertVocabularyInput) (*learning.VocabularyItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, in ListVocabularyInput) (*VocabularyPage, error)
}

type vocabularyService struct {
	db       *gorm.DB
	log      *logger.Logger
	ids      ids.Source
	items    learningRepo.VocabularyItemRepo
	profiles learningRepo.LanguageProfileRepo
}

func NewVocabularyService(
	db *gorm.DB,
	log *logger.Logger,
	idSource ids.Source,
	items learningRepo.VocabularyItemRepo,
	profiles learningRepo.LanguageProfileRepo,
) VocabularyService {
	return &vocabularyService{
		db:       db,
		log:      log.With("service", "VocabularyService"),
		ids:      idSource,
		items:    items,
		profiles: profiles,
	}
}

func (vs *vocabularyService) Upsert(ctx context.Context, in UpsertVocabularyInput) (*learning.VocabularyItem, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if in.LanguageProfileID == uuid.Nil {
		return nil, apierr.Validation("language_profile_id is required")
	}
	if strings.TrimSpace(in.Term) == "" {
		return nil, apierr.Validation("term is required")
	}

	profile, err := vs.profiles.GetForUser(ctx, nil, in.LanguageProfileID, caller)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if profile == nil {
		return nil, apierr.NotFound("language profile not found")
	}

	if in.ID != nil {
		return vs.replace(ctx, caller, *in.ID, in)
	}
	return vs.insert(ctx, caller, in)
}

func (vs *vocabularyService) insert(ctx context.Context, caller uuid.UUID, in UpsertVocabularyInput) (*learning.VocabularyItem, error) {
	now := time.Now().UTC()
	item := &learning.VocabularyItem{
		ID:                 vs.ids.NewID(),
		LanguageProfileID:  in.LanguageProfileID,
		UserID:             caller,
		Term:               in.Term,
		Translation:        in.Translation,
		PartOfSpeech:       in.PartOfSpeech,
		ExampleSentence:    in.ExampleSentence,
		ExampleTranslation: in.ExampleTranslation,
		Difficulty:         in.Difficulty,
		Tags:               in.Tags,
		LastReviewedAt:     in.LastReviewedAt,
		NextReviewAt:       in.NextReviewAt,
		SuccessStreak:      in.SuccessStreak,
		TotalReviews:       in.TotalReviews,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if _, err := vs.items.Create(ctx, nil, item); err != nil {
		return nil, fmt.Errorf("create vocabulary item: %w", err)
	}
	return item, nil
}

func (vs *vocabularyService) replace(ctx context.Context, caller, id uuid.UUID, in UpsertVocabularyInput) (*learning.VocabularyItem, error) {
	existing, err := vs.items.GetForUser(ctx, nil, id, caller)
	if err != nil {
		return nil, fmt.Errorf("fetch vocabulary item: %w", err)
	}
	if existing == nil {
		return nil, apierr.NotFound("vocabulary item not found")
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"language_profile_id": in.LanguageProfileID,
		"term":                in.Term,
		"translation":         in.Translation,
		"part_of_speech":      in.PartOfSpeech,
		"example_sentence":    in.ExampleSentence,
		"example_translation": in.ExampleTranslation,
		"difficulty":          in.Difficulty,
		"tags":                in.Tags,
		"last_reviewed_at":    in.LastReviewedAt,
		"next_review_at":      in.NextReviewAt,
		"success_streak":      in.SuccessStreak,
		"total_reviews":       in.TotalReviews,
		"updated_at":          now,
	}
	if err := vs.items.UpdateFieldsForUser(ctx, nil, id, caller, fields); err != nil {
		return nil, fmt.Errorf("replace vocabulary item: %w", err)
	}

	replaced := *existing
	replaced.LanguageProfileID = in.LanguageProfileID
	replaced.Term = in.Term
	replaced.Translation = in.Translation
	replaced.PartOfSpeech = in.PartOfSpeech
	replaced.ExampleSentence = in.ExampleSentence
	replaced.ExampleTranslation = in.ExampleTranslation
	replaced.Difficulty = in.Difficulty
	replaced.Tags = in.Tags
	replaced.LastReviewedAt = in.LastReviewedAt
	replaced.NextReviewAt = in.NextReviewAt
	replaced.SuccessStreak = in.SuccessStreak
	replaced.TotalReviews = in.TotalReviews
	replaced.UserID = caller
	replaced.UpdatedAt = now
	return &replaced, nil
}

func (vs *vocabularyService) Delete(ctx context.Context, id uuid.UUID) error {
	caller, err := callerID(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return apierr.Validation("id is required")
	}
	affected, err := vs.items.DeleteForUser(ctx, nil, id, caller)
	if err != nil {
		return fmt.Errorf("delete vocabulary item: %w", err)
	}
	if affected == 0 {
		return apierr.NotFound("vocabulary item not found")
	}
	return nil
}

// List pages through a profile's items. The profile row itself is not
// checked here; the owner filter on the items already confines results
// to the caller, so a foreign profile id only ever yields an empty page.
func (vs *vocabularyService) List(ctx context.Context, in ListVocabularyInput) (*VocabularyPage, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if in.LanguageProfileID == uuid.Nil {
		return nil, apierr.Validation("language_profile_id is required")
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	items, err := vs.items.ListByProfile(ctx, nil, in.LanguageProfileID, caller, in.offset(), in.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary items: %w", err)
	}
	return &VocabularyPage{
		Items:    items,
		Total:    len(items),
		Page:     in.Page,
		PageSize: in.PageSize,
	}, nil
}
