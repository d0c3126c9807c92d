package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	learningRepo "github.com/srkarthi1982/language-learning-buddy/internal/data/repos/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/ids"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type StartSessionInput struct {
	LanguageProfileID uuid.UUID
	Mode              *string
	TotalQuestions    *int
	Notes             *string
}

// CompleteSessionInput closes a session. Omitted numeric/notes fields
// keep their stored values; EndedAt defaults to now. There is no guard
// against completing twice: a second call re-sets ended_at and merges
// again.
type CompleteSessionInput struct {
	ID             uuid.UUID
	TotalQuestions *int
	CorrectAnswers *int
	Notes          *string
	EndedAt        *time.Time
}

type ListSessionsInput struct {
	LanguageProfileID uuid.UUID
	PageParams
}

type SessionPage struct {
	Items    []*learning.PracticeSession `json:"items"`
	Total    int                         `json:"total"`
	Page     int                         `json:"page"`
	PageSize int                         `json:"page_size"`
}

type PracticeSessionService interface {
	Start(ctx context.Context, in StartSessionInput) (*learning.PracticeSession, error)
	Complete(ctx context.Context, in CompleteSessionInput) (*learning.PracticeSession, error)
	List(ctx context.Context, in ListSessionsInput) (*SessionPage, error)
}

type practiceSessionService struct {
	db       *gorm.DB
	log      *logger.Logger
	ids      ids.Source
	sessions learningRepo.PracticeSessionRepo
	profiles learningRepo.LanguageProfileRepo
}

func NewPracticeSessionService(
	db *gorm.DB,
	log *logger.Logger,
	idSource ids.Source,
	sessions learningRepo.PracticeSessionRepo,
	profiles learningRepo.LanguageProfileRepo,
) PracticeSessionService {
	return &practiceSessionService{
		db:       db,
		log:      log.With("service", "PracticeSessionService"),
		ids:      idSource,
		sessions: sessions,
		profiles: profiles,
	}
}

func (ss *practiceSessionService) Start(ctx context.Context, in StartSessionInput) (*learning.PracticeSession, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if in.LanguageProfileID == uuid.Nil {
		return nil, apierr.Validation("language_profile_id is required")
	}

	profile, err := ss.profiles.GetForUser(ctx, nil, in.LanguageProfileID, caller)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if profile == nil {
		return nil, apierr.NotFound("language profile not found")
	}

	now := time.Now().UTC()
	session := &learning.PracticeSession{
		ID:                ss.ids.NewID(),
		LanguageProfileID: in.LanguageProfileID,
		UserID:            caller,
		Mode:              in.Mode,
		StartedAt:         now,
		EndedAt:           nil,
		TotalQuestions:    in.TotalQuestions,
		CorrectAnswers:    nil,
		Notes:             in.Notes,
		CreatedAt:         now,
	}
	if _, err := ss.sessions.Create(ctx, nil, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (ss *practiceSessionService) Complete(ctx context.Context, in CompleteSessionInput) (*learning.PracticeSession, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if in.ID == uuid.Nil {
		return nil, apierr.Validation("id is required")
	}

	existing, err := ss.sessions.GetForUser(ctx, nil, in.ID, caller)
	if err != nil {
		return nil, fmt.Errorf("fetch session: %w", err)
	}
	if existing == nil {
		return nil, apierr.NotFound("practice session not found")
	}

	endedAt := time.Now().UTC()
	if in.EndedAt != nil {
		endedAt = *in.EndedAt
	}

	fields := map[string]any{"ended_at": endedAt}
	merged := *existing
	merged.EndedAt = &endedAt

	if in.TotalQuestions != nil {
		fields["total_questions"] = *in.TotalQuestions
		merged.TotalQuestions = in.TotalQuestions
	}
	if in.CorrectAnswers != nil {
		fields["correct_answers"] = *in.CorrectAnswers
		merged.CorrectAnswers = in.CorrectAnswers
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
		merged.Notes = in.Notes
	}

	if err := ss.sessions.UpdateFieldsForUser(ctx, nil, in.ID, caller, fields); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return &merged, nil
}

func (ss *practiceSessionService) List(ctx context.Context, in ListSessionsInput) (*SessionPage, error) {
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

	items, err := ss.sessions.ListByProfile(ctx, nil, in.LanguageProfileID, caller, in.offset(), in.PageSize)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return &SessionPage{
		Items:    items,
		Total:    len(items),
		Page:     in.Page,
		PageSize: in.PageSize,
	}, nil
}
