package learning

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/srkarthi1982/language-learning-buddy/internal/data/repos/testutil"
	"github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
)

func TestPracticeSessionRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPracticeSessionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := uuid.New()
	profileID := uuid.New()
	now := time.Now().UTC()

	created, err := repo.Create(ctx, nil, &learning.PracticeSession{
		ID:                uuid.New(),
		LanguageProfileID: profileID,
		UserID:            owner,
		StartedAt:         now,
		CreatedAt:         now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetForUser(ctx, nil, created.ID, owner)
	if err != nil {
		t.Fatalf("GetForUser: %v", err)
	}
	if got == nil || got.EndedAt != nil {
		t.Fatalf("GetForUser: expected open session, got %+v", got)
	}

	got, err = repo.GetForUser(ctx, nil, created.ID, uuid.New())
	if err != nil {
		t.Fatalf("GetForUser (stranger): %v", err)
	}
	if got != nil {
		t.Fatalf("GetForUser (stranger): expected nil, got %+v", got)
	}

	endedAt := now.Add(5 * time.Minute)
	if err := repo.UpdateFieldsForUser(ctx, nil, created.ID, owner, map[string]any{
		"ended_at":        endedAt,
		"correct_answers": 8,
	}); err != nil {
		t.Fatalf("UpdateFieldsForUser: %v", err)
	}
	got, err = repo.GetForUser(ctx, nil, created.ID, owner)
	if err != nil {
		t.Fatalf("GetForUser after update: %v", err)
	}
	if got.EndedAt == nil || got.CorrectAnswers == nil || *got.CorrectAnswers != 8 {
		t.Fatalf("UpdateFieldsForUser: fields not applied: %+v", got)
	}

	listed, err := repo.ListByProfile(ctx, nil, profileID, owner, 0, 10)
	if err != nil {
		t.Fatalf("ListByProfile: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("ListByProfile: expected 1, got %d", len(listed))
	}
}
