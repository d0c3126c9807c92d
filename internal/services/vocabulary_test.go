package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srkarthi1982/language-learning-buddy/internal/domain/learning"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
)

func seedProfile(t *testing.T, env *testEnv, ctx context.Context) *learning.LanguageProfile {
	t.Helper()
	profile, err := env.profiles.Create(ctx, CreateProfileInput{TargetLanguage: "es"})
	require.NoError(t, err)
	return profile
}

func TestUpsertWithoutIDCreatesFreshIDs(t *testing.T) {
	env := newTestEnv(t)
	caller := uuid.New()
	ctx := authedCtx(caller)
	profile := seedProfile(t, env, ctx)

	seen := map[uuid.UUID]bool{}
	for _, term := range []string{"hola", "adios", "gracias"} {
		item, err := env.vocab.Upsert(ctx, UpsertVocabularyInput{
			LanguageProfileID: profile.ID,
			Term:              term,
		})
		require.NoError(t, err)
		assert.Equal(t, term, item.Term)
		assert.Equal(t, caller, item.UserID)
		assert.False(t, seen[item.ID], "id %s reissued", item.ID)
		seen[item.ID] = true
	}
}

func TestUpsertUnknownProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := authedCtx(uuid.New())

	_, err := env.vocab.Upsert(ctx, UpsertVocabularyInput{
		LanguageProfileID: uuid.New(),
		Term:              "hola",
	})
	requireCode(t, err, apierr.CodeNotFound)
}

func TestUpsertForeignProfile(t *testing.T) {
	env := newTestEnv(t)
	other := seedProfile(t, env, authedCtx(uuid.New()))

	_, err := env.vocab.Upsert(authedCtx(uuid.New()), UpsertVocabularyInput{
		LanguageProfileID: other.ID,
		Term:              "hola",
	})
	requireCode(t, err, apierr.CodeNotFound)
}

func TestUpsertWithIDOverwrites(t *testing.T) {
	env := newTestEnv(t)
	caller := uuid.New()
	ctx := authedCtx(caller)
	profile := seedProfile(t, env, ctx)

	created, err := env.vocab.Upsert(ctx, UpsertVocabularyInput{
		LanguageProfileID: profile.ID,
		Term:              "hola",
		Translation:       strPtr("hello"),
		Tags:              strPtr("greeting"),
		SuccessStreak:     intPtr(3),
	})
	require.NoError(t, err)

	// Replace supplying only term: every omitted optional field clears.
	replaced, err := env.vocab.Upsert(ctx, UpsertVocabularyInput{
		ID:                &created.ID,
		LanguageProfileID: profile.ID,
		Term:              "hola",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Nil(t, replaced.Translation)
	assert.Nil(t, replaced.Tags)
	assert.Nil(t, replaced.SuccessStreak)
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)

	stored, err := env.itemRepo.GetForUser(ctx, nil, created.ID, caller)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Nil(t, stored.Translation)
	assert.Nil(t, stored.Tags)
	assert.Nil(t, stored.SuccessStreak)
}

func TestUpsertWithForeignItemID(t *testing.T) {
	env := newTestEnv(t)
	ownerCtx := authedCtx(uuid.New())
	ownerProfile := seedProfile(t, env, ownerCtx)
	item, err := env.vocab.Upsert(ownerCtx, UpsertVocabularyInput{
		LanguageProfileID: ownerProfile.ID,
		Term:              "hola",
		Translation:       strPtr("hello"),
	})
	require.NoError(t, err)

	strangerCtx := authedCtx(uuid.New())
	strangerProfile := seedProfile(t, env, strangerCtx)
	_, err = env.vocab.Upsert(strangerCtx, UpsertVocabularyInput{
		ID:                &item.ID,
		LanguageProfileID: strangerProfile.ID,
		Term:              "stolen",
	})
	requireCode(t, err, apierr.CodeNotFound)

	// The owner's row is untouched.
	stored, err := env.itemRepo.GetForUser(ownerCtx, nil, item.ID, item.UserID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hola", stored.Term)
	require.NotNil(t, stored.Translation)
	assert.Equal(t, "hello", *stored.Translation)
}

func TestDeleteTwice(t *testing.T) {
	env := newTestEnv(t)
	ctx := authedCtx(uuid.New())
	profile := seedProfile(t, env, ctx)

	item, err := env.vocab.Upsert(ctx, UpsertVocabularyInput{
		LanguageProfileID: profile.ID,
		Term:              "hola",
	})
	require.NoError(t, err)

	require.NoError(t, env.vocab.Delete(ctx, item.ID))
	requireCode(t, env.vocab.Delete(ctx, item.ID), apierr.CodeNotFound)
}

func TestDeleteForeignItem(t *testing.T) {
	env := newTestEnv(t)
	ownerCtx := authedCtx(uuid.New())
	profile := seedProfile(t, env, ownerCtx)
	item, err := env.vocab.Upsert(ownerCtx, UpsertVocabularyInput{
		LanguageProfileID: profile.ID,
		Term:              "hola",
	})
	require.NoError(t, err)

	requireCode(t, env.vocab.Delete(authedCtx(uuid.New()), item.ID), apierr.CodeNotFound)
}

func TestListVocabularyPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := authedCtx(uuid.New())
	profile := seedProfile(t, env, ctx)

	const total = 25
	for i := 0; i < total; i++ {
		_, err := env.vocab.Upsert(ctx, UpsertVocabularyInput{
			LanguageProfileID: profile.ID,
			Term:              "term",
		})
		require.NoError(t, err)
	}

	first, err := env.vocab.List(ctx, ListVocabularyInput{
		LanguageProfileID: profile.ID,
		PageParams:        PageParams{Page: 1, PageSize: 10},
	})
	require.NoError(t, err)
	second, err := env.vocab.List(ctx, ListVocabularyInput{
		LanguageProfileID: profile.ID,
		PageParams:        PageParams{Page: 2, PageSize: 10},
	})
	require.NoError(t, err)
	third, err := env.vocab.List(ctx, ListVocabularyInput{
		LanguageProfileID: profile.ID,
		PageParams:        PageParams{Page: 3, PageSize: 10},
	})
	require.NoError(t, err)

	assert.Len(t, first.Items, 10)
	assert.Len(t, second.Items, 10)
	assert.Len(t, third.Items, 5)

	// "total" reports the page's item count, not the collection size.
	assert.Equal(t, 10, first.Total)
	assert.Equal(t, 5, third.Total)
	assert.Equal(t, 2, second.Page)
	assert.Equal(t, 10, second.PageSize)

	// No overlap and no gaps across consecutive pages.
	seen := map[uuid.UUID]bool{}
	for _, page := range []*VocabularyPage{first, second, third} {
		for _, item := range page.Items {
			assert.False(t, seen[item.ID], "item %s appears twice", item.ID)
			seen[item.ID] = true
		}
	}
	assert.Len(t, seen, total)
}

func TestListVocabularyDefaultsAndBounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := authedCtx(uuid.New())
	profile := seedProfile(t, env, ctx)

	page, err := env.vocab.List(ctx, ListVocabularyInput{LanguageProfileID: profile.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)

	_, err = env.vocab.List(ctx, ListVocabularyInput{
		LanguageProfileID: profile.ID,
		PageParams:        PageParams{Page: -1},
	})
	requireCode(t, err, apierr.CodeValidation)

	_, err = env.vocab.List(ctx, ListVocabularyInput{
		LanguageProfileID: profile.ID,
		PageParams:        PageParams{PageSize: 101},
	})
	requireCode(t, err, apierr.CodeValidation)
}

func TestListVocabularyForeignProfileIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	ownerCtx := authedCtx(uuid.New())
	profile := seedProfile(t, env, ownerCtx)
	_, err := env.vocab.Upsert(ownerCtx, UpsertVocabularyInput{
		LanguageProfileID: profile.ID,
		Term:              "hola",
	})
	require.NoError(t, err)

	// Listing against a profile the caller does not own leaks nothing:
	// the owner filter on items leaves the page empty.
	page, err := env.vocab.List(authedCtx(uuid.New()), ListVocabularyInput{LanguageProfileID: profile.ID})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
}
