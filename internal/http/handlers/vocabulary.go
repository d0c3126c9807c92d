package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srkarthi1982/language-learning-buddy/internal/http/response"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
	"github.com/srkarthi1982/language-learning-buddy/internal/services"
)

type VocabularyHandler struct {
	vocabularyService services.VocabularyService
}

func NewVocabularyHandler(vocabularyService services.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{vocabularyService: vocabularyService}
}

// PUT /vocabulary
// Presence of "id" selects replace vs. create.
func (vh *VocabularyHandler) Upsert(c *gin.Context) {
	var req struct {
		ID                 *uuid.UUID `json:"id"`
		LanguageProfileID  uuid.UUID  `json:"language_profile_id" binding:"required"`
		Term               string     `json:"term" binding:"required,min=1"`
		Translation        *string    `json:"translation"`
		PartOfSpeech       *string    `json:"part_of_speech"`
		ExampleSentence    *string    `json:"example_sentence"`
		ExampleTranslation *string    `json:"example_translation"`
		Difficulty         *string    `json:"difficulty"`
		Tags               *string    `json:"tags"`
		LastReviewedAt     *time.Time `json:"last_reviewed_at"`
		NextReviewAt       *time.Time `json:"next_review_at"`
		SuccessStreak      *int       `json:"success_streak"`
		TotalReviews       *int       `json:"total_reviews"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, err)
		return
	}
	item, err := vh.vocabularyService.Upsert(c.Request.Context(), services.UpsertVocabularyInput{
		ID:                 req.ID,
		LanguageProfileID:  req.LanguageProfileID,
		Term:               req.Term,
		Translation:        req.Translation,
		PartOfSpeech:       req.PartOfSpeech,
		ExampleSentence:    req.ExampleSentence,
		ExampleTranslation: req.ExampleTranslation,
		Difficulty:         req.Difficulty,
		Tags:               req.Tags,
		LastReviewedAt:     req.LastReviewedAt,
		NextReviewAt:       req.NextReviewAt,
		SuccessStreak:      req.SuccessStreak,
		TotalReviews:       req.TotalReviews,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"item": item})
}

// DELETE /vocabulary/:id
func (vh *VocabularyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, apierr.Validation("id must be a valid uuid"))
		return
	}
	if err := vh.vocabularyService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.OKEmpty(c)
}

// GET /vocabulary?language_profile_id=&page=&page_size=
func (vh *VocabularyHandler) List(c *gin.Context) {
	var req struct {
		LanguageProfileID string `form:"language_profile_id" binding:"required"`
		Page              int    `form:"page"`
		PageSize          int    `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.FailValidation(c, err)
		return
	}
	profileID, err := uuid.Parse(req.LanguageProfileID)
	if err != nil {
		response.Fail(c, apierr.Validation("language_profile_id must be a valid uuid"))
		return
	}
	page, err := vh.vocabularyService.List(c.Request.Context(), services.ListVocabularyInput{
		LanguageProfileID: profileID,
		PageParams:        services.PageParams{Page: req.Page, PageSize: req.PageSize},
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, page)
}
