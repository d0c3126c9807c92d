package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srkarthi1982/language-learning-buddy/internal/http/response"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
	"github.com/srkarthi1982/language-learning-buddy/internal/services"
)

type PracticeSessionHandler struct {
	sessionService services.PracticeSessionService
}

func NewPracticeSessionHandler(sessionService services.PracticeSessionService) *PracticeSessionHandler {
	return &PracticeSessionHandler{sessionService: sessionService}
}

// POST /practice-sessions
func (sh *PracticeSessionHandler) Start(c *gin.Context) {
	var req struct {
		LanguageProfileID uuid.UUID `json:"language_profile_id" binding:"required"`
		Mode              *string   `json:"mode"`
		TotalQuestions    *int      `json:"total_questions"`
		Notes             *string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, err)
		return
	}
	session, err := sh.sessionService.Start(c.Request.Context(), services.StartSessionInput{
		LanguageProfileID: req.LanguageProfileID,
		Mode:              req.Mode,
		TotalQuestions:    req.TotalQuestions,
		Notes:             req.Notes,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"session": session})
}

// POST /practice-sessions/:id/complete
func (sh *PracticeSessionHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, apierr.Validation("id must be a valid uuid"))
		return
	}
	var req struct {
		TotalQuestions *int       `json:"total_questions"`
		CorrectAnswers *int       `json:"correct_answers"`
		Notes          *string    `json:"notes"`
		EndedAt        *time.Time `json:"ended_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, err)
		return
	}
	session, err := sh.sessionService.Complete(c.Request.Context(), services.CompleteSessionInput{
		ID:             id,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		Notes:          req.Notes,
		EndedAt:        req.EndedAt,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"session": session})
}

// GET /practice-sessions?language_profile_id=&page=&page_size=
func (sh *PracticeSessionHandler) List(c *gin.Context) {
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
	page, err := sh.sessionService.List(c.Request.Context(), services.ListSessionsInput{
		LanguageProfileID: profileID,
		PageParams:        services.PageParams{Page: req.Page, PageSize: req.PageSize},
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, page)
}
