package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srkarthi1982/language-learning-buddy/internal/http/response"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/apierr"
	"github.com/srkarthi1982/language-learning-buddy/internal/services"
)

type LanguageProfileHandler struct {
	profileService services.LanguageProfileService
}

func NewLanguageProfileHandler(profileService services.LanguageProfileService) *LanguageProfileHandler {
	return &LanguageProfileHandler{profileService: profileService}
}

// POST /profiles
// body: { "target_language": "...", "native_language"?, "proficiency_level"?, "goals"? }
func (ph *LanguageProfileHandler) Create(c *gin.Context) {
	var req struct {
		TargetLanguage   string  `json:"target_language" binding:"required,min=1"`
		NativeLanguage   *string `json:"native_language"`
		ProficiencyLevel *string `json:"proficiency_level"`
		Goals            *string `json:"goals"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, err)
		return
	}
	profile, err := ph.profileService.Create(c.Request.Context(), services.CreateProfileInput{
		TargetLanguage:   req.TargetLanguage,
		NativeLanguage:   req.NativeLanguage,
		ProficiencyLevel: req.ProficiencyLevel,
		Goals:            req.Goals,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"profile": profile})
}

// PATCH /profiles/:id
// Omitted fields keep their stored values.
func (ph *LanguageProfileHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, apierr.Validation("id must be a valid uuid"))
		return
	}
	var req struct {
		TargetLanguage   *string `json:"target_language"`
		NativeLanguage   *string `json:"native_language"`
		ProficiencyLevel *string `json:"proficiency_level"`
		Goals            *string `json:"goals"`
		IsActive         *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailValidation(c, err)
		return
	}
	profile, err := ph.profileService.Update(c.Request.Context(), services.UpdateProfileInput{
		ID:               id,
		TargetLanguage:   req.TargetLanguage,
		NativeLanguage:   req.NativeLanguage,
		ProficiencyLevel: req.ProficiencyLevel,
		Goals:            req.Goals,
		IsActive:         req.IsActive,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"profile": profile})
}

// GET /profiles?include_inactive=
func (ph *LanguageProfileHandler) List(c *gin.Context) {
	var req struct {
		IncludeInactive bool `form:"include_inactive"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		response.FailValidation(c, err)
		return
	}
	profiles, err := ph.profileService.List(c.Request.Context(), req.IncludeInactive)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, gin.H{"profiles": profiles, "count": len(profiles)})
}
