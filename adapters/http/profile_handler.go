package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/gan0622/DevForFun/internal/application/usecase/profile"
	"github.com/gan0622/DevForFun/pkg/apperror"
	"github.com/gan0622/DevForFun/pkg/logger"
)

type ProfileHandler struct {
	getProfile       *profileUC.GetProfileUseCase
	upsertProfile    *profileUC.UpsertProfileUseCase
	listProfiles     *profileUC.ListProfilesUseCase
	deleteProfile    *profileUC.DeleteProfileUseCase
	addExperience    *profileUC.AddExperienceUseCase
	removeExperience *profileUC.RemoveExperienceUseCase
	addEducation     *profileUC.AddEducationUseCase
	removeEducation  *profileUC.RemoveEducationUseCase
	logger           logger.Logger
}

func NewProfileHandler(
	getProfile *profileUC.GetProfileUseCase,
	upsertProfile *profileUC.UpsertProfileUseCase,
	listProfiles *profileUC.ListProfilesUseCase,
	deleteProfile *profileUC.DeleteProfileUseCase,
	addExperience *profileUC.AddExperienceUseCase,
	removeExperience *profileUC.RemoveExperienceUseCase,
	addEducation *profileUC.AddEducationUseCase,
	removeEducation *profileUC.RemoveEducationUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		getProfile:       getProfile,
		upsertProfile:    upsertProfile,
		listProfiles:     listProfiles,
		deleteProfile:    deleteProfile,
		addExperience:    addExperience,
		removeExperience: removeExperience,
		addEducation:     addEducation,
		removeEducation:  removeEducation,
		logger:           log,
	}
}

// GetMe returns the authenticated owner's profile.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	output, err := h.getProfile.Execute(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

// Upsert creates or merge-updates the authenticated owner's profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile upsert", err))
		return
	}

	output, err := h.upsertProfile.Execute(c.Request.Context(), profileUC.UpsertProfileInput{
		OwnerID: ownerID,
		Profile: req.ToDomainInput(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

// List returns every profile with its owner projection. Public.
func (h *ProfileHandler) List(c *gin.Context) {
	output, err := h.listProfiles.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTOs(output.Profiles))
}

// GetByOwner returns the profile of the owner in the path. Public.
func (h *ProfileHandler) GetByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		// A malformed id can't match any profile.
		c.Error(apperror.NewNotFound("profile", c.Param("user_id")))
		return
	}

	output, err := h.getProfile.Execute(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

// Delete removes the authenticated owner's profile and identity record.
func (h *ProfileHandler) Delete(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	if err := h.deleteProfile.Execute(c.Request.Context(), profileUC.DeleteProfileInput{OwnerID: ownerID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience entry", err))
		return
	}

	output, err := h.addExperience.Execute(c.Request.Context(), profileUC.AddExperienceInput{
		OwnerID: ownerID,
		Entry: profileUC.ExperienceInput{
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			From:        req.From,
			To:          req.To,
			Current:     req.Current,
			Description: req.Description,
		},
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	entryID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		c.Error(apperror.NewNotFound("experience entry", c.Param("exp_id")))
		return
	}

	output, err := h.removeExperience.Execute(c.Request.Context(), profileUC.RemoveExperienceInput{
		OwnerID: ownerID,
		EntryID: entryID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for education entry", err))
		return
	}

	output, err := h.addEducation.Execute(c.Request.Context(), profileUC.AddEducationInput{
		OwnerID: ownerID,
		Entry: profileUC.EducationInput{
			School:       req.School,
			Degree:       req.Degree,
			FieldOfStudy: req.FieldOfStudy,
			From:         req.From,
			To:           req.To,
			Current:      req.Current,
			Description:  req.Description,
		},
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	entryID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		c.Error(apperror.NewNotFound("education entry", c.Param("edu_id")))
		return
	}

	output, err := h.removeEducation.Execute(c.Request.Context(), profileUC.RemoveEducationInput{
		OwnerID: ownerID,
		EntryID: entryID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}
