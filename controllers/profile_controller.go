package controllers

import (
	"errors"
	"net/http"

	"aliccedress/apperror"
	"aliccedress/libs"
	"aliccedress/models"
	"aliccedress/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	nav      *services.Navigator
	uploader libs.AvatarUploader
}

func NewProfileController(nav *services.Navigator, uploader libs.AvatarUploader) *ProfileController {
	return &ProfileController{nav: nav, uploader: uploader}
}

// @Summary Get profile
// @Description Get the session profile with edit and logout state
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Failure 401 {object} models.ErrorResponse
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	respond(c, http.StatusOK, "Profile retrieved", ctrl.nav.Profile())
}

// @Summary Start editing
// @Description Copies the profile into an editable draft
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Router /profile/edit [post]
func (ctrl *ProfileController) StartEditing(c *gin.Context) {
	view, err := ctrl.nav.StartEditing()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Editing profile", view)
}

// @Summary Update draft
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body models.ProfileFields true "Draft fields"
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Failure 422 {object} models.ErrorResponse
// @Router /profile/draft [patch]
func (ctrl *ProfileController) UpdateDraft(c *gin.Context) {
	var fields models.ProfileFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadRequest(c, err)
		return
	}

	view, err := ctrl.nav.UpdateDraft(fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Draft updated", view)
}

// @Summary Cancel editing
// @Description Restores the draft and returns to viewing
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Router /profile/cancel [post]
func (ctrl *ProfileController) CancelEditing(c *gin.Context) {
	respond(c, http.StatusOK, "Editing cancelled", ctrl.nav.CancelEditing())
}

// @Summary Save profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body models.ProfileFields true "Profile fields"
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /profile [put]
func (ctrl *ProfileController) SaveProfile(c *gin.Context) {
	var fields models.ProfileFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondBadRequest(c, err)
		return
	}

	view, err := ctrl.nav.SaveProfile(c.Request.Context(), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Profile saved", view)
}

// @Summary Upload avatar
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/avatar [post]
func (ctrl *ProfileController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, apperror.Validation(libs.ErrImageNotPresent.Error()))
		return
	}

	url, err := ctrl.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		respondError(c, uploadError(err))
		return
	}

	view, err := ctrl.nav.SetAvatar(c.Request.Context(), url)
	if err != nil {
		if delErr := ctrl.uploader.Delete(c.Request.Context(), url); delErr != nil {
			log.Warn().Err(delErr).Str("url", url).Msg("failed to remove orphaned avatar")
		}
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Avatar updated", view)
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, libs.ErrImageNotPresent),
		errors.Is(err, libs.ErrImageTooLarge),
		errors.Is(err, libs.ErrImageWrongType):
		return apperror.Validation(err.Error())
	default:
		return apperror.Wrap(apperror.CodeDependency, err, "failed to store avatar")
	}
}
