package controllers

import (
	"net/http"

	"aliccedress/models"
	"aliccedress/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	nav *services.Navigator
}

func NewAuthController(nav *services.Navigator) *AuthController {
	return &AuthController{nav: nav}
}

// @Summary Register
// @Description Creates an account and logs it in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account"
// @Success 201 {object} models.Response{data=models.UserProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	profile, err := ctrl.nav.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Registration successful", profile)
}

// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response{data=models.UserProfile}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	profile, err := ctrl.nav.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Login successful", profile)
}

// @Summary Request logout
// @Description Asks for confirmation before logging out
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/logout [post]
func (ctrl *AuthController) RequestLogout(c *gin.Context) {
	view, err := ctrl.nav.RequestLogout()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Confirm logout", view)
}

// @Summary Confirm logout
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Failure 422 {object} models.ErrorResponse
// @Router /auth/logout/confirm [post]
func (ctrl *AuthController) ConfirmLogout(c *gin.Context) {
	view, err := ctrl.nav.ConfirmLogout(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Logged out", view)
}

// @Summary Cancel logout
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response{data=models.ProfileView}
// @Failure 422 {object} models.ErrorResponse
// @Router /auth/logout/cancel [post]
func (ctrl *AuthController) CancelLogout(c *gin.Context) {
	view, err := ctrl.nav.CancelLogout()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Logout cancelled", view)
}
