package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/zarjin/FaceBook-Clone/services"
)

const (
	sessionCookieName = "token"
	// Matches the token's 7-day lifetime.
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

var validate = validator.New()

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, token, err := ac.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, token, err := ac.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Logout clears the cookie only. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (ac *AuthController) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// CheckSession runs behind RequireAuth, so reaching it means the session is
// valid.
func (ac *AuthController) CheckSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authorized": true})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookieName, token, sessionCookieMaxAge, "/", "", true, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", true, true)
}
