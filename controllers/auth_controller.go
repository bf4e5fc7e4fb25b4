package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

// AuthController exposes the dashboard sign-up/sign-in/sign-out flow.
type AuthController struct {
	auth services.AuthService
}

func NewAuthController(auth services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// SignUp creates a dashboard account.
func (ac *AuthController) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ac.auth.SignUp(req.Email, req.Password, req.FullName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign up failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  models.UserResponse{ID: user.ID, Email: user.Email, FullName: user.FullName},
	})
}

// SignIn authenticates an existing account.
func (ac *AuthController) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ac.auth.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign in failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  models.UserResponse{ID: user.ID, Email: user.Email, FullName: user.FullName},
	})
}

// SignOut revokes the presented token. Best-effort: always succeeds
// from the caller's point of view.
func (ac *AuthController) SignOut(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token != "" {
		ac.auth.SignOut(token)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
