package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/abdullahkazmii/BE-NutritionAi/models"
	"github.com/abdullahkazmii/BE-NutritionAi/services"
	"github.com/abdullahkazmii/BE-NutritionAi/utils"

	"github.com/gin-gonic/gin"
)

const tokenLifetime = 30 * time.Minute

// Login accepts form-encoded credentials and returns the user together with
// a bearer token.
func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := services.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondWithToken(c, user)
}

// AdminLogin is the admin-only login variant: valid credentials for a
// standard account are rejected.
func AdminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := services.AuthenticateAdmin(username, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAdminOnly):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	respondWithToken(c, user)
}

func respondWithToken(c *gin.Context, user *models.User) {
	token, err := utils.GenerateJWT(user.ID, user.Role, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"access_token": token,
		"token_type":   "bearer",
	})
}
