package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	config "github.com/phillip/medcamp-server-go/config"
)

const tokenTTL = 2 * time.Hour

// ---------------- ISSUE TOKEN ----------------
func CreateToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
			Role  string `json:"role"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now()
		claims := jwt.MapClaims{
			"email": input.Email,
			"role":  input.Role,
			"iat":   now.Unix(),
			"exp":   now.Add(tokenTTL).Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
			return
		}

		// Cross-site cookie: the frontend is served from a different origin.
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie("token", signed, int(tokenTTL.Seconds()), "/", "", true, true)

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ---------------- LOGOUT ----------------
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie("token", "", -1, "/", "", true, true)

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
