package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/models"
)

// RequireAuth middleware validates JWT token and checks garden access
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie
		cookie, err := c.Cookie("verdant_token")
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		// Validate token
		claims, err := ValidateToken(cookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		// Load user from database
		var user models.User
		if err := db.GetDB().First(&user, claims.UserID).Error; err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		// Explicit garden from query parameter takes precedence (?garden=8)
		var garden *models.Garden
		gardenIDStr := c.Query("garden")
		if gardenIDStr != "" {
			var gardenID uint
			if _, err := fmt.Sscanf(gardenIDStr, "%d", &gardenID); err == nil {
				var queried models.Garden
				if err := db.GetDB().First(&queried, gardenID).Error; err == nil {
					garden = &queried
				}
			}
		}

		// Otherwise use the garden resolved from the Host header
		if garden == nil {
			gardenVal, exists := c.Get("garden")
			if exists {
				garden = gardenVal.(*models.Garden)
			}
		}

		if garden == nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		// Check if user has access to this garden
		hasAccess := false

		// Global admins can access any garden
		if user.IsGlobalAdmin {
			hasAccess = true
		}

		// Garden owner can access
		if garden.OwnerID == user.ID {
			hasAccess = true
		}

		// Check if user is a garden member
		if !hasAccess {
			var gardenUser models.GardenUser
			err := db.GetDB().Where("garden_id = ? AND user_id = ?", garden.ID, user.ID).First(&gardenUser).Error
			if err == nil {
				hasAccess = true
			}
		}

		if !hasAccess {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You don't have access to this garden"})
			return
		}

		// Set user and garden in context for handlers
		c.Set("user", &user)
		c.Set("garden", garden)

		c.Next()
	}
}

// RequireGlobalAdmin middleware requires global admin privileges
func RequireGlobalAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		// First run RequireAuth
		RequireAuth()(c)

		if c.IsAborted() {
			return
		}

		// Check if user is global admin
		userVal, exists := c.Get("user")
		if !exists {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		user := userVal.(*models.User)
		if !user.IsGlobalAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Global administrator access required"})
			return
		}

		c.Next()
	}
}
