package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantgarden/verdant/internal/auth"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/models"
)

// LoginFormHandler renders the login form
func LoginFormHandler(c *gin.Context) {
	html := `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Sign in - Verdant</title>
	<link rel="stylesheet" href="/theme.css">
</head>
<body>
	<div class="panel" style="max-width: 360px; margin: 100px auto;">
		<h1>Sign in</h1>
		<form method="POST" action="/admin/login">
			<p><input type="email" name="email" placeholder="Email" required></p>
			<p><input type="password" name="password" placeholder="Password" required></p>
			<p><button type="submit">Sign in</button></p>
		</form>
	</div>
</body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// LoginHandler handles admin login requests
func LoginHandler(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	// Get garden from context
	gardenVal, exists := c.Get("garden")
	if !exists {
		c.String(http.StatusInternalServerError, "Garden not found")
		return
	}
	garden := gardenVal.(*models.Garden)

	// Find user by email
	var user models.User
	if err := db.GetDB().Where("email = ?", email).First(&user).Error; err != nil {
		c.String(http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Verify password
	if !auth.CheckPassword(password, user.PasswordHash) {
		c.String(http.StatusUnauthorized, "Invalid email or password")
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
		c.String(http.StatusForbidden, "You don't have access to this garden")
		return
	}

	// Generate JWT token
	token, err := auth.GenerateToken(&user, garden)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate token: %v", err)
		return
	}

	// Set SameSite attribute before setting cookie
	c.SetSameSite(http.SameSiteLaxMode)

	// Set HTTP-only cookie
	c.SetCookie(
		"verdant_token", // name
		token,           // value
		28800,           // max age (8 hours in seconds)
		"/",             // path
		"",              // domain (empty = current domain)
		false,           // secure (set to true in production with HTTPS)
		true,            // httpOnly
	)

	// Redirect to dashboard
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// LogoutHandler handles admin logout requests
func LogoutHandler(c *gin.Context) {
	// Clear cookie
	c.SetCookie(
		"verdant_token",
		"",
		-1, // max age -1 deletes the cookie
		"/",
		"",
		false,
		true,
	)

	// Redirect to login
	c.Redirect(http.StatusFound, "/admin/login")
}

// DashboardHandler renders the admin dashboard
func DashboardHandler(c *gin.Context) {
	// Get user from context (set by auth middleware)
	userVal, exists := c.Get("user")
	if !exists {
		c.String(http.StatusUnauthorized, "Not authenticated")
		return
	}
	user := userVal.(*models.User)

	gardenVal, exists := c.Get("garden")
	if !exists {
		c.String(http.StatusInternalServerError, "Garden not found")
		return
	}
	garden := gardenVal.(*models.Garden)

	c.String(http.StatusOK, "Verdant Dashboard\n\nUser: %s\nGarden: %s\nGlobal Admin: %v",
		user.Email, garden.Subdomain, user.IsGlobalAdmin)
}
