package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/gardens"
	"github.com/verdantgarden/verdant/internal/models"
	"github.com/verdantgarden/verdant/internal/themes"
)

// ServeGardenPage renders the garden's landing page themed by its
// active document
func ServeGardenPage(c *gin.Context) {
	gardenVal, exists := c.Get("garden")
	if !exists {
		c.String(http.StatusInternalServerError, "Garden not found")
		return
	}
	garden := gardenVal.(*models.Garden)

	title := garden.Title
	if title == "" {
		title = garden.Subdomain
	}

	theme, err := gardens.ActiveTheme(db.GetDB(), garden.ID)
	if err != nil {
		// No theme yet - show placeholder
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%s</title>
	<style>
		body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
		.placeholder { text-align: center; color: #666; }
	</style>
</head>
<body>
	<div class="placeholder">
		<h1>%s</h1>
		<p>This garden hasn't been planted yet.</p>
		<p><a href="/admin/login">Admin Login</a></p>
	</div>
</body>
</html>
`, html.EscapeString(title), html.EscapeString(title))))
		return
	}

	doc, parseErr := themes.ParseDocument(theme.Document)
	var bloom string
	if parseErr == nil {
		form := themes.DocumentToForm(doc, themes.Mode(theme.ActiveMode))
		bloom = themes.BloomSVG(form.ModeData(form.ActiveMode))
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%s</title>
	<link rel="stylesheet" href="/theme.css">
	<style>
		body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; line-height: 1.6; }
		.bloom-mark { width: 96px; height: 96px; }
	</style>
</head>
<body>
	<div class="bloom-mark">%s</div>
	<h1>%s</h1>
	<p>%s</p>
	<footer style="margin-top: 3em; padding-top: 1em;" class="divider">
		<a href="/admin/login">Admin Login</a>
	</footer>
</body>
</html>
`, html.EscapeString(title), bloom, html.EscapeString(title), html.EscapeString(garden.Tagline))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
