package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/gardens"
	"github.com/verdantgarden/verdant/internal/models"
	"github.com/verdantgarden/verdant/internal/themes"
)

// contextGarden pulls the resolved garden out of the request context
func contextGarden(c *gin.Context) (*models.Garden, bool) {
	gardenVal, exists := c.Get("garden")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "garden not resolved"})
		return nil, false
	}
	return gardenVal.(*models.Garden), true
}

// loadThemeForm loads the garden's active theme and rebuilds its edit buffer
func loadThemeForm(c *gin.Context) (*models.Theme, *themes.ThemeFormData, bool) {
	garden, ok := contextGarden(c)
	if !ok {
		return nil, nil, false
	}

	theme, err := gardens.ActiveTheme(db.GetDB(), garden.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active theme"})
		return nil, nil, false
	}

	doc, err := themes.ParseDocument(theme.Document)
	if err != nil {
		log.Printf("garden %d: stored theme document invalid: %v", garden.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored theme is corrupt"})
		return nil, nil, false
	}

	form := themes.DocumentToForm(doc, themes.Mode(theme.ActiveMode))
	form.Title = theme.Title
	form.Description = theme.Description
	form.Type = theme.Type
	form.Kind = theme.Kind
	return theme, form, true
}

// saveThemeForm persists the edit buffer back onto the theme record
func saveThemeForm(c *gin.Context, theme *models.Theme, form *themes.ThemeFormData) bool {
	document, err := themes.MarshalDocument(themes.FormToDocument(form))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to serialize theme"})
		return false
	}

	theme.Title = form.Title
	theme.Description = form.Description
	theme.Type = form.Type
	theme.Kind = form.Kind
	theme.ActiveMode = string(form.ActiveMode)
	theme.Document = document

	if err := db.GetDB().Save(theme).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save theme"})
		return false
	}
	return true
}

// themeResponse is the API shape of a stored theme
func themeResponse(theme *models.Theme, form *themes.ThemeFormData) gin.H {
	return gin.H{
		"id":          theme.ID,
		"title":       theme.Title,
		"description": theme.Description,
		"type":        theme.Type,
		"kind":        theme.Kind,
		"active_mode": theme.ActiveMode,
		"theme":       form,
	}
}

// GetThemeHandler returns the garden's active theme
func GetThemeHandler(c *gin.Context) {
	theme, form, ok := loadThemeForm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, themeResponse(theme, form))
}

// SaveThemeRequest is the PUT /admin/api/theme payload
type SaveThemeRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	ActiveMode  string                `json:"active_mode"`
	Theme       *themes.ThemeFormData `json:"theme" binding:"required"`
}

// SaveThemeHandler validates and saves a full theme edit buffer
func SaveThemeHandler(c *gin.Context) {
	theme, _, ok := loadThemeForm(c)
	if !ok {
		return
	}

	var req SaveThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Strict validation: a malformed color anywhere rejects the save
	if err := req.Theme.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if req.Title != "" {
		req.Theme.Title = req.Title
	}
	req.Theme.Description = req.Description
	if req.ActiveMode == string(themes.Dark) {
		req.Theme.ActiveMode = themes.Dark
	} else {
		req.Theme.ActiveMode = themes.Light
	}

	if !saveThemeForm(c, theme, req.Theme) {
		return
	}
	c.JSON(http.StatusOK, themeResponse(theme, req.Theme))
}

// GeneratePaletteRequest is the POST /admin/api/theme/palette payload
type GeneratePaletteRequest struct {
	Hue         float64 `json:"hue"`
	Saturation  float64 `json:"saturation"`
	Lightness   float64 `json:"lightness"`
	Mode        string  `json:"mode" binding:"required"`
	Apply       bool    `json:"apply"`
	ApplyToBoth bool    `json:"apply_to_both"`
}

// GeneratePaletteHandler builds a harmony palette from seed values.
// With apply=true the palette is applied to the stored theme and
// derived colors are recomputed.
func GeneratePaletteHandler(c *gin.Context) {
	var req GeneratePaletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := themes.ParseHarmonyMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rng := themes.NewSource()
	palette := themes.GeneratePalette(req.Hue, req.Saturation, req.Lightness, mode, rng)

	if !req.Apply {
		c.JSON(http.StatusOK, gin.H{"palette": palette})
		return
	}

	theme, form, ok := loadThemeForm(c)
	if !ok {
		return
	}
	themes.ApplyPalette(form, palette, req.ApplyToBoth, rng)
	if !saveThemeForm(c, theme, form) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"palette": palette, "theme": form})
}

// RandomizeRequest is the POST /admin/api/theme/randomize payload
type RandomizeRequest struct {
	Scope       string `json:"scope" binding:"required"`
	ApplyToBoth bool   `json:"apply_to_both"`
}

// RandomizeThemeHandler rerolls part or all of the stored theme
func RandomizeThemeHandler(c *gin.Context) {
	var req RandomizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, form, ok := loadThemeForm(c)
	if !ok {
		return
	}

	rng := themes.NewSource()
	switch req.Scope {
	case "all":
		themes.RandomizeAll(form, req.ApplyToBoth, rng)
	case "bloom":
		themes.RandomizeBloom(form, req.ApplyToBoth, rng)
	case "style":
		themes.RandomizeStyle(form, req.ApplyToBoth, rng)
	case "controls":
		themes.RandomizeControls(form, req.ApplyToBoth, rng)
	case "palette":
		palette := themes.GeneratePalette(rng.Float64()*360, 0.2+rng.Float64()*0.8, 0.15+rng.Float64()*0.7, themes.RandomHarmony, rng)
		themes.ApplyPalette(form, palette, req.ApplyToBoth, rng)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be all, bloom, style, controls, or palette"})
		return
	}

	if !saveThemeForm(c, theme, form) {
		return
	}
	c.JSON(http.StatusOK, themeResponse(theme, form))
}

// ThemeCSSHandler serves the garden's stylesheet
func ThemeCSSHandler(c *gin.Context) {
	_, form, ok := loadThemeForm(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.GenerateCSS(form)))
}

// BloomSVGHandler serves the garden's bloom mark for the active mode
func BloomSVGHandler(c *gin.Context) {
	_, form, ok := loadThemeForm(c)
	if !ok {
		return
	}
	md := form.ModeData(form.ActiveMode)
	c.Data(http.StatusOK, "image/svg+xml", []byte(themes.BloomSVG(md)))
}
