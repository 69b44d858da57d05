package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/verdantgarden/verdant/internal/db"
	"github.com/verdantgarden/verdant/internal/gardens"
	"github.com/verdantgarden/verdant/internal/models"
	"github.com/verdantgarden/verdant/internal/themes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTest(t *testing.T) *models.Garden {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.AutoMigrate(&models.User{}, &models.Garden{}, &models.GardenUser{}, &models.Theme{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	db.SetDB(database)

	owner := &models.User{Email: "owner@example.com", PasswordHash: "x"}
	if err := database.Create(owner).Error; err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}
	garden, err := gardens.CreateGarden(database, "ferns", owner.ID)
	if err != nil {
		t.Fatalf("CreateGarden failed: %v", err)
	}
	return garden
}

func themeRouter(garden *models.Garden) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("garden", garden)
	})
	r.GET("/admin/api/theme", GetThemeHandler)
	r.PUT("/admin/api/theme", SaveThemeHandler)
	r.POST("/admin/api/theme/palette", GeneratePaletteHandler)
	r.POST("/admin/api/theme/randomize", RandomizeThemeHandler)
	r.GET("/theme.css", ThemeCSSHandler)
	r.GET("/bloom.svg", BloomSVGHandler)
	r.GET("/", ServeGardenPage)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGetTheme(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	w := doJSON(t, r, "GET", "/admin/api/theme", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Title      string                `json:"title"`
		ActiveMode string                `json:"active_mode"`
		Theme      *themes.ThemeFormData `json:"theme"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ActiveMode != "light" {
		t.Errorf("active_mode = %q, want light", resp.ActiveMode)
	}
	if resp.Theme == nil || !themes.ValidHex(resp.Theme.Light.Palette.Primary) {
		t.Error("theme payload missing or invalid")
	}
}

func TestGeneratePalette(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	w := doJSON(t, r, "POST", "/admin/api/theme/palette", gin.H{
		"hue": 180.0, "saturation": 0.65, "lightness": 0.5, "mode": "complementary",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Palette themes.Palette `json:"palette"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, hex := range resp.Palette.Colors() {
		if !themes.ValidHex(hex) {
			t.Errorf("palette entry %q is not a valid hex color", hex)
		}
	}
}

func TestGeneratePaletteUnknownMode(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	w := doJSON(t, r, "POST", "/admin/api/theme/palette", gin.H{
		"hue": 10.0, "saturation": 0.5, "lightness": 0.5, "mode": "vibey",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGeneratePaletteApply(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	w := doJSON(t, r, "POST", "/admin/api/theme/palette", gin.H{
		"hue": 320.0, "saturation": 0.7, "lightness": 0.45,
		"mode": "triadic", "apply": true, "apply_to_both": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// The stored document reflects the applied palette
	theme, err := gardens.ActiveTheme(db.GetDB(), garden.ID)
	if err != nil {
		t.Fatalf("ActiveTheme failed: %v", err)
	}
	doc, err := themes.ParseDocument(theme.Document)
	if err != nil {
		t.Fatalf("stored document invalid: %v", err)
	}
	stock := themes.NewThemeFormData()
	if doc.Palette.Light == stock.Light.Palette {
		t.Error("stored light palette unchanged after apply")
	}
	if doc.Palette.Dark == stock.Dark.Palette {
		t.Error("stored dark palette unchanged after apply to both")
	}
}

func TestRandomizeScopes(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	for _, scope := range []string{"all", "bloom", "style", "controls", "palette"} {
		w := doJSON(t, r, "POST", "/admin/api/theme/randomize", gin.H{
			"scope": scope, "apply_to_both": true,
		})
		if w.Code != http.StatusOK {
			t.Errorf("scope %s: status = %d, body = %s", scope, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, "POST", "/admin/api/theme/randomize", gin.H{"scope": "everything"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown scope: status = %d, want 400", w.Code)
	}
}

func TestSaveThemeRejectsBadColor(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	form := themes.NewThemeFormData()
	form.Light.Content.BackgroundColor = "#xyzxyz"
	w := doJSON(t, r, "PUT", "/admin/api/theme", gin.H{"theme": form})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}

	// The stored document is untouched
	theme, err := gardens.ActiveTheme(db.GetDB(), garden.ID)
	if err != nil {
		t.Fatalf("ActiveTheme failed: %v", err)
	}
	if strings.Contains(theme.Document, "#xyzxyz") {
		t.Error("rejected save reached storage")
	}
}

func TestSaveTheme(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	form := themes.NewThemeFormData()
	form.Light.Content.BackgroundColor = "#112233"
	w := doJSON(t, r, "PUT", "/admin/api/theme", gin.H{
		"title": "Night moss", "active_mode": "dark", "theme": form,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	theme, err := gardens.ActiveTheme(db.GetDB(), garden.ID)
	if err != nil {
		t.Fatalf("ActiveTheme failed: %v", err)
	}
	if theme.Title != "Night moss" {
		t.Errorf("title = %q", theme.Title)
	}
	if theme.ActiveMode != "dark" {
		t.Errorf("active_mode = %q, want dark", theme.ActiveMode)
	}
	doc, err := themes.ParseDocument(theme.Document)
	if err != nil {
		t.Fatalf("stored document invalid: %v", err)
	}
	if doc.Content.Light.BackgroundColor != "#112233" {
		t.Errorf("stored background = %q", doc.Content.Light.BackgroundColor)
	}
}

func TestThemeCSS(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	w := doJSON(t, r, "GET", "/theme.css", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "--garden-bg:") {
		t.Error("stylesheet missing custom properties")
	}
	if !strings.Contains(body, "@media (prefers-color-scheme: dark)") {
		t.Error("stylesheet missing dark mode block")
	}
}

func TestBloomSVG(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	w := doJSON(t, r, "GET", "/bloom.svg", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if got := strings.Count(w.Body.String(), "<circle"); got != 4 {
		t.Errorf("bloom has %d circles, want 4", got)
	}
}

func TestServeGardenPage(t *testing.T) {
	garden := setupHandlerTest(t)
	r := themeRouter(garden)

	w := doJSON(t, r, "GET", "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "/theme.css") {
		t.Error("page does not link the theme stylesheet")
	}
	if !strings.Contains(body, "<svg") {
		t.Error("page missing bloom mark")
	}
	if !strings.Contains(body, "ferns") {
		t.Error("page missing garden title")
	}
}

func TestGetThemeNoActiveTheme(t *testing.T) {
	garden := setupHandlerTest(t)
	if err := db.GetDB().Model(&models.Theme{}).Where("garden_id = ?", garden.ID).Update("active", false).Error; err != nil {
		t.Fatalf("failed to deactivate theme: %v", err)
	}
	r := themeRouter(garden)

	w := doJSON(t, r, "GET", "/admin/api/theme", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestCorruptStoredDocument(t *testing.T) {
	garden := setupHandlerTest(t)
	if err := db.GetDB().Model(&models.Theme{}).Where("garden_id = ?", garden.ID).Update("document", "{not json").Error; err != nil {
		t.Fatalf("failed to corrupt document: %v", err)
	}
	r := themeRouter(garden)

	w := doJSON(t, r, "GET", "/admin/api/theme", nil)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
