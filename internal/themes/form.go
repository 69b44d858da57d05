// SPDX-License-Identifier: MIT
package themes

import "fmt"

// BloomData holds the four-circle logo fills plus its border. Each
// fill is independently a solid or a gradient.
type BloomData struct {
	Primary     ColorValue `json:"primary"`
	Secondary   ColorValue `json:"secondary"`
	Tertiary    ColorValue `json:"tertiary"`
	Quaternary  ColorValue `json:"quaternary"`
	BorderColor string     `json:"borderColor"`
	BorderWidth string     `json:"borderWidth"`
}

// Fills returns the four bloom fills in palette order.
func (b BloomData) Fills() [4]ColorValue {
	return [4]ColorValue{b.Primary, b.Secondary, b.Tertiary, b.Quaternary}
}

// ContentData holds the page-level color set for one mode.
type ContentData struct {
	BackgroundColor string `json:"backgroundColor"`
	PanelColor      string `json:"panelColor"`
	TextColor       string `json:"textColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     string `json:"borderWidth"`
	BorderRadius    string `json:"borderRadius"`
	BorderStyle     string `json:"borderStyle"`
	Font            string `json:"font"`
	SelectionColor  string `json:"selectionColor,omitempty"`
}

// ControlsData holds the button and link styling for one mode.
type ControlsData struct {
	ButtonBackground   ColorValue `json:"buttonBackground"`
	ButtonTextColor    string     `json:"buttonTextColor"`
	ButtonBorderColor  string     `json:"buttonBorderColor"`
	ButtonBorderWidth  string     `json:"buttonBorderWidth"`
	ButtonBorderStyle  string     `json:"buttonBorderStyle"`
	ButtonBorderRadius string     `json:"buttonBorderRadius"`
	LinkColor          string     `json:"linkColor"`
	LinkUnderlineStyle string     `json:"linkUnderlineStyle"`
}

// ThemeModeData is the edit buffer for one display mode. It is
// created with defaults, mutated field-by-field by the editor or by
// the randomizers, and serialized to a ThemeDocument on save. It has
// no identity beyond "current edit buffer" and is not shared between
// goroutines.
type ThemeModeData struct {
	Palette  Palette      `json:"palette"`
	Bloom    BloomData    `json:"bloom"`
	Content  ContentData  `json:"content"`
	Controls ControlsData `json:"controls"`
}

// ThemeFormData aggregates both modes plus theme metadata. Exactly
// one mode is active for preview/editing at any time; whether an edit
// targets the active mode or both is an explicit caller decision.
type ThemeFormData struct {
	Light       ThemeModeData `json:"light"`
	Dark        ThemeModeData `json:"dark"`
	ActiveMode  Mode          `json:"activeMode"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	Kind        string        `json:"kind"`
}

// NewThemeFormData returns an edit buffer with the stock defaults: a
// blue-slate light mode and its dark counterpart.
func NewThemeFormData() *ThemeFormData {
	lightPalette := Palette{
		Primary:    "#2563eb",
		Secondary:  "#64748b",
		Tertiary:   "#0ea5e9",
		Quaternary: "#94a3b8",
	}
	darkPalette := Palette{
		Primary:    "#3b82f6",
		Secondary:  "#94a3b8",
		Tertiary:   "#38bdf8",
		Quaternary: "#64748b",
	}

	return &ThemeFormData{
		ActiveMode: Light,
		Title:      "Untitled theme",
		Type:       "garden",
		Kind:       "custom",
		Light: ThemeModeData{
			Palette: lightPalette,
			Bloom: BloomData{
				Primary:     NewSolid(lightPalette.Primary),
				Secondary:   NewSolid(lightPalette.Secondary),
				Tertiary:    NewSolid(lightPalette.Tertiary),
				Quaternary:  NewSolid(lightPalette.Quaternary),
				BorderColor: "#000000",
				BorderWidth: "2px",
			},
			Content: ContentData{
				BackgroundColor: "#ffffff",
				PanelColor:      "#f8fafc",
				TextColor:       "#0f172a",
				BorderColor:     "#e2e8f0",
				BorderWidth:     "1px",
				BorderRadius:    "8px",
				BorderStyle:     "solid",
				Font:            "system",
				SelectionColor:  "#bfdbfe",
			},
			Controls: ControlsData{
				ButtonBackground:   NewSolid(lightPalette.Primary),
				ButtonTextColor:    "#ffffff",
				ButtonBorderColor:  "#1d4ed8",
				ButtonBorderWidth:  "1px",
				ButtonBorderStyle:  "solid",
				ButtonBorderRadius: "6px",
				LinkColor:          "#1d4ed8",
				LinkUnderlineStyle: "solid",
			},
		},
		Dark: ThemeModeData{
			Palette: darkPalette,
			Bloom: BloomData{
				Primary:     NewSolid(darkPalette.Primary),
				Secondary:   NewSolid(darkPalette.Secondary),
				Tertiary:    NewSolid(darkPalette.Tertiary),
				Quaternary:  NewSolid(darkPalette.Quaternary),
				BorderColor: "#000000",
				BorderWidth: "2px",
			},
			Content: ContentData{
				BackgroundColor: "#0f172a",
				PanelColor:      "#1e293b",
				TextColor:       "#f1f5f9",
				BorderColor:     "#334155",
				BorderWidth:     "1px",
				BorderRadius:    "8px",
				BorderStyle:     "solid",
				Font:            "system",
				SelectionColor:  "#1e40af",
			},
			Controls: ControlsData{
				ButtonBackground:   NewSolid(darkPalette.Primary),
				ButtonTextColor:    "#ffffff",
				ButtonBorderColor:  "#60a5fa",
				ButtonBorderWidth:  "1px",
				ButtonBorderStyle:  "solid",
				ButtonBorderRadius: "6px",
				LinkColor:          "#60a5fa",
				LinkUnderlineStyle: "solid",
			},
		},
	}
}

// ModeData returns the edit buffer for the requested mode.
func (f *ThemeFormData) ModeData(m Mode) *ThemeModeData {
	if m == Dark {
		return &f.Dark
	}
	return &f.Light
}

// targets lists the modes an entry point should write: both when the
// caller asked for it, otherwise only the active one.
func (f *ThemeFormData) targets(applyToBoth bool) []Mode {
	if applyToBoth {
		return []Mode{Light, Dark}
	}
	return []Mode{f.ActiveMode}
}

// Validate checks every color field in both modes. Structural
// problems are rejected up front; render-time parse failures still
// degrade safely.
func (f *ThemeFormData) Validate() error {
	for _, m := range []Mode{Light, Dark} {
		md := f.ModeData(m)
		if err := md.Palette.Validate(); err != nil {
			return fmt.Errorf("%s palette: %w", m, err)
		}
		for i, fill := range md.Bloom.Fills() {
			if err := fill.Validate(); err != nil {
				return fmt.Errorf("%s bloom fill %d: %w", m, i, err)
			}
		}
		if !ValidHex(md.Bloom.BorderColor) {
			return fmt.Errorf("%s bloom border color %q is not a hex color", m, md.Bloom.BorderColor)
		}
		solids := map[string]string{
			"background":    md.Content.BackgroundColor,
			"panel":         md.Content.PanelColor,
			"text":          md.Content.TextColor,
			"border":        md.Content.BorderColor,
			"button text":   md.Controls.ButtonTextColor,
			"button border": md.Controls.ButtonBorderColor,
			"link":          md.Controls.LinkColor,
		}
		for name, c := range solids {
			if !ValidHex(c) {
				return fmt.Errorf("%s %s color %q is not a hex color", m, name, c)
			}
		}
		if md.Content.SelectionColor != "" && !ValidHex(md.Content.SelectionColor) {
			return fmt.Errorf("%s selection color %q is not a hex color", m, md.Content.SelectionColor)
		}
		if err := md.Controls.ButtonBackground.Validate(); err != nil {
			return fmt.Errorf("%s button background: %w", m, err)
		}
	}
	if f.ActiveMode != Light && f.ActiveMode != Dark {
		return fmt.Errorf("active mode %q is neither light nor dark", f.ActiveMode)
	}
	return nil
}

// applyDerived writes a derived color set into one mode's content and
// controls. Width/radius/style fields are authored, not derived, and
// are left alone.
func applyDerived(md *ThemeModeData, d DerivedColorSet) {
	md.Content.BackgroundColor = d.Background
	md.Content.PanelColor = d.Panel
	md.Content.TextColor = d.Text
	md.Content.BorderColor = d.Border
	md.Content.SelectionColor = d.Selection
	md.Controls.ButtonBackground = d.ButtonBackground
	md.Controls.ButtonTextColor = d.ButtonText
	md.Controls.ButtonBorderColor = d.ButtonBorder
	md.Controls.LinkColor = d.Link
}

// ApplyPalette installs a palette into the selected modes and
// re-derives every color that depends on it. Each mode draws its own
// randomness so light and dark diverge; the bloom border is computed
// once and written to both modes regardless of targeting, since it
// must match across them. Each mode's buffer is swapped whole, never
// left as a partial mix of old and new fields.
func ApplyPalette(f *ThemeFormData, palette Palette, applyToBoth bool, rng Source) {
	for _, m := range f.targets(applyToBoth) {
		md := f.ModeData(m)
		next := *md
		next.Palette = palette
		next.Bloom.Primary = NewSolid(palette.Primary)
		next.Bloom.Secondary = NewSolid(palette.Secondary)
		next.Bloom.Tertiary = NewSolid(palette.Tertiary)
		next.Bloom.Quaternary = NewSolid(palette.Quaternary)
		applyDerived(&next, DeriveModeColors(palette, m, rng))
		*md = next
	}

	border := DeriveBloomBorder(palette, rng)
	f.Light.Bloom.BorderColor = border
	f.Dark.Bloom.BorderColor = border
}

// RandomizeBloom reshuffles each targeted mode's bloom fills from its
// own palette, each fill independently becoming a gradient a quarter
// of the time, and redraws the shared border.
func RandomizeBloom(f *ThemeFormData, applyToBoth bool, rng Source) {
	for _, m := range f.targets(applyToBoth) {
		md := f.ModeData(m)
		next := *md
		deck := shuffled(next.Palette, rng)
		fills := [4]*ColorValue{
			&next.Bloom.Primary, &next.Bloom.Secondary,
			&next.Bloom.Tertiary, &next.Bloom.Quaternary,
		}
		for i, fill := range fills {
			if chance(rng, 0.25) {
				*fill = gradientFrom(deck[i], rng)
			} else {
				*fill = NewSolid(deck[i])
			}
		}
		*md = next
	}

	border := DeriveBloomBorder(f.ModeData(f.ActiveMode).Palette, rng)
	f.Light.Bloom.BorderColor = border
	f.Dark.Bloom.BorderColor = border
}

// RandomizeStyle redraws the content color set (background, panel,
// text, border, selection) for the targeted modes.
func RandomizeStyle(f *ThemeFormData, applyToBoth bool, rng Source) {
	for _, m := range f.targets(applyToBoth) {
		md := f.ModeData(m)
		next := *md
		d := DeriveModeColors(next.Palette, m, rng)
		next.Content.BackgroundColor = d.Background
		next.Content.PanelColor = d.Panel
		next.Content.TextColor = d.Text
		next.Content.BorderColor = d.Border
		next.Content.SelectionColor = d.Selection
		*md = next
	}
}

// RandomizeControls redraws the button and link color set for the
// targeted modes.
func RandomizeControls(f *ThemeFormData, applyToBoth bool, rng Source) {
	for _, m := range f.targets(applyToBoth) {
		md := f.ModeData(m)
		next := *md
		d := DeriveModeColors(next.Palette, m, rng)
		next.Controls.ButtonBackground = d.ButtonBackground
		next.Controls.ButtonTextColor = d.ButtonText
		next.Controls.ButtonBorderColor = d.ButtonBorder
		next.Controls.LinkColor = d.Link
		*md = next
	}
}

// RandomizeAll draws a fresh palette under a random harmony mode and
// rebuilds everything that depends on it.
func RandomizeAll(f *ThemeFormData, applyToBoth bool, rng Source) {
	modes := HarmonyModes()
	mode := modes[rng.Intn(len(modes))]
	palette := GeneratePalette(
		rng.Float64()*360,
		between(rng, 20, 100),
		between(rng, 15, 85),
		mode,
		rng,
	)
	ApplyPalette(f, palette, applyToBoth, rng)
	RandomizeBloom(f, applyToBoth, rng)
}
