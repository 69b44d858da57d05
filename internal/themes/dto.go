// SPDX-License-Identifier: MIT
package themes

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// PaletteByMode, BloomByMode, ContentByMode and ControlsByMode pair a
// section's light and dark values for serialization.
type PaletteByMode struct {
	Light Palette `json:"light"`
	Dark  Palette `json:"dark"`
}

type BloomByMode struct {
	Light BloomData `json:"light"`
	Dark  BloomData `json:"dark"`
}

type ContentByMode struct {
	Light ContentData `json:"light"`
	Dark  ContentData `json:"dark"`
}

type ControlsByMode struct {
	Light ControlsData `json:"light"`
	Dark  ControlsData `json:"dark"`
}

// ThemeDocument is the persistence and API shape of a theme: the
// palette, bloom, content and controls sections, each split by mode.
// Round-tripping a document reproduces every value byte-identically
// except gradient IDs, which are regenerated on load.
type ThemeDocument struct {
	Palette  PaletteByMode  `json:"palette"`
	Bloom    BloomByMode    `json:"bloom"`
	Content  ContentByMode  `json:"content"`
	Controls ControlsByMode `json:"controls"`
}

// FormToDocument serializes the edit buffer into its persistence
// shape. Metadata (title, active mode) lives on the Theme record, not
// in the document.
func FormToDocument(f *ThemeFormData) *ThemeDocument {
	return &ThemeDocument{
		Palette:  PaletteByMode{Light: f.Light.Palette, Dark: f.Dark.Palette},
		Bloom:    BloomByMode{Light: f.Light.Bloom, Dark: f.Dark.Bloom},
		Content:  ContentByMode{Light: f.Light.Content, Dark: f.Dark.Content},
		Controls: ControlsByMode{Light: f.Light.Controls, Dark: f.Dark.Controls},
	}
}

// DocumentToForm rebuilds an edit buffer from a stored document.
// Gradient IDs are regenerated; they only need to be unique within
// one loaded document, not stable across loads.
func DocumentToForm(doc *ThemeDocument, activeMode Mode) *ThemeFormData {
	f := &ThemeFormData{
		ActiveMode: activeMode,
		Light: ThemeModeData{
			Palette:  doc.Palette.Light,
			Bloom:    doc.Bloom.Light,
			Content:  doc.Content.Light,
			Controls: doc.Controls.Light,
		},
		Dark: ThemeModeData{
			Palette:  doc.Palette.Dark,
			Bloom:    doc.Bloom.Dark,
			Content:  doc.Content.Dark,
			Controls: doc.Controls.Dark,
		},
	}
	if f.ActiveMode != Dark {
		f.ActiveMode = Light
	}
	regenerateGradientIDs(&f.Light)
	regenerateGradientIDs(&f.Dark)
	return f
}

func regenerateGradientIDs(md *ThemeModeData) {
	values := []*ColorValue{
		&md.Bloom.Primary, &md.Bloom.Secondary,
		&md.Bloom.Tertiary, &md.Bloom.Quaternary,
		&md.Controls.ButtonBackground,
	}
	for _, v := range values {
		if v.Gradient != nil {
			g := *v.Gradient
			g.ID = uuid.NewString()
			g.Stops = append([]GradientStop(nil), v.Gradient.Stops...)
			v.Gradient = &g
		}
	}
}

// MarshalDocument renders a document as JSON for storage.
func MarshalDocument(doc *ThemeDocument) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal theme document: %w", err)
	}
	return string(data), nil
}

// ParseDocument parses a stored JSON document and validates it.
func ParseDocument(data string) (*ThemeDocument, error) {
	var doc ThemeDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme document: %w", err)
	}
	if err := DocumentToForm(&doc, Light).Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme document: %w", err)
	}
	return &doc, nil
}
