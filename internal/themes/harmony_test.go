// SPDX-License-Identifier: MIT
package themes

import (
	"math"
	"testing"
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// hueEqual compares hues modulo 360 with a tolerance for 8-bit
// rounding of the underlying RGB values.
func hueEqual(a, b, tolerance float64) bool {
	d := math.Abs(normHue(a) - normHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d <= tolerance
}

func TestGeneratePaletteReturnsValidHex(t *testing.T) {
	rng := NewSeededSource(1)
	for _, mode := range HarmonyModes() {
		p := GeneratePalette(200, 65, 50, mode, rng)
		for i, c := range p.Colors() {
			if !ValidHex(c) {
				t.Errorf("%s entry %d is not valid hex: %q", mode, i, c)
			}
		}
	}
}

func TestGeneratePaletteComplementaryExample(t *testing.T) {
	p := GeneratePalette(180, 65, 50, Complementary, NewSeededSource(1))
	colors := p.Colors()

	wantHues := [4]float64{180, 180, 0, 0}
	wantLight := [4]float64{0.35, 0.45, 0.55, 0.65}

	for i, c := range colors {
		h, s, l := hexToHSL(c)
		if !hueEqual(h, wantHues[i], 1.5) {
			t.Errorf("entry %d hue = %v, want %v", i, h, wantHues[i])
		}
		if !approxEqual(s, 0.65, 0.01) {
			t.Errorf("entry %d saturation = %v, want 0.65", i, s)
		}
		if !approxEqual(l, wantLight[i], 0.01) {
			t.Errorf("entry %d lightness = %v, want %v", i, l, wantLight[i])
		}
	}
}

func TestGeneratePaletteHueNormalization(t *testing.T) {
	rng := NewSeededSource(1)
	tests := []struct {
		name string
		a, b float64
	}{
		{"negative hue", -30, 330},
		{"hue above 360", 720, 0},
		{"zero hue", 0, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa := GeneratePalette(tt.a, 65, 50, Complementary, rng)
			pb := GeneratePalette(tt.b, 65, 50, Complementary, rng)
			if pa != pb {
				t.Errorf("palettes differ for equivalent hues %v and %v:\n%v\n%v", tt.a, tt.b, pa, pb)
			}
		})
	}
}

func TestGeneratePaletteMonochromaticDistinctLightness(t *testing.T) {
	p := GeneratePalette(200, 50, 50, Monochromatic, NewSeededSource(1))
	colors := p.Colors()

	seen := make(map[string]bool)
	for _, c := range colors {
		if seen[c] {
			t.Errorf("duplicate monochromatic entry %s", c)
		}
		seen[c] = true
	}

	// All four share the base hue; only lightness separates them.
	wantLight := [4]float64{0.3, 0.4, 0.6, 0.7}
	for i, c := range colors {
		h, _, l := hexToHSL(c)
		if !hueEqual(h, 200, 1.5) {
			t.Errorf("entry %d hue = %v, want 200", i, h)
		}
		if !approxEqual(l, wantLight[i], 0.01) {
			t.Errorf("entry %d lightness = %v, want %v", i, l, wantLight[i])
		}
	}
}

func TestGeneratePaletteClampsLightnessExtremes(t *testing.T) {
	// At base lightness 0 and 100 the offsets clamp into [0.1,0.9],
	// never degenerating to pure black or white.
	for _, base := range []float64{0, 100} {
		p := GeneratePalette(120, 60, base, Monochromatic, NewSeededSource(1))
		for i, c := range p.Colors() {
			_, _, l := hexToHSL(c)
			if l < 0.09 || l > 0.91 {
				t.Errorf("base %v entry %d lightness %v outside clamp range", base, i, l)
			}
		}
	}
}

func TestGeneratePaletteRandomModeRanges(t *testing.T) {
	rng := NewSeededSource(7)
	for i := 0; i < 50; i++ {
		p := GeneratePalette(0, 0, 0, RandomHarmony, rng)
		for j, c := range p.Colors() {
			_, s, l := hexToHSL(c)
			if l < 0.14 || l > 0.86 {
				t.Errorf("draw %d entry %d lightness %v outside [0.15,0.85)", i, j, l)
			}
			// Saturation read-back drifts with rounding; allow slack
			// below the 0.2 floor.
			if s < 0.17 {
				t.Errorf("draw %d entry %d saturation %v below floor", i, j, s)
			}
		}
	}
}

func TestGeneratePaletteClampsSaturationInput(t *testing.T) {
	// Out-of-range saturation/lightness are clamped, not rejected.
	p := GeneratePalette(90, 250, -20, Monochromatic, NewSeededSource(1))
	for i, c := range p.Colors() {
		if !ValidHex(c) {
			t.Errorf("entry %d is not valid hex: %q", i, c)
		}
	}
}

func TestParseHarmonyMode(t *testing.T) {
	for _, m := range HarmonyModes() {
		got, err := ParseHarmonyMode(string(m))
		if err != nil {
			t.Errorf("ParseHarmonyMode(%q) returned error: %v", m, err)
		}
		if got != m {
			t.Errorf("ParseHarmonyMode(%q) = %q", m, got)
		}
	}

	if _, err := ParseHarmonyMode("tetradic"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
