// SPDX-License-Identifier: MIT
package themes

import "fmt"

// HarmonyMode names a rule for selecting related hues when building a
// palette from one base hue.
type HarmonyMode string

const (
	Monochromatic      HarmonyMode = "monochromatic"
	Complementary      HarmonyMode = "complementary"
	Analogous          HarmonyMode = "analogous"
	Triadic            HarmonyMode = "triadic"
	SplitComplementary HarmonyMode = "split-complementary"
	RandomHarmony      HarmonyMode = "random"
)

// HarmonyModes lists all modes in display order.
func HarmonyModes() []HarmonyMode {
	return []HarmonyMode{
		Monochromatic, Complementary, Analogous,
		Triadic, SplitComplementary, RandomHarmony,
	}
}

// ParseHarmonyMode validates a user-supplied mode name.
func ParseHarmonyMode(s string) (HarmonyMode, error) {
	for _, m := range HarmonyModes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown harmony mode %q", s)
}

// Palette is an ordered set of four solid colors. Generators return a
// fresh value on every call; derivation shuffles a copy so the
// harmony-ordered original survives for display.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Tertiary   string `json:"tertiary"`
	Quaternary string `json:"quaternary"`
}

// Colors returns the palette entries in harmony order.
func (p Palette) Colors() [4]string {
	return [4]string{p.Primary, p.Secondary, p.Tertiary, p.Quaternary}
}

// Validate checks that all four entries are 6-digit hex colors.
func (p Palette) Validate() error {
	for i, c := range p.Colors() {
		if !ValidHex(c) {
			return fmt.Errorf("palette entry %d has invalid color %q", i, c)
		}
	}
	return nil
}

func paletteFrom(c [4]string) Palette {
	return Palette{Primary: c[0], Secondary: c[1], Tertiary: c[2], Quaternary: c[3]}
}

// GeneratePalette builds a four-color palette from a base HSL color
// and a harmony mode. Hue accepts any sign or magnitude; saturation
// and lightness are percentages and clamped to [0,100]. All entries
// share the base saturation except in random mode.
func GeneratePalette(hue, saturation, lightness float64, mode HarmonyMode, rng Source) Palette {
	h := normHue(hue)
	s := clampRange(saturation, 0, 100) / 100
	l := clampRange(lightness, 0, 100) / 100

	// Lightness offsets clamp to [0.1,0.9] so no entry degenerates
	// to pure black or white.
	at := func(offset float64) float64 {
		return clampRange(l+offset, 0.1, 0.9)
	}

	var c [4]string
	switch mode {
	case Complementary:
		c[0] = hslHex(h, s, at(-0.15))
		c[1] = hslHex(h, s, at(-0.05))
		c[2] = hslHex(h+180, s, at(0.05))
		c[3] = hslHex(h+180, s, at(0.15))
	case Analogous:
		// The anchor hue appears twice, at the extremes of the
		// lightness spread.
		c[0] = hslHex(h, s, at(-0.15))
		c[1] = hslHex(h+30, s, at(-0.05))
		c[2] = hslHex(h-30, s, at(0.05))
		c[3] = hslHex(h, s, at(0.15))
	case Triadic:
		c[0] = hslHex(h, s, at(-0.1))
		c[1] = hslHex(h+120, s, at(0))
		c[2] = hslHex(h+240, s, at(0.05))
		c[3] = hslHex(h, s, at(0.15))
	case SplitComplementary:
		c[0] = hslHex(h, s, at(-0.15))
		c[1] = hslHex(h, s, at(-0.05))
		c[2] = hslHex(h+150, s, at(0.05))
		c[3] = hslHex(h+210, s, at(0.15))
	case RandomHarmony:
		// No harmony relationship: four independent draws.
		for i := range c {
			c[i] = hslHex(
				rng.Float64()*360,
				between(rng, 0.2, 1.0),
				between(rng, 0.15, 0.85),
			)
		}
	default: // Monochromatic
		offsets := [4]float64{-0.2, -0.1, 0.1, 0.2}
		for i, o := range offsets {
			c[i] = hslHex(h, s, at(o))
		}
	}
	return paletteFrom(c)
}
