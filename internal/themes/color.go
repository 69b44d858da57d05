// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// hexPattern is the only color format accepted from user input.
// Shorthand (#abc) and alpha channels are rejected, not coerced.
var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// offsetPattern matches gradient stop offsets like "0%" or "87%".
var offsetPattern = regexp.MustCompile(`^(\d{1,3})%$`)

// ValidHex reports whether s is a 6-digit hex color.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// GradientStop is one stop of a linear gradient.
type GradientStop struct {
	Color   string   `json:"color"`
	Offset  string   `json:"offset"`
	Opacity *float64 `json:"opacity,omitempty"`
}

// Gradient is an ordered multi-stop linear gradient. Offsets are
// non-decreasing percentages and the angle is interpreted mod 360.
// The ID is regenerated on every load; only the stops and angle are
// stable across round-trips.
type Gradient struct {
	ID    string         `json:"id"`
	Stops []GradientStop `json:"stops"`
	Angle int            `json:"angle"`
}

// Validate checks gradient structure: at least two stops, valid hex
// colors, and monotonically non-decreasing offsets in [0,100].
func (g *Gradient) Validate() error {
	if len(g.Stops) < 2 {
		return fmt.Errorf("gradient needs at least 2 stops, got %d", len(g.Stops))
	}
	prev := -1
	for i, stop := range g.Stops {
		if !ValidHex(stop.Color) {
			return fmt.Errorf("gradient stop %d has invalid color %q", i, stop.Color)
		}
		m := offsetPattern.FindStringSubmatch(stop.Offset)
		if m == nil {
			return fmt.Errorf("gradient stop %d has invalid offset %q", i, stop.Offset)
		}
		pct, _ := strconv.Atoi(m[1])
		if pct > 100 {
			return fmt.Errorf("gradient stop %d offset %d%% exceeds 100%%", i, pct)
		}
		if pct < prev {
			return fmt.Errorf("gradient stop %d offset %d%% decreases from %d%%", i, pct, prev)
		}
		prev = pct
		if stop.Opacity != nil && (*stop.Opacity < 0 || *stop.Opacity > 1) {
			return fmt.Errorf("gradient stop %d opacity %v out of range", i, *stop.Opacity)
		}
	}
	return nil
}

// ColorValue is either a solid hex color or a gradient. Exactly one
// field is set.
type ColorValue struct {
	Solid    string    `json:"solid,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty"`
}

// NewSolid wraps a hex string as a solid color value.
func NewSolid(hex string) ColorValue {
	return ColorValue{Solid: hex}
}

// IsGradient reports whether the value carries a gradient.
func (v ColorValue) IsGradient() bool {
	return v.Gradient != nil
}

// Seed returns the single hex color used when a solid is needed from
// a possibly-gradient value: the solid itself, or the first stop.
func (v ColorValue) Seed() string {
	if v.Gradient != nil && len(v.Gradient.Stops) > 0 {
		return v.Gradient.Stops[0].Color
	}
	return v.Solid
}

// Validate checks that exactly one variant is set and well-formed.
func (v ColorValue) Validate() error {
	if v.Gradient != nil {
		if v.Solid != "" {
			return fmt.Errorf("color value has both solid and gradient set")
		}
		return v.Gradient.Validate()
	}
	if !ValidHex(v.Solid) {
		return fmt.Errorf("invalid hex color %q", v.Solid)
	}
	return nil
}

// mutedBlackLightness is the safe substitute lightness for colors
// that fail to parse.
const mutedBlackLightness = 0.08

// parseHex parses a hex color, substituting a muted black on failure.
// Parse failures are logged and never propagated; malformed data from
// storage must not take down a render.
func parseHex(hex string) colorful.Color {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(hex)))
	if err != nil {
		log.Printf("themes: failed to parse color %q: %v", hex, err)
		return colorful.Hsl(0, 0, mutedBlackLightness)
	}
	return c
}

// hslHex builds a hex color from HSL channels, normalizing hue and
// clamping saturation and lightness.
func hslHex(h, s, l float64) string {
	return colorful.Hsl(normHue(h), clamp01(s), clamp01(l)).Hex()
}

// hexToHSL decomposes a hex color into HSL channels, degrading to
// muted black on parse failure.
func hexToHSL(hex string) (h, s, l float64) {
	return parseHex(hex).Hsl()
}

// normHue maps any hue onto [0,360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Darken reduces a color's lightness by the given fraction of its
// current value. amount 1.0 lands on black.
func Darken(hex string, amount float64) string {
	h, s, l := hexToHSL(hex)
	return hslHex(h, s, l*(1-clamp01(amount)))
}

// Brighten moves a color's lightness toward white by the given
// fraction of the remaining headroom. Never decreases lightness.
func Brighten(hex string, amount float64) string {
	h, s, l := hexToHSL(hex)
	return hslHex(h, s, l+(1-l)*clamp01(amount))
}
