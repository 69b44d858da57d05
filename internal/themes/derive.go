// SPDX-License-Identifier: MIT
package themes

import "github.com/google/uuid"

// Mode selects one of the two displayed color schemes.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// DerivedColorSet is the full complement of secondary UI colors
// computed from a palette for one mode. The bloom border is not part
// of it; that is shared across modes and derived separately.
type DerivedColorSet struct {
	Background       string
	Panel            string
	Text             string
	Border           string
	ButtonBackground ColorValue
	ButtonText       string
	ButtonBorder     string
	Link             string
	Selection        string
}

// modeRanges holds the per-mode lightness windows. Light and dark are
// deliberately asymmetric: swapping them produces an inverted theme,
// which the regression tests guard against.
type modeRanges struct {
	backgroundLo, backgroundHi float64
	borderLo, borderHi         float64
	buttonLo, buttonHi         float64
	linkLo, linkHi             float64
	selectionLo, selectionHi   float64
}

func rangesFor(mode Mode) modeRanges {
	if mode == Dark {
		return modeRanges{
			backgroundLo: 0.0, backgroundHi: 0.4,
			borderLo: 0.16, borderHi: 0.31,
			buttonLo: 0.4, buttonHi: 0.6,
			linkLo: 0.55, linkHi: 0.70,
			selectionLo: 0.45, selectionHi: 0.60,
		}
	}
	return modeRanges{
		backgroundLo: 0.6, backgroundHi: 1.0,
		borderLo: 0.75, borderHi: 0.90,
		buttonLo: 0.5, buttonHi: 0.7,
		linkLo: 0.35, linkHi: 0.50,
		selectionLo: 0.70, selectionHi: 0.85,
	}
}

// shuffled returns the palette entries in uniform random order,
// leaving the harmony-ordered original untouched.
func shuffled(p Palette, rng Source) [4]string {
	c := p.Colors()
	for i := len(c) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		c[i], c[j] = c[j], c[i]
	}
	return c
}

// boostSat raises saturation by delta, clamped to 1. Zero saturation
// stays zero so grayscale palettes stay grayscale.
func boostSat(s, delta float64) float64 {
	if s == 0 {
		return 0
	}
	return clamp01(s + delta)
}

// gradientFrom turns a solid seed into a two-stop gradient: one stop
// brightened and one darkened by 30-60%, at a random angle.
func gradientFrom(seed string, rng Source) ColorValue {
	return ColorValue{Gradient: &Gradient{
		ID:    uuid.NewString(),
		Angle: rng.Intn(360),
		Stops: []GradientStop{
			{Color: Brighten(seed, between(rng, 0.3, 0.6)), Offset: "0%"},
			{Color: Darken(seed, between(rng, 0.3, 0.6)), Offset: "100%"},
		},
	}}
}

// DeriveBloomBorder picks the logo border color shared by both modes:
// pure black a quarter of the time, otherwise a palette entry
// darkened by 50-100%.
func DeriveBloomBorder(palette Palette, rng Source) string {
	if chance(rng, 0.25) {
		return "#000000"
	}
	entry := palette.Colors()[rng.Intn(4)]
	return Darken(entry, between(rng, 0.5, 1.0))
}

// DeriveModeColors derives one mode's full UI color set from a
// palette. Each call draws fresh randomness, so running it once per
// mode yields two divergent sets from the same palette. Background,
// panel and border sources form a cascade from a random anchor entry,
// each link broken with 30% probability by an independent resample.
func DeriveModeColors(palette Palette, mode Mode, rng Source) DerivedColorSet {
	deck := shuffled(palette, rng)
	r := rangesFor(mode)

	pick := func() string {
		return deck[rng.Intn(len(deck))]
	}

	anchor := pick()

	bgSource := anchor
	if chance(rng, 0.3) {
		bgSource = pick()
	}
	panelSource := bgSource
	if chance(rng, 0.3) {
		panelSource = pick()
	}
	borderSource := panelSource
	if chance(rng, 0.3) {
		borderSource = pick()
	}

	bgH, bgS, _ := hexToHSL(bgSource)
	background := hslHex(bgH, bgS, between(rng, r.backgroundLo, r.backgroundHi))

	// 40% of the time the panel is the background, same hex.
	panel := background
	if !chance(rng, 0.4) {
		pH, pS, _ := hexToHSL(panelSource)
		panel = hslHex(pH, pS, between(rng, r.backgroundLo, r.backgroundHi))
	}

	baseHue, _, _ := hexToHSL(palette.Primary)
	text := SolveAAAColor(panel, baseHue, rng)

	// Border keeps the source hue with a saturation boost, pinned to
	// a lightness band that stays visible against its own mode's
	// background.
	brH, brS, _ := hexToHSL(borderSource)
	border := hslHex(brH, boostSat(brS, 0.1), between(rng, r.borderLo, r.borderHi))

	// Controls share one palette-derived seed color.
	cH, cS, _ := hexToHSL(pick())
	buttonSolid := hslHex(cH, cS, between(rng, r.buttonLo, r.buttonHi))

	buttonBackground := NewSolid(buttonSolid)
	if chance(rng, 0.25) {
		buttonBackground = gradientFrom(buttonSolid, rng)
	}

	// Button text solves against the solid seed, not a rendered
	// gradient.
	buttonText := SolveAAAColor(buttonSolid, baseHue, rng)

	buttonBorder := buttonSolid
	if !chance(rng, 0.3) {
		amount := between(rng, 0.5, 1.0)
		if mode == Dark {
			buttonBorder = Brighten(buttonSolid, amount)
		} else {
			buttonBorder = Darken(buttonSolid, amount)
		}
	}

	link := hslHex(cH, boostSat(cS, 0.2), between(rng, r.linkLo, r.linkHi))
	selection := hslHex(cH, boostSat(cS, 0.1), between(rng, r.selectionLo, r.selectionHi))

	return DerivedColorSet{
		Background:       background,
		Panel:            panel,
		Text:             text,
		Border:           border,
		ButtonBackground: buttonBackground,
		ButtonText:       buttonText,
		ButtonBorder:     buttonBorder,
		Link:             link,
		Selection:        selection,
	}
}
