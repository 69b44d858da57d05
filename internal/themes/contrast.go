// SPDX-License-Identifier: MIT
package themes

import "math"

// WCAG contrast thresholds. CloseToAA and CloseToAAA are cosmetic
// badge hints for the authoring UI; they gate nothing.
const (
	AAContrast  = 4.5
	AAAContrast = 7.0
	CloseToAA   = 3.5
	CloseToAAA  = 6.0
)

// Backgrounds below this saturation are treated as grayscale and skip
// the colorful text-candidate search.
const grayscaleSaturation = 0.05

// RelativeLuminance computes WCAG relative luminance of a hex color.
func RelativeLuminance(hex string) float64 {
	c := parseHex(hex)
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two colors:
// (L1+0.05)/(L2+0.05) with L1 the lighter of the two.
func ContrastRatio(a, b string) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// SolveTextColor searches for a foreground color with at least
// targetRatio contrast against background. On saturated backgrounds
// it attempts a colorful candidate half the time, anchored either to
// baseHue (the palette's primary hue) or to a hue related to the
// background; a muted then pure black/white ladder guarantees a
// usable result. Malformed backgrounds degrade to muted black inside
// parseHex and never escape as an error.
func SolveTextColor(background string, targetRatio, baseHue float64, rng Source) string {
	bg := parseHex(background).Hex()
	bgHue, bgSat, _ := hexToHSL(bg)
	bgLum := RelativeLuminance(bg)

	if bgSat >= grayscaleSaturation && chance(rng, 0.5) {
		if c, ok := colorfulCandidate(bg, bgHue, bgLum, targetRatio, baseHue, rng); ok {
			return c
		}
	}
	return mutedFallback(bg, bgLum, targetRatio, rng)
}

// colorfulCandidate scans lightness toward mid-tone from the end of
// the range opposite the background, returning the first candidate
// that clears targetRatio. The scan is bounded (9 steps of 0.05).
func colorfulCandidate(bg string, bgHue, bgLum, targetRatio, baseHue float64, rng Source) (string, bool) {
	var hue float64
	switch rng.Intn(3) {
	case 0:
		// Jittered palette hue.
		hue = baseHue + between(rng, -30, 30)
	case 1:
		// Complementary to the background.
		hue = bgHue + 180
	default:
		// Analogous to the background.
		hue = bgHue + between(rng, -30, 30)
	}
	sat := between(rng, 0.3, 0.7)

	if bgLum > 0.5 {
		for l := 0.1; l <= 0.5+1e-9; l += 0.05 {
			c := hslHex(hue, sat, l)
			if ContrastRatio(c, bg) >= targetRatio {
				return c, true
			}
		}
	} else {
		for l := 0.9; l >= 0.5-1e-9; l -= 0.05 {
			c := hslHex(hue, sat, l)
			if ContrastRatio(c, bg) >= targetRatio {
				return c, true
			}
		}
	}
	return "", false
}

// mutedFallback returns a muted black or white if it individually
// meets targetRatio, else the pure extreme.
func mutedFallback(bg string, bgLum, targetRatio float64, rng Source) string {
	if bgLum > 0.5 {
		muted := hslHex(0, 0, between(rng, 0.04, 0.12))
		if ContrastRatio(muted, bg) >= targetRatio {
			return muted
		}
		return "#000000"
	}
	muted := hslHex(0, 0, between(rng, 0.92, 0.98))
	if ContrastRatio(muted, bg) >= targetRatio {
		return muted
	}
	return "#ffffff"
}

// SolveAAAColor targets AAA (7:1) contrast against background. When
// true AAA is unreachable, e.g. a mid-gray background tops out near
// 4:1, it maximizes over the fallback ladder instead of failing:
// the returned color always carries the highest contrast among the
// solver's candidate, pure white/black, and muted white/black.
// Callers must tolerate sub-7.0 results on extreme backgrounds;
// ContrastRatio reports what was actually achieved.
func SolveAAAColor(background string, baseHue float64, rng Source) string {
	bg := parseHex(background).Hex()

	best := SolveTextColor(bg, AAAContrast, baseHue, rng)
	bestRatio := ContrastRatio(best, bg)
	if bestRatio >= AAAContrast {
		return best
	}

	ladder := []string{
		"#ffffff",
		"#000000",
		hslHex(0, 0, 0.95),
		hslHex(0, 0, 0.05),
	}
	for _, c := range ladder {
		if r := ContrastRatio(c, bg); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}
