// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// CSSValue renders a color value as a CSS expression: the hex string
// for solids, a linear-gradient() for gradients.
func CSSValue(v ColorValue) string {
	if v.Gradient == nil {
		return v.Solid
	}
	var stops []string
	for _, stop := range v.Gradient.Stops {
		c := stop.Color
		if stop.Opacity != nil {
			c = hexWithOpacity(stop.Color, *stop.Opacity)
		}
		stops = append(stops, fmt.Sprintf("%s %s", c, stop.Offset))
	}
	angle := ((v.Gradient.Angle % 360) + 360) % 360
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, strings.Join(stops, ", "))
}

// hexWithOpacity appends an alpha channel to a 6-digit hex color.
func hexWithOpacity(hex string, opacity float64) string {
	a := int(clamp01(opacity)*255 + 0.5)
	return fmt.Sprintf("%s%02x", hex, a)
}

// modeVariables emits the CSS custom properties for one mode.
func modeVariables(md *ThemeModeData) string {
	return fmt.Sprintf(`  --garden-bg: %s;
  --garden-panel: %s;
  --garden-text: %s;
  --garden-border: %s;
  --garden-border-width: %s;
  --garden-border-radius: %s;
  --garden-border-style: %s;
  --garden-selection: %s;
  --garden-button-bg: %s;
  --garden-button-text: %s;
  --garden-button-border: %s;
  --garden-button-border-width: %s;
  --garden-button-border-style: %s;
  --garden-button-radius: %s;
  --garden-link: %s;
  --garden-link-underline: %s;
  --garden-bloom-border: %s;
  --garden-bloom-border-width: %s;`,
		md.Content.BackgroundColor,
		md.Content.PanelColor,
		md.Content.TextColor,
		md.Content.BorderColor,
		orDefault(md.Content.BorderWidth, "1px"),
		orDefault(md.Content.BorderRadius, "8px"),
		orDefault(md.Content.BorderStyle, "solid"),
		orDefault(md.Content.SelectionColor, md.Content.BorderColor),
		CSSValue(md.Controls.ButtonBackground),
		md.Controls.ButtonTextColor,
		md.Controls.ButtonBorderColor,
		orDefault(md.Controls.ButtonBorderWidth, "1px"),
		orDefault(md.Controls.ButtonBorderStyle, "solid"),
		orDefault(md.Controls.ButtonBorderRadius, "6px"),
		md.Controls.LinkColor,
		orDefault(md.Controls.LinkUnderlineStyle, "solid"),
		md.Bloom.BorderColor,
		orDefault(md.Bloom.BorderWidth, "2px"),
	)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// GenerateCSS renders a full stylesheet from an edit buffer: light
// variables at :root, dark variables behind prefers-color-scheme, and
// the base element styles that consume them.
func GenerateCSS(f *ThemeFormData) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	b.WriteString(modeVariables(&f.Light))
	b.WriteString("\n}\n\n")

	b.WriteString("@media (prefers-color-scheme: dark) {\n:root {\n")
	b.WriteString(modeVariables(&f.Dark))
	b.WriteString("\n}\n}\n")

	b.WriteString(`
body {
  background: var(--garden-bg);
  color: var(--garden-text);
  transition: background-color 0.2s, color 0.2s;
}

::selection {
  background: var(--garden-selection);
}

a {
  color: var(--garden-link);
  text-decoration: underline;
  text-decoration-style: var(--garden-link-underline);
}

.panel {
  background: var(--garden-panel);
  border: var(--garden-border-width) var(--garden-border-style) var(--garden-border);
  border-radius: var(--garden-border-radius);
  padding: 16px;
}

button, .btn {
  background: var(--garden-button-bg);
  color: var(--garden-button-text);
  border: var(--garden-button-border-width) var(--garden-button-border-style) var(--garden-button-border);
  border-radius: var(--garden-button-radius);
  padding: 8px 16px;
  cursor: pointer;
  transition: opacity 0.2s;
}

button:hover, .btn:hover {
  opacity: 0.9;
}

.bloom circle {
  stroke: var(--garden-bloom-border);
  stroke-width: var(--garden-bloom-border-width);
}

hr, .divider {
  border: none;
  border-top: var(--garden-border-width) var(--garden-border-style) var(--garden-border);
}

input, textarea, select {
  background: var(--garden-panel);
  color: var(--garden-text);
  border: var(--garden-border-width) var(--garden-border-style) var(--garden-border);
  border-radius: var(--garden-border-radius);
}
`)

	return b.String()
}
