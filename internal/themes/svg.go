// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// circle placement for the four-petal bloom mark, on a 100x100 viewBox.
var bloomCircles = [4]struct{ cx, cy, r int }{
	{38, 38, 22},
	{62, 38, 22},
	{38, 62, 22},
	{62, 62, 22},
}

// BloomSVG renders the four-circle logo for one mode. Gradient fills
// emit <linearGradient> defs referenced by the circles; solid fills
// are inlined.
func BloomSVG(md *ThemeModeData) string {
	var defs strings.Builder
	var circles strings.Builder

	for i, fill := range md.Bloom.Fills() {
		pos := bloomCircles[i]
		paint := fill.Solid
		if fill.Gradient != nil {
			id := fmt.Sprintf("bloom-g%d-%s", i, fill.Gradient.ID)
			defs.WriteString(gradientDef(id, fill.Gradient))
			paint = fmt.Sprintf("url(#%s)", id)
		}
		fmt.Fprintf(&circles,
			`  <circle cx="%d" cy="%d" r="%d" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			pos.cx, pos.cy, pos.r, paint,
			md.Bloom.BorderColor, strings.TrimSuffix(orDefault(md.Bloom.BorderWidth, "2px"), "px"),
		)
	}

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" class="bloom">` + "\n")
	if defs.Len() > 0 {
		b.WriteString("  <defs>\n")
		b.WriteString(defs.String())
		b.WriteString("  </defs>\n")
	}
	b.WriteString(circles.String())
	b.WriteString("</svg>\n")
	return b.String()
}

// gradientDef renders one SVG linearGradient, rotated about its
// center by the gradient angle.
func gradientDef(id string, g *Gradient) string {
	var b strings.Builder
	angle := ((g.Angle % 360) + 360) % 360
	fmt.Fprintf(&b,
		`    <linearGradient id="%s" gradientTransform="rotate(%d 0.5 0.5)">`+"\n",
		id, angle)
	for _, stop := range g.Stops {
		if stop.Opacity != nil {
			fmt.Fprintf(&b, `      <stop offset="%s" stop-color="%s" stop-opacity="%g"/>`+"\n",
				stop.Offset, stop.Color, *stop.Opacity)
		} else {
			fmt.Fprintf(&b, `      <stop offset="%s" stop-color="%s"/>`+"\n",
				stop.Offset, stop.Color)
		}
	}
	b.WriteString("    </linearGradient>\n")
	return b.String()
}
