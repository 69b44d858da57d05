// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestValidHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase", "#a1b2c3", true},
		{"uppercase", "#A1B2C3", true},
		{"mixed case", "#FaB2c9", true},
		{"black", "#000000", true},
		{"white", "#ffffff", true},
		{"shorthand rejected", "#abc", false},
		{"alpha rejected", "#aabbccdd", false},
		{"missing hash", "aabbcc", false},
		{"non-hex digits", "#gghhii", false},
		{"empty", "", false},
		{"named color", "cornflowerblue", false},
		{"whitespace", " #aabbcc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidHex(tt.input); got != tt.want {
				t.Errorf("ValidHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDarkenReducesLightness(t *testing.T) {
	start := "#8080ff"
	_, _, l0 := hexToHSL(start)

	darker := Darken(start, 0.5)
	_, _, l1 := hexToHSL(darker)
	if l1 >= l0 {
		t.Errorf("Darken did not reduce lightness: %v -> %v", l0, l1)
	}

	if got := Darken(start, 1.0); got != "#000000" {
		t.Errorf("Darken by 1.0 should reach black, got %s", got)
	}
}

func TestBrightenNeverDecreasesLightness(t *testing.T) {
	colors := []string{"#102030", "#808080", "#2563eb", "#f0f0f0"}
	amounts := []float64{0, 0.1, 0.3, 0.6, 1.0}

	for _, c := range colors {
		_, _, before := hexToHSL(c)
		for _, a := range amounts {
			_, _, after := hexToHSL(Brighten(c, a))
			// 8-bit rounding can wobble by a fraction of a level.
			if after < before-0.005 {
				t.Errorf("Brighten(%s, %v) decreased lightness %v -> %v", c, a, before, after)
			}
		}
	}

	if got := Brighten("#336699", 1.0); got != "#ffffff" {
		t.Errorf("Brighten by 1.0 should reach white, got %s", got)
	}
}

func TestParseHexSubstitutesOnFailure(t *testing.T) {
	// Malformed input must not panic and must yield a valid color.
	c := parseHex("not-a-color")
	hex := c.Hex()
	if !ValidHex(hex) {
		t.Errorf("substitute color %q is not valid hex", hex)
	}
	_, _, l := c.Hsl()
	if l > 0.2 {
		t.Errorf("substitute should be a muted black, got lightness %v", l)
	}
}

func TestColorValueSeed(t *testing.T) {
	solid := NewSolid("#123456")
	if solid.Seed() != "#123456" {
		t.Errorf("solid seed = %s", solid.Seed())
	}
	if solid.IsGradient() {
		t.Error("solid should not report as gradient")
	}

	grad := ColorValue{Gradient: &Gradient{
		ID:    "g1",
		Angle: 45,
		Stops: []GradientStop{
			{Color: "#ff0000", Offset: "0%"},
			{Color: "#0000ff", Offset: "100%"},
		},
	}}
	if grad.Seed() != "#ff0000" {
		t.Errorf("gradient seed should be first stop, got %s", grad.Seed())
	}
	if !grad.IsGradient() {
		t.Error("gradient should report as gradient")
	}
}

func TestGradientValidate(t *testing.T) {
	opacity := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		g       Gradient
		wantErr string
	}{
		{
			name: "valid two stops",
			g: Gradient{Stops: []GradientStop{
				{Color: "#ff0000", Offset: "0%"},
				{Color: "#0000ff", Offset: "100%"},
			}},
		},
		{
			name: "valid equal offsets",
			g: Gradient{Stops: []GradientStop{
				{Color: "#ff0000", Offset: "50%"},
				{Color: "#0000ff", Offset: "50%"},
			}},
		},
		{
			name:    "single stop",
			g:       Gradient{Stops: []GradientStop{{Color: "#ff0000", Offset: "0%"}}},
			wantErr: "at least 2 stops",
		},
		{
			name: "bad stop color",
			g: Gradient{Stops: []GradientStop{
				{Color: "red", Offset: "0%"},
				{Color: "#0000ff", Offset: "100%"},
			}},
			wantErr: "invalid color",
		},
		{
			name: "offset missing percent",
			g: Gradient{Stops: []GradientStop{
				{Color: "#ff0000", Offset: "0"},
				{Color: "#0000ff", Offset: "100%"},
			}},
			wantErr: "invalid offset",
		},
		{
			name: "offset above 100",
			g: Gradient{Stops: []GradientStop{
				{Color: "#ff0000", Offset: "0%"},
				{Color: "#0000ff", Offset: "120%"},
			}},
			wantErr: "exceeds 100%",
		},
		{
			name: "decreasing offsets",
			g: Gradient{Stops: []GradientStop{
				{Color: "#ff0000", Offset: "60%"},
				{Color: "#0000ff", Offset: "40%"},
			}},
			wantErr: "decreases",
		},
		{
			name: "opacity out of range",
			g: Gradient{Stops: []GradientStop{
				{Color: "#ff0000", Offset: "0%", Opacity: opacity(1.5)},
				{Color: "#0000ff", Offset: "100%"},
			}},
			wantErr: "opacity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}
