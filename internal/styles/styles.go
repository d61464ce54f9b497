// Package styles holds the calculator's fyne themes: a base theme that tints
// primary-coloured (special) buttons, and text-size overrides for the
// display, info label and button grid.
package styles

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"calculator/internal/constants"
)

var (
	primaryColor      = mustParseHex(constants.PrimaryColor)
	primaryTextColor  = mustParseHex(constants.SpecialButtonTextHex)
	primaryFocusColor = mustParseHex(constants.DarkerPrimaryColor)
	primaryPressColor = mustParseHex(constants.DarkestPrimaryColor)
)

// calculatorTheme delegates to the fyne default theme, optionally pinning
// the light/dark variant.
type calculatorTheme struct {
	fyne.Theme
	variant *fyne.ThemeVariant
}

// NewTheme returns the application theme for a settings theme name:
// "dark", "light" or "default" (follow the system).
func NewTheme(name string) fyne.Theme {
	t := &calculatorTheme{Theme: theme.DefaultTheme()}
	switch name {
	case "dark":
		v := theme.VariantDark
		t.variant = &v
	case "light":
		v := theme.VariantLight
		t.variant = &v
	}
	return t
}

func (t *calculatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}
	switch name {
	case theme.ColorNamePrimary:
		return primaryColor
	case theme.ColorNameForegroundOnPrimary:
		return primaryTextColor
	case theme.ColorNameFocus:
		return withAlpha(primaryFocusColor, 0x7f)
	case theme.ColorNamePressed:
		return withAlpha(primaryPressColor, 0x66)
	}
	return t.Theme.Color(name, variant)
}

// textSizeTheme overrides only the text size of its parent theme.
type textSizeTheme struct {
	fyne.Theme
	size float32
}

// WithTextSize returns base with SizeNameText replaced by size.
func WithTextSize(base fyne.Theme, size float32) fyne.Theme {
	return &textSizeTheme{Theme: base, size: size}
}

func (t *textSizeTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.size
	}
	return t.Theme.Size(name)
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("ParseHexColor: %q is not #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("ParseHexColor: %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustParseHex(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
