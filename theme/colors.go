// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/framegrace/texelfmt/ansi"
)

// FromTCell converts a tcell color. Palette colors keep their index; RGB
// colors become 24-bit colors.
func FromTCell(c tcell.Color) ansi.Color {
	if !c.Valid() || c == tcell.ColorDefault {
		return ansi.Color{}
	}
	if !c.IsRGB() {
		idx := c - tcell.ColorValid
		if idx < 256 {
			if idx < 16 {
				return ansi.Standard(uint8(idx))
			}
			return ansi.Palette(uint8(idx))
		}
	}
	r, g, b := c.RGB()
	return ansi.RGB(uint8(r), uint8(g), uint8(b))
}

// extendedColors builds the named color table from tcell's W3C/X11 list.
func extendedColors() map[string]ansi.Color {
	out := make(map[string]ansi.Color, len(tcell.ColorNames))
	for name, c := range tcell.ColorNames {
		out[normalize(name)] = FromTCell(c)
	}
	return out
}

// ParseHex parses a 3 or 6 digit hex color, with or without a leading '#'.
func ParseHex(s string) (ansi.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return ansi.Color{}, false
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return ansi.Color{}, false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return ansi.Color{}, false
	}
	r, g, b := c.RGB255()
	return ansi.RGB(r, g, b), true
}

// parseColorValue resolves a color given in the config file: a hex color,
// a palette index or the name of a color already known to the theme.
func (t *Theme) parseColorValue(value string) (ansi.Color, error) {
	if c, ok := ParseHex(value); ok && strings.HasPrefix(value, "#") {
		return c, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return ansi.Color{}, fmt.Errorf("%w: palette index %d out of range", ErrUnknownColor, n)
		}
		return ansi.Palette(uint8(n)), nil
	}
	if c, ok := t.Color(value); ok {
		return c, nil
	}
	if c, ok := ParseHex(value); ok {
		return c, nil
	}
	return ansi.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, value)
}
