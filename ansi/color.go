// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ansi

import "strconv"

// ColorMode says which SGR form a Color is written in.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // reset to whatever the terminal uses (39, 49, 59)
	ColorModeStandard                  // base palette index 0-15, emitted as 30-37/90-97 style codes
	ColorMode256                       // xterm palette index, emitted as 38;5;n
	ColorModeRGB                       // direct color, emitted as 38;2;r;g;b
)

// Color is what a markup color attribute resolves to for one of the fg, bg
// or ul targets. Palette modes use Value and ignore R, G and B.
type Color struct {
	Mode    ColorMode
	Value   uint8
	R, G, B uint8
}

// Target selects which part of a cell a color applies to.
type Target int

const (
	Foreground Target = iota
	Background
	UnderlineColor
)

// Standard returns one of the 16 ANSI colors.
func Standard(v uint8) Color { return Color{Mode: ColorModeStandard, Value: v & 0x0f} }

// Palette returns a 256-color palette entry.
func Palette(v uint8) Color { return Color{Mode: ColorMode256, Value: v} }

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color { return Color{Mode: ColorModeRGB, R: r, G: g, B: b} }

// Off returns the SGR parameter restoring the target's default color.
func (t Target) Off() string {
	switch t {
	case Background:
		return "49"
	case UnderlineColor:
		return "59"
	}
	return "39"
}

// String returns the target name used in markup prefixes.
func (t Target) String() string {
	switch t {
	case Background:
		return "bg"
	case UnderlineColor:
		return "ul"
	}
	return "fg"
}

// Params returns the SGR parameter string selecting c for target t.
func (c Color) Params(t Target) string {
	switch c.Mode {
	case ColorModeDefault:
		return t.Off()
	case ColorModeStandard:
		v := int(c.Value & 0x0f)
		switch t {
		case Foreground:
			if v < 8 {
				return strconv.Itoa(30 + v)
			}
			return strconv.Itoa(90 + v - 8)
		case Background:
			if v < 8 {
				return strconv.Itoa(40 + v)
			}
			return strconv.Itoa(100 + v - 8)
		}
		// Underline color has no short form.
		return "58;5;" + strconv.Itoa(v)
	case ColorMode256:
		return extendedPrefix(t) + ";5;" + strconv.Itoa(int(c.Value))
	case ColorModeRGB:
		return extendedPrefix(t) + ";2;" + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
	}
	return t.Off()
}

func extendedPrefix(t Target) string {
	switch t {
	case Background:
		return "48"
	case UnderlineColor:
		return "58"
	}
	return "38"
}
