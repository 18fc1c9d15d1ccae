// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"strings"

	"github.com/framegrace/texelfmt/ansi"
)

// attributeNames maps long names and short aliases onto attributes. Keys are
// stored normalized (see normalize).
var attributeNames = map[string]ansi.Attribute{
	"bold": ansi.AttrBold, "b": ansi.AttrBold,
	"faint": ansi.AttrFaint, "dim": ansi.AttrFaint, "d": ansi.AttrFaint,
	"italic": ansi.AttrItalic, "i": ansi.AttrItalic,
	"underline": ansi.AttrUnderline, "u": ansi.AttrUnderline,
	"doubleunderline": ansi.AttrDoubleUnderline, "uu": ansi.AttrDoubleUnderline,
	"curlyunderline": ansi.AttrCurlyUnderline, "curly": ansi.AttrCurlyUnderline, "cu": ansi.AttrCurlyUnderline,
	"dottedunderline": ansi.AttrDottedUnderline, "dotted": ansi.AttrDottedUnderline,
	"dashedunderline": ansi.AttrDashedUnderline, "dashed": ansi.AttrDashedUnderline,
	"blink": ansi.AttrBlink, "bl": ansi.AttrBlink,
	"rapidblink": ansi.AttrRapidBlink, "rblink": ansi.AttrRapidBlink,
	"invert": ansi.AttrInvert, "inv": ansi.AttrInvert, "reverse": ansi.AttrInvert, "rev": ansi.AttrInvert,
	"hide": ansi.AttrHide, "hidden": ansi.AttrHide, "conceal": ansi.AttrHide,
	"strike": ansi.AttrStrike, "s": ansi.AttrStrike, "strikethrough": ansi.AttrStrike,
	"primaryfont": ansi.AttrPrimaryFont, "font0": ansi.AttrPrimaryFont, "f0": ansi.AttrPrimaryFont,
	"font1": ansi.AttrFont1, "f1": ansi.AttrFont1,
	"font2": ansi.AttrFont2, "f2": ansi.AttrFont2,
	"font3": ansi.AttrFont3, "f3": ansi.AttrFont3,
	"font4": ansi.AttrFont4, "f4": ansi.AttrFont4,
	"font5": ansi.AttrFont5, "f5": ansi.AttrFont5,
	"font6": ansi.AttrFont6, "f6": ansi.AttrFont6,
	"font7": ansi.AttrFont7, "f7": ansi.AttrFont7,
	"font8": ansi.AttrFont8, "f8": ansi.AttrFont8,
	"font9": ansi.AttrFont9, "f9": ansi.AttrFont9,
	"fraktur": ansi.AttrFraktur, "fr": ansi.AttrFraktur,
	"proportional": ansi.AttrProportional, "prop": ansi.AttrProportional,
	"framed": ansi.AttrFramed, "frame": ansi.AttrFramed,
	"encircled": ansi.AttrEncircled, "circle": ansi.AttrEncircled,
	"overline": ansi.AttrOverline, "o": ansi.AttrOverline,
	"superscript": ansi.AttrSuperscript, "sup": ansi.AttrSuperscript,
	"subscript": ansi.AttrSubscript, "sub": ansi.AttrSubscript,
}

// basicColors holds the eight 3-bit color names. Bright variants are
// addressed with a "bright" prefix and map to 8-15.
var basicColors = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// normalize lowercases a name and drops separators so that "Bright_Red",
// "bright-red" and "brightred" are the same key.
func normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_' || c == '-' || c == ' ':
			continue
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// basicColor resolves the 4-bit names. "default" selects the terminal's
// default color.
func basicColor(key string) (ansi.Color, bool) {
	if key == "default" {
		return ansi.Color{}, true
	}
	if v, ok := basicColors[key]; ok {
		return ansi.Standard(v), true
	}
	if rest, ok := strings.CutPrefix(key, "bright"); ok {
		if v, ok := basicColors[rest]; ok {
			return ansi.Standard(v + 8), true
		}
	}
	return ansi.Color{}, false
}
