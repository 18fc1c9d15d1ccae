// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ansi

// Attribute is a text rendition attribute. The set is closed: names used in
// markup are mapped onto these values by a theme's lookup table.
type Attribute uint8

const (
	AttrNone Attribute = iota
	AttrBold
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrDoubleUnderline
	AttrCurlyUnderline
	AttrDottedUnderline
	AttrDashedUnderline
	AttrBlink
	AttrRapidBlink
	AttrInvert
	AttrHide
	AttrStrike
	AttrPrimaryFont
	AttrFont1
	AttrFont2
	AttrFont3
	AttrFont4
	AttrFont5
	AttrFont6
	AttrFont7
	AttrFont8
	AttrFont9
	AttrFraktur
	AttrProportional
	AttrFramed
	AttrEncircled
	AttrOverline
	AttrSuperscript
	AttrSubscript
	attrCount
)

type attrCodes struct {
	name, on, off string
}

var attrTable = [attrCount]attrCodes{
	AttrNone:            {"none", "", ""},
	AttrBold:            {"bold", "1", "22"},
	AttrFaint:           {"faint", "2", "22"},
	AttrItalic:          {"italic", "3", "23"},
	AttrUnderline:       {"underline", "4", "24"},
	AttrDoubleUnderline: {"double_underline", "21", "24"},
	AttrCurlyUnderline:  {"curly_underline", "4:3", "24"},
	AttrDottedUnderline: {"dotted_underline", "4:4", "24"},
	AttrDashedUnderline: {"dashed_underline", "4:5", "24"},
	AttrBlink:           {"blink", "5", "25"},
	AttrRapidBlink:      {"rapid_blink", "6", "25"},
	AttrInvert:          {"invert", "7", "27"},
	AttrHide:            {"hide", "8", "28"},
	AttrStrike:          {"strike", "9", "29"},
	AttrPrimaryFont:     {"primary_font", "10", "10"},
	AttrFont1:           {"font1", "11", "10"},
	AttrFont2:           {"font2", "12", "10"},
	AttrFont3:           {"font3", "13", "10"},
	AttrFont4:           {"font4", "14", "10"},
	AttrFont5:           {"font5", "15", "10"},
	AttrFont6:           {"font6", "16", "10"},
	AttrFont7:           {"font7", "17", "10"},
	AttrFont8:           {"font8", "18", "10"},
	AttrFont9:           {"font9", "19", "10"},
	AttrFraktur:         {"fraktur", "20", "23"},
	AttrProportional:    {"proportional", "26", "50"},
	AttrFramed:          {"framed", "51", "54"},
	AttrEncircled:       {"encircled", "52", "54"},
	AttrOverline:        {"overline", "53", "55"},
	AttrSuperscript:     {"superscript", "73", "75"},
	AttrSubscript:       {"subscript", "74", "75"},
}

// Attributes returns every attribute except AttrNone, in declaration order.
func Attributes() []Attribute {
	out := make([]Attribute, 0, attrCount-1)
	for a := AttrBold; a < attrCount; a++ {
		out = append(out, a)
	}
	return out
}

// Valid reports whether a is one of the declared attributes.
func (a Attribute) Valid() bool { return a > AttrNone && a < attrCount }

// String returns the canonical long name of the attribute.
func (a Attribute) String() string {
	if a >= attrCount {
		return "unknown"
	}
	return attrTable[a].name
}

// On returns the SGR parameter that enables the attribute.
func (a Attribute) On() string {
	if a >= attrCount {
		return ""
	}
	return attrTable[a].on
}

// Off returns the SGR parameter that disables the attribute without
// touching anything else.
func (a Attribute) Off() string {
	if a >= attrCount {
		return ""
	}
	return attrTable[a].off
}
