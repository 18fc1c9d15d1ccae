// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package ansi models SGR (Select Graphic Rendition) styling: text
// attributes, colors and the escape sequences that switch them on and off.
package ansi

import "strings"

// Escape sequence building blocks.
const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// Sequence joins SGR parameters into one escape sequence. It returns the
// empty string when no parameters are given.
func Sequence(params ...string) string {
	if len(params) == 0 {
		return ""
	}
	return CSI + strings.Join(params, ";") + "m"
}

// IsSGR reports whether seq is a complete SGR sequence (CSI params m).
func IsSGR(seq string) bool {
	_, ok := SplitSGR(seq)
	return ok
}

// SplitSGR returns the semicolon-separated parameters of an SGR sequence.
// Colon sub-parameters stay attached to their parameter ("4:3"). An empty
// parameter list ("\x1b[m") yields a single empty string, which terminals
// treat as 0.
func SplitSGR(seq string) ([]string, bool) {
	if len(seq) < 3 || !strings.HasPrefix(seq, CSI) || seq[len(seq)-1] != 'm' {
		return nil, false
	}
	body := seq[len(CSI) : len(seq)-1]
	for i := 0; i < len(body); i++ {
		c := body[i]
		if (c < '0' || c > '9') && c != ';' && c != ':' {
			return nil, false
		}
	}
	return strings.Split(body, ";"), true
}

// IsFullReset reports whether a single SGR parameter resets everything.
func IsFullReset(param string) bool {
	return param == "" || param == "0" || param == "00"
}
