// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package termdraw

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelfmt/ansi"
)

// applySGR folds one SGR sequence into st. Reset returns to base. Unknown
// parameters are ignored.
func applySGR(st, base tcell.Style, seq string) tcell.Style {
	params, ok := ansi.SplitSGR(seq)
	if !ok {
		return st
	}
	for i := 0; i < len(params); i++ {
		head, sub, _ := strings.Cut(params[i], ":")
		p, err := strconv.Atoi(head)
		if err != nil && head != "" {
			continue
		}
		switch {
		case p == 0:
			st = base
		case p == 1:
			st = st.Bold(true)
		case p == 2:
			st = st.Dim(true)
		case p == 3:
			st = st.Italic(true)
		case p == 4:
			st = st.Underline(underlineStyle(sub))
		case p == 5 || p == 6:
			st = st.Blink(true)
		case p == 7:
			st = st.Reverse(true)
		case p == 9:
			st = st.StrikeThrough(true)
		case p == 21:
			st = st.Underline(tcell.UnderlineStyleDouble)
		case p == 22:
			st = st.Bold(false).Dim(false)
		case p == 23:
			st = st.Italic(false)
		case p == 24:
			st = st.Underline(false)
		case p == 25:
			st = st.Blink(false)
		case p == 27:
			st = st.Reverse(false)
		case p == 29:
			st = st.StrikeThrough(false)
		case p >= 30 && p <= 37:
			st = st.Foreground(tcell.PaletteColor(p - 30))
		case p == 39:
			fg, _, _ := base.Decompose()
			st = st.Foreground(fg)
		case p >= 40 && p <= 47:
			st = st.Background(tcell.PaletteColor(p - 40))
		case p == 49:
			_, bg, _ := base.Decompose()
			st = st.Background(bg)
		case p >= 90 && p <= 97:
			st = st.Foreground(tcell.PaletteColor(p - 90 + 8))
		case p >= 100 && p <= 107:
			st = st.Background(tcell.PaletteColor(p - 100 + 8))
		case p == 38 || p == 48 || p == 58:
			var c tcell.Color
			var found bool
			if sub != "" {
				c, found = extendedColor(strings.Split(sub, ":"))
			} else {
				var n int
				c, n, found = extendedColorParams(params[i+1:])
				i += n
			}
			if !found {
				continue
			}
			switch p {
			case 38:
				st = st.Foreground(c)
			case 48:
				st = st.Background(c)
			}
			// Underline colour is consumed but not rendered.
		}
	}
	return st
}

func underlineStyle(sub string) tcell.UnderlineStyle {
	switch sub {
	case "0":
		return tcell.UnderlineStyleNone
	case "2":
		return tcell.UnderlineStyleDouble
	case "3":
		return tcell.UnderlineStyleCurly
	case "4":
		return tcell.UnderlineStyleDotted
	case "5":
		return tcell.UnderlineStyleDashed
	}
	return tcell.UnderlineStyleSolid
}

// extendedColorParams reads "5;n" or "2;r;g;b" following a 38/48/58
// parameter and reports how many parameters it consumed.
func extendedColorParams(rest []string) (tcell.Color, int, bool) {
	if len(rest) == 0 {
		return tcell.ColorDefault, 0, false
	}
	switch rest[0] {
	case "5":
		if len(rest) < 2 {
			return tcell.ColorDefault, len(rest), false
		}
		c, ok := extendedColor(rest[:2])
		return c, 2, ok
	case "2":
		if len(rest) < 4 {
			return tcell.ColorDefault, len(rest), false
		}
		c, ok := extendedColor(rest[:4])
		return c, 4, ok
	}
	return tcell.ColorDefault, 0, false
}

// extendedColor decodes colon-form sub-parameters: "5:n", "2:r:g:b" or
// "2:colorspace:r:g:b".
func extendedColor(sub []string) (tcell.Color, bool) {
	if len(sub) == 0 {
		return tcell.ColorDefault, false
	}
	nums := make([]int, 0, len(sub)-1)
	for _, s := range sub[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			n = 0
		}
		nums = append(nums, n)
	}
	switch sub[0] {
	case "5":
		if len(nums) < 1 || nums[0] < 0 || nums[0] > 255 {
			return tcell.ColorDefault, false
		}
		return tcell.PaletteColor(nums[0]), true
	case "2":
		if len(nums) > 3 {
			nums = nums[len(nums)-3:]
		}
		if len(nums) < 3 {
			return tcell.ColorDefault, false
		}
		return tcell.NewRGBColor(int32(clampByte(nums[0])), int32(clampByte(nums[1])), int32(clampByte(nums[2]))), true
	}
	return tcell.ColorDefault, false
}

func clampByte(n int) int {
	return min(max(n, 0), 255)
}
