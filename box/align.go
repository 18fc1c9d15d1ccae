// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package box

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlign is returned when an alignment name is not recognized.
var ErrUnknownAlign = errors.New("unknown alignment")

// Align is horizontal alignment inside a block.
type Align uint8

const (
	Left Align = iota
	Center
	Right
)

func (a Align) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "left"
}

// VAlign is vertical alignment inside a block.
type VAlign uint8

const (
	Top VAlign = iota
	Middle
	Bottom
)

func (v VAlign) String() string {
	switch v {
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	}
	return "top"
}

// ParseAlign parses "left", "center" or "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "left", "l":
		return Left, nil
	case "center", "centre", "c":
		return Center, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("%w: %q", ErrUnknownAlign, s)
}

// ParseVAlign parses "top", "middle" or "bottom".
func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(s) {
	case "", "top", "t":
		return Top, nil
	case "middle", "center", "m":
		return Middle, nil
	case "bottom", "b":
		return Bottom, nil
	}
	return Top, fmt.Errorf("%w: %q", ErrUnknownAlign, s)
}
