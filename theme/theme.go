// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Immutable styling tables shared by every render call.

// Package theme holds the lookup data consulted while rendering: attribute
// names, named colors, markup aliases, border templates and the width of
// East Asian ambiguous characters. A Theme never changes after it is built
// and may be shared between goroutines.
package theme

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/framegrace/texelfmt/ansi"
	"github.com/framegrace/texelfmt/config"
	"github.com/framegrace/texelfmt/width"
)

var (
	ErrUnknownBorder    = errors.New("unknown border")
	ErrInvalidBorder    = errors.New("invalid border template")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrUnknownColor     = errors.New("unknown color")
)

// Theme is the read-only style configuration passed to renderers.
type Theme struct {
	ambiguous int
	colors    map[string]ansi.Color
	aliases   map[string]string
	borders   map[string]Border
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the theme built from the embedded defaults. It is
// constructed once.
func Default() *Theme {
	defaultOnce.Do(func() {
		t, err := Load(config.Defaults())
		if err != nil {
			log.Printf("Theme: Embedded defaults rejected: %v", err)
			t = New(width.FromEnvironment().Ambiguous())
		}
		defaultTheme = t
	})
	return defaultTheme
}

// New returns a theme holding only the built-in tables.
func New(ambiguous int) *Theme {
	t := &Theme{
		ambiguous: width.New(ambiguous).Ambiguous(),
		colors:    extendedColors(),
		aliases:   make(map[string]string),
		borders:   make(map[string]Border, len(builtinBorders)),
	}
	for name, tmpl := range builtinBorders {
		b, err := newBorder(tmpl)
		if err != nil {
			panic(fmt.Sprintf("theme: builtin border %s: %v", name, err))
		}
		t.borders[name] = b
	}
	return t
}

// Load builds a theme from the "theme" section of cfg. Recognized keys:
// ambiguous_width (1, 2 or "auto"), colors, aliases and borders. Extra
// colors may reference each other only in lexical order.
func Load(cfg config.Config) (*Theme, error) {
	amb, err := ambiguousWidth(cfg)
	if err != nil {
		return nil, err
	}
	t := New(amb)

	colors := cfg.GetStringMap("theme", "colors")
	for _, name := range sortedKeys(colors) {
		c, err := t.parseColorValue(colors[name])
		if err != nil {
			return nil, fmt.Errorf("theme color %s: %w", name, err)
		}
		t.colors[normalize(name)] = c
	}

	for name, value := range cfg.GetStringMap("theme", "aliases") {
		key := normalize(name)
		if key == "" || strings.TrimSpace(value) == "" {
			continue
		}
		t.aliases[key] = value
	}

	for name, tmpl := range cfg.GetStringMap("theme", "borders") {
		b, err := newBorder(tmpl)
		if err != nil {
			return nil, fmt.Errorf("theme border %s: %w", name, err)
		}
		t.borders[strings.ToLower(name)] = b
	}
	return t, nil
}

func ambiguousWidth(cfg config.Config) (int, error) {
	const unset = -1
	switch n := cfg.GetFloat("theme", "ambiguous_width", unset); n {
	case 1, 2:
		return int(n), nil
	case unset:
		mode := strings.ToLower(strings.TrimSpace(cfg.GetString("theme", "ambiguous_width", "auto")))
		if mode == "auto" || mode == "" {
			return width.FromEnvironment().Ambiguous(), nil
		}
	}
	return 0, fmt.Errorf("theme ambiguous_width %v: must be 1, 2 or auto", cfg.Section("theme")["ambiguous_width"])
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AmbiguousWidth returns the column count of East Asian ambiguous
// characters (1 or 2).
func (t *Theme) AmbiguousWidth() int { return t.ambiguous }

// Classifier returns a width classifier using the theme's ambiguous width.
func (t *Theme) Classifier() width.Classifier { return width.New(t.ambiguous) }

// Attribute resolves an attribute name or short alias.
func (t *Theme) Attribute(name string) (ansi.Attribute, bool) {
	a, ok := attributeNames[normalize(name)]
	return a, ok
}

// LookupAttribute is Attribute with an error for unknown names.
func (t *Theme) LookupAttribute(name string) (ansi.Attribute, error) {
	if a, ok := t.Attribute(name); ok {
		return a, nil
	}
	return ansi.AttrNone, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// Color resolves a named color: the 4-bit names and their bright variants
// first, then the extended table.
func (t *Theme) Color(name string) (ansi.Color, bool) {
	key := normalize(name)
	if c, ok := basicColor(key); ok {
		return c, true
	}
	c, ok := t.colors[key]
	return c, ok
}

// Alias returns the markup tokens an alias expands to.
func (t *Theme) Alias(name string) (string, bool) {
	v, ok := t.aliases[normalize(name)]
	return v, ok
}

// Border returns the named border template.
func (t *Theme) Border(name string) (Border, error) {
	if b, ok := t.borders[strings.ToLower(name)]; ok {
		return b, nil
	}
	return Border{}, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
}

// ParseBorder accepts a border name, a single glyph repeated everywhere,
// or a full 11-glyph template. The empty string is the zero Border.
func (t *Theme) ParseBorder(s string) (Border, error) {
	if s == "" {
		return Border{}, nil
	}
	if b, ok := t.borders[strings.ToLower(s)]; ok {
		return b, nil
	}
	n := uniseg.GraphemeClusterCount(s)
	if n != 1 && n != int(partCount) {
		return Border{}, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
	}
	return newBorder(s)
}

// BorderNames lists the known border names in sorted order.
func (t *Theme) BorderNames() []string {
	names := make([]string, 0, len(t.borders))
	for name := range t.borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
