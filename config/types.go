// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.

package config

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Section returns the named section, or nil when it is missing or not an
// object. The empty name addresses the top level.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	switch v := c[sectionName].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills the keys of the named section that are not set
// yet, creating the section when it is absent. Values already present win.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	target := c.Section(sectionName)
	if target == nil {
		target = make(Section, len(defaults))
		c[sectionName] = target
	}
	for key, value := range defaults {
		if _, ok := target[key]; !ok {
			target[key] = value
		}
	}
}

// value returns the raw entry for key in the named section.
func (c Config) value(sectionName, key string) (interface{}, bool) {
	section := c.Section(sectionName)
	if section == nil {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

// number converts JSON-decoded numbers, Go ints set by callers and numeric
// strings to float64.
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// GetString returns a string entry, or defaultValue when the entry is
// missing or not a string.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	if v, ok := c.value(sectionName, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetFloat returns a numeric entry. Numeric strings are accepted.
func (c Config) GetFloat(sectionName, key string, defaultValue float64) float64 {
	if v, ok := c.value(sectionName, key); ok {
		if f, ok := number(v); ok {
			return f
		}
	}
	return defaultValue
}

// GetInt is GetFloat truncated toward zero.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	if v, ok := c.value(sectionName, key); ok {
		if f, ok := number(v); ok {
			return int(f)
		}
	}
	return defaultValue
}

// GetBool returns a boolean entry. Strings go through strconv.ParseBool and
// numbers are true when non-zero.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	v, ok := c.value(sectionName, key)
	if !ok {
		return defaultValue
	}
	if b, ok := v.(bool); ok {
		return b
	}
	if s, ok := v.(string); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b
		}
		return defaultValue
	}
	if f, ok := number(v); ok {
		return f != 0
	}
	return defaultValue
}

// GetStringMap retrieves a nested object of string values. Non-string
// entries are skipped. The returned map is a copy.
func (c Config) GetStringMap(sectionName, key string) map[string]string {
	section := c.Section(sectionName)
	if section == nil {
		return nil
	}
	var raw map[string]interface{}
	switch v := section[key].(type) {
	case map[string]interface{}:
		raw = v
	case Section:
		raw = v
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	default:
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, val := range raw {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
