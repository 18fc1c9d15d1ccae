// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values registered under every loaded configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("theme", Section{
		"ambiguous_width": "auto",
	})
	cfg.RegisterDefaults("wrap", Section{
		"honor_newlines": true,
	})
	cfg.RegisterDefaults("table", Section{
		"border":        "rounded",
		"border_style":  "faint",
		"border_around": true,
		"padding_left":  1,
		"padding_right": 1,
	})
	cfg.RegisterDefaults("highlight", Section{
		"style": "catppuccin-mocha",
	})
}
