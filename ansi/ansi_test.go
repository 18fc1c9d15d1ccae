// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ansi

import "testing"

func TestSequence(t *testing.T) {
	if got := Sequence("1"); got != "\x1b[1m" {
		t.Errorf("Sequence(1) = %q", got)
	}
	if got := Sequence("1", "31"); got != "\x1b[1;31m" {
		t.Errorf("Sequence(1, 31) = %q", got)
	}
	if got := Sequence(); got != "" {
		t.Errorf("Sequence() = %q, want empty", got)
	}
}

func TestSplitSGR(t *testing.T) {
	tests := []struct {
		in   string
		want []string
		ok   bool
	}{
		{"\x1b[1m", []string{"1"}, true},
		{"\x1b[m", []string{""}, true},
		{"\x1b[38;5;196m", []string{"38", "5", "196"}, true},
		{"\x1b[4:3m", []string{"4:3"}, true},
		{"\x1b[2J", nil, false},
		{"\x1b[?25m", nil, false},
		{"plain", nil, false},
	}
	for _, tt := range tests {
		got, ok := SplitSGR(tt.in)
		if ok != tt.ok {
			t.Errorf("SplitSGR(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("SplitSGR(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitSGR(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestColorParams(t *testing.T) {
	tests := []struct {
		c      Color
		target Target
		want   string
	}{
		{Standard(1), Foreground, "31"},
		{Standard(1), Background, "41"},
		{Standard(9), Foreground, "91"},
		{Standard(9), Background, "101"},
		{Standard(2), UnderlineColor, "58;5;2"},
		{Palette(160), Foreground, "38;5;160"},
		{Palette(160), Background, "48;5;160"},
		{RGB(255, 0, 16), Foreground, "38;2;255;0;16"},
		{RGB(1, 2, 3), UnderlineColor, "58;2;1;2;3"},
		{Color{}, Background, "49"},
	}
	for _, tt := range tests {
		if got := tt.c.Params(tt.target); got != tt.want {
			t.Errorf("%+v.Params(%v) = %q, want %q", tt.c, tt.target, got, tt.want)
		}
	}
}

func TestAttributeCodes(t *testing.T) {
	if AttrBold.On() != "1" || AttrBold.Off() != "22" {
		t.Errorf("bold codes = %q/%q", AttrBold.On(), AttrBold.Off())
	}
	if AttrCurlyUnderline.On() != "4:3" || AttrCurlyUnderline.Off() != "24" {
		t.Errorf("curly underline codes = %q/%q", AttrCurlyUnderline.On(), AttrCurlyUnderline.Off())
	}
	for _, a := range Attributes() {
		if !a.Valid() || a.On() == "" || a.Off() == "" {
			t.Errorf("attribute %v has incomplete codes", a)
		}
	}
	if Attribute(200).String() != "unknown" || Attribute(200).Valid() {
		t.Errorf("out of range attribute should be unknown and invalid")
	}
}

func TestStateTracksUntilReset(t *testing.T) {
	var s State
	s.Apply("\x1b[1m")
	s.Apply("\x1b[2J") // not SGR
	s.Apply("\x1b[31m")
	if got := s.String(); got != "\x1b[1m\x1b[31m" {
		t.Fatalf("state = %q", got)
	}
	s.Apply(Reset)
	if s.Active() {
		t.Fatalf("state should be empty after reset, got %q", s.String())
	}
}

func TestStateResetInsideSequence(t *testing.T) {
	var s State
	s.Apply("\x1b[1m")
	s.Apply("\x1b[0;4m")
	if got := s.String(); got != "\x1b[4m" {
		t.Errorf("state = %q, want underline only", got)
	}
	s.Apply("\x1b[m")
	if s.Active() {
		t.Errorf("empty SGR should reset, got %q", s.String())
	}
}

func TestStateColorArgumentIsNotReset(t *testing.T) {
	var s State
	s.Apply("\x1b[38;5;0m")
	s.Apply("\x1b[48;2;0;0;0m")
	if got := s.String(); got != "\x1b[38;5;0m\x1b[48;2;0;0;0m" {
		t.Errorf("state = %q", got)
	}
}
