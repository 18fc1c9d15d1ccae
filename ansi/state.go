// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ansi

import "strings"

// State tracks the SGR sequences that are in effect since the last full
// reset. Replaying String() at the start of a fresh line reproduces the
// styling that was active at the point the state was captured.
type State struct {
	active []string
}

// Apply records seq if it is an SGR sequence. A full reset anywhere in the
// parameter list discards everything recorded before it. Non-SGR sequences
// are ignored.
func (s *State) Apply(seq string) {
	params, ok := SplitSGR(seq)
	if !ok {
		return
	}
	last := lastReset(params)
	if last < 0 {
		s.active = append(s.active, seq)
		return
	}
	s.active = s.active[:0]
	if rest := params[last+1:]; len(rest) > 0 {
		s.active = append(s.active, Sequence(rest...))
	}
}

// lastReset returns the index of the last parameter that resets all
// attributes, skipping over the arguments of extended color parameters.
func lastReset(params []string) int {
	last := -1
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch p {
		case "38", "48", "58":
			if i+1 < len(params) {
				switch params[i+1] {
				case "5":
					i += 2
				case "2":
					i += 4
				}
			}
			continue
		}
		if IsFullReset(p) {
			last = i
		}
	}
	return last
}

// Active reports whether any styling is in effect.
func (s *State) Active() bool { return len(s.active) > 0 }

// String returns the recorded sequences concatenated in order.
func (s *State) String() string { return strings.Join(s.active, "") }

// Clear forgets all recorded sequences.
func (s *State) Clear() { s.active = s.active[:0] }
