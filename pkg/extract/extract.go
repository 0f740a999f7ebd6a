// Package extract isolates embedded script regions from markup.
//
// Every input line produces exactly one output line. Text outside script
// regions is masked: lines without script content come out empty, and markup
// preceding script content on the same line is replaced by spaces so columns
// reported by the engine still point at the right character.
package extract

import (
	"strings"
	"unicode/utf8"
)

// State is the extractor's position relative to a script region.
type State int

const (
	// Ignoring scans markup for an opening script tag.
	Ignoring State = iota
	// AwaitingTagClose scans the opening tag's attributes for its closing '>'.
	AwaitingTagClose
	// Emitting passes script text through until a closing script tag.
	Emitting
)

func (s State) String() string {
	switch s {
	case Ignoring:
		return "ignoring"
	case AwaitingTagClose:
		return "awaiting-tag-close"
	case Emitting:
		return "emitting"
	default:
		return "unknown"
	}
}

const (
	openMarker  = "<script"
	closeMarker = "</script"
)

// Step consumes one line (without its line terminator) in the given state and
// returns the next state and the masked output line.
func Step(state State, line string) (State, string) {
	var out strings.Builder
	masked := 0
	rest := line

	emit := func(segment string) {
		if segment == "" {
			return
		}
		out.WriteString(strings.Repeat(" ", masked))
		masked = 0
		out.WriteString(segment)
	}

	for {
		switch state {
		case Ignoring:
			idx := indexFold(rest, openMarker)
			if idx < 0 {
				return state, out.String()
			}
			masked += utf8.RuneCountInString(rest[:idx+len(openMarker)])
			rest = rest[idx+len(openMarker):]
			state = AwaitingTagClose

		case AwaitingTagClose:
			idx := indexTagClose(rest)
			if idx < 0 {
				return state, out.String()
			}
			masked += utf8.RuneCountInString(rest[:idx+1])
			rest = rest[idx+1:]
			state = Emitting

		case Emitting:
			idx := indexFold(rest, closeMarker)
			if idx < 0 {
				emit(rest)
				return state, out.String()
			}
			emit(rest[:idx])
			masked += utf8.RuneCountInString(rest[idx : idx+len(closeMarker)])
			rest = rest[idx+len(closeMarker):]
			state = Ignoring

		default:
			return Ignoring, out.String()
		}
	}
}

// Lines runs the state machine over lines, starting in Ignoring.
// The result always has len(lines) entries.
func Lines(lines []string) []string {
	out := make([]string, len(lines))
	state := Ignoring
	for i, line := range lines {
		state, out[i] = Step(state, line)
	}
	return out
}

// indexFold returns the index of the first ASCII case-insensitive match of
// marker in s, or -1. marker must be lower-case ASCII.
func indexFold(s, marker string) int {
	for i := 0; i+len(marker) <= len(s); i++ {
		if matchFold(s[i:i+len(marker)], marker) {
			return i
		}
	}
	return -1
}

func matchFold(s, marker string) bool {
	for i := 0; i < len(marker); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != marker[i] {
			return false
		}
	}
	return true
}

// indexTagClose returns the index of the first '>' not preceded by a backslash.
func indexTagClose(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '>' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		return i
	}
	return -1
}
