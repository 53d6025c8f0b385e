// Package sqltext provides the shared text normalization applied before any
// lint rule runs. Every rule sees the same normalized view, so false-positive
// avoidance (keywords inside comments or string literals) behaves identically
// across rules.
//
// All masking is length-preserving: masked characters become spaces and
// newlines survive, so byte offsets and line numbers computed against the
// normalized text are valid against the original.
package sqltext

import (
	"sort"
	"strings"
)

// Text is the normalized view of one SQL input.
type Text struct {
	// File is the logical identifier of the analyzed source. Opaque;
	// never validated here.
	File string

	// Raw is the original text, untouched.
	Raw string

	// Clean is Raw with comment and string-literal contents replaced by
	// spaces. Identifier and keyword casing is preserved.
	Clean string

	lineOffsets []int // byte offset of the start of each line
}

// Normalize builds the shared normalized view of a SQL text.
func Normalize(file, sql string) *Text {
	return &Text{
		File:        file,
		Raw:         sql,
		Clean:       mask(sql),
		lineOffsets: lineOffsets(sql),
	}
}

// LineAt returns the 1-based line number containing the given byte offset.
// Offsets past the end map to the last line; negative offsets map to line 1.
func (t *Text) LineAt(offset int) int {
	i := sort.Search(len(t.lineOffsets), func(i int) bool {
		return t.lineOffsets[i] > offset
	})
	if i < 1 {
		return 1
	}
	return i
}

// CleanLines splits the normalized text into lines.
func (t *Text) CleanLines() []string {
	return strings.Split(t.Clean, "\n")
}

func lineOffsets(s string) []int {
	offsets := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// mask replaces the contents of comments and string literals with spaces in a
// single pass. Quote characters and comment markers are masked along with
// their contents; doubled quotes ('' and "") inside literals are handled.
func mask(sql string) string {
	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
		stateLineComment
		stateBlockComment
	)

	out := []byte(sql)
	state := stateNormal
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch state {
		case stateNormal:
			switch {
			case c == '\'':
				state = stateSingleQuote
				out[i] = ' '
			case c == '"':
				state = stateDoubleQuote
				out[i] = ' '
			case c == '-' && i+1 < len(out) && out[i+1] == '-':
				state = stateLineComment
				out[i] = ' '
			case c == '/' && i+1 < len(out) && out[i+1] == '*':
				state = stateBlockComment
				out[i] = ' '
			}
		case stateSingleQuote:
			if c == '\'' {
				if i+1 < len(out) && out[i+1] == '\'' {
					out[i], out[i+1] = ' ', ' '
					i++
					continue
				}
				state = stateNormal
			}
			out[i] = ' '
		case stateDoubleQuote:
			if c == '"' {
				if i+1 < len(out) && out[i+1] == '"' {
					out[i], out[i+1] = ' ', ' '
					i++
					continue
				}
				state = stateNormal
			}
			out[i] = ' '
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
			} else {
				out[i] = ' '
			}
		case stateBlockComment:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i], out[i+1] = ' ', ' '
				i++
				state = stateNormal
				continue
			}
			if c != '\n' {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// MaskNested returns a copy of s with everything strictly inside parentheses
// replaced by spaces. The parentheses themselves survive, so a function call
// keeps its shape (COUNT(...) stays recognizable as a call) while subquery
// and argument contents disappear. Length-preserving. Unbalanced closing
// parens are ignored.
func MaskNested(s string) string {
	out := []byte(s)
	depth := 0
	for i := 0; i < len(out); i++ {
		switch out[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth > 0 && out[i] != '\n' {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// BalancedSpan returns the content between the opening paren at open and its
// matching close paren, plus the offset just past the close paren. Returns
// ok=false when the paren is unbalanced or open does not point at '('.
func BalancedSpan(s string, open int) (content string, end int, ok bool) {
	if open < 0 || open >= len(s) || s[open] != '(' {
		return "", 0, false
	}
	depth := 1
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}
