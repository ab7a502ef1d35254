package dataprocessing

import (
	"strings"
	"unicode"
)

// matcher reports whether a trimmed line is a section header or stop line
type matcher func(line string) bool

// columns matches a ';' separated line whose fields are exactly names.
// Comparison ignores case and whitespace inside each field.
func columns(names ...string) matcher {
	want := compactAll(names)
	return func(line string) bool {
		got := strings.Split(line, ";")
		if len(got) != len(want) {
			return false
		}
		for i := range want {
			if compact(got[i]) != want[i] {
				return false
			}
		}
		return true
	}
}

// columnPrefix matches a ';' separated line starting with names.
// The last name only needs to prefix its field, so "ID;T;RiL" also matches "ID;T;RiLs;...".
func columnPrefix(names ...string) matcher {
	want := compactAll(names)
	return func(line string) bool {
		got := strings.SplitN(line, ";", len(want)+1)
		if len(got) < len(want) {
			return false
		}
		last := len(want) - 1
		for i := 0; i < last; i++ {
			if compact(got[i]) != want[i] {
				return false
			}
		}
		return strings.HasPrefix(compact(got[last]), want[last])
	}
}

// wordPrefix matches a line whose leading whitespace separated words are words
func wordPrefix(words ...string) matcher {
	return func(line string) bool {
		got := strings.Fields(line)
		if len(got) < len(words) {
			return false
		}
		for i, w := range words {
			if !strings.EqualFold(got[i], w) {
				return false
			}
		}
		return true
	}
}

// allWords matches a line containing every one of words as a whole word, in any order
func allWords(words ...string) matcher {
	return func(line string) bool {
		present := make(map[string]struct{})
		for _, w := range splitWords(line) {
			present[strings.ToLower(w)] = struct{}{}
		}
		for _, w := range words {
			if _, ok := present[strings.ToLower(w)]; !ok {
				return false
			}
		}
		return true
	}
}

// fragments matches a line containing every fragment once whitespace is removed
func fragments(frags ...string) matcher {
	want := compactAll(frags)
	return func(line string) bool {
		got := compact(line)
		for _, f := range want {
			if !strings.Contains(got, f) {
				return false
			}
		}
		return true
	}
}

// textPrefix matches a line beginning with prefix, case-insensitively
func textPrefix(prefix string) matcher {
	return func(line string) bool {
		return len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix)
	}
}

// leadingWord matches a line whose first word is word ("Bye", "Bye." but not "Byebye")
func leadingWord(word string) matcher {
	return func(line string) bool {
		if !textPrefix(word)(line) {
			return false
		}
		rest := line[len(word):]
		return rest == "" || !isWordRune(rune(rest[0]))
	}
}

// nodePrompt matches an interactive node prompt followed by a command,
// e.g. "CSNODE01> lt all".
func nodePrompt(line string) bool {
	if !textPrefix("CS")(line) {
		return false
	}
	i := 2
	for i < len(line) && isWordRune(rune(line[i])) {
		i++
	}
	if i == 2 || i >= len(line) || line[i] != '>' {
		return false
	}
	i++
	spaces := i
	for i < len(line) && unicode.IsSpace(rune(line[i])) {
		i++
	}
	return i > spaces && i < len(line) && isWordRune(rune(line[i]))
}

func anyMatch(matchers []matcher, line string) bool {
	for _, m := range matchers {
		if m(line) {
			return true
		}
	}
	return false
}

// isSeparator reports a rule line made of 3 or more '=' or '-' only
func isSeparator(line string) bool {
	if len(line) < 3 {
		return false
	}
	c := line[0]
	if c != '=' && c != '-' {
		return false
	}
	return strings.Count(line, string(c)) == len(line)
}

func compact(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

func compactAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = compact(s)
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !isWordRune(r) })
}

// state is the position of the locator relative to one section kind
type state int

const (
	outside state = iota
	inside
)

func (s state) String() string {
	if s == inside {
		return "inside"
	}
	return "outside"
}

// action tells the parser what to do with the line just classified
type action int

const (
	skipLine action = iota
	enterSection
	leaveSection
	restartSection
	recordLine
)

// locator holds the boundary rules of one section kind. It carries no
// state of its own; the caller threads the state value through next.
type locator struct {
	header    matcher
	stops     []matcher
	delimiter string
}

// next classifies one line given the current state and returns the new state
func (l locator) next(s state, raw string) (state, action) {
	line := strings.TrimSpace(raw)
	if s == outside {
		if line != "" && l.header(line) {
			return inside, enterSection
		}
		return outside, skipLine
	}

	switch {
	case line == "", isSeparator(line):
		return inside, skipLine
	case anyMatch(l.stops, line):
		return outside, leaveSection
	case l.header(line):
		return inside, restartSection
	case l.delimiter != "" && !strings.Contains(line, l.delimiter):
		return inside, skipLine
	default:
		return inside, recordLine
	}
}
