package bot

import (
	"strconv"
	"strings"
)

// ArgKind is a trigger's argument grammar. Matching is structural: a
// command whose tail does not fit its grammar is treated as unmatched
// text and stays silent, the same as an unknown command word.
type ArgKind int

const (
	// ArgNone accepts no tail at all.
	ArgNone ArgKind = iota
	// ArgText requires a non-empty free-text tail.
	ArgText
	// ArgWord requires exactly one bare word.
	ArgWord
	// ArgFormat requires the literal word csv or json.
	ArgFormat
	// ArgInt requires one non-negative integer.
	ArgInt
	// ArgOptInt accepts an empty tail or one non-negative integer.
	ArgOptInt
	// ArgIntText requires an integer followed by free text.
	ArgIntText
	// ArgLangText requires a two-letter language code followed by text.
	ArgLangText
	// ArgKey requires one identifier word.
	ArgKey
	// ArgKeyText requires an identifier word followed by free text.
	ArgKeyText
	// ArgHandle requires one @handle token.
	ArgHandle
	// ArgOptHandle accepts an empty tail or one @handle token.
	ArgOptHandle
)

// Args carries the parsed argument tail of a matched trigger.
type Args struct {
	Text   string
	Word   string
	Int    int
	HasInt bool
	Lang   string
	Key    string
	Handle string
}

// parseArgs validates tail against kind. ok=false means the trigger
// does not structurally match.
func parseArgs(kind ArgKind, tail string) (Args, bool) {
	switch kind {
	case ArgNone:
		return Args{}, tail == ""
	case ArgText:
		if tail == "" {
			return Args{}, false
		}
		return Args{Text: tail}, true
	case ArgWord:
		if tail == "" || strings.ContainsAny(tail, " \t") {
			return Args{}, false
		}
		return Args{Word: tail}, true
	case ArgFormat:
		if tail != "csv" && tail != "json" {
			return Args{}, false
		}
		return Args{Word: tail}, true
	case ArgInt:
		n, ok := parseCount(tail)
		if !ok {
			return Args{}, false
		}
		return Args{Int: n, HasInt: true}, true
	case ArgOptInt:
		if tail == "" {
			return Args{}, true
		}
		n, ok := parseCount(tail)
		if !ok {
			return Args{}, false
		}
		return Args{Int: n, HasInt: true}, true
	case ArgIntText:
		head, rest, found := strings.Cut(tail, " ")
		if !found {
			return Args{}, false
		}
		n, ok := parseCount(head)
		rest = strings.TrimSpace(rest)
		if !ok || rest == "" {
			return Args{}, false
		}
		return Args{Int: n, HasInt: true, Text: rest}, true
	case ArgLangText:
		head, rest, found := strings.Cut(tail, " ")
		rest = strings.TrimSpace(rest)
		if !found || rest == "" || !isLangCode(head) {
			return Args{}, false
		}
		return Args{Lang: head, Text: rest}, true
	case ArgKey:
		if !isIdent(tail) {
			return Args{}, false
		}
		return Args{Key: tail}, true
	case ArgKeyText:
		head, rest, found := strings.Cut(tail, " ")
		rest = strings.TrimSpace(rest)
		if !found || rest == "" || !isIdent(head) {
			return Args{}, false
		}
		return Args{Key: head, Text: rest}, true
	case ArgHandle:
		if !isHandle(tail) {
			return Args{}, false
		}
		return Args{Handle: tail}, true
	case ArgOptHandle:
		if tail == "" {
			return Args{}, true
		}
		if !isHandle(tail) {
			return Args{}, false
		}
		return Args{Handle: tail}, true
	default:
		return Args{}, false
	}
}

// parseCount accepts a bounded non-negative decimal.
func parseCount(s string) (int, bool) {
	if s == "" || len(s) > 7 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func isLangCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

func isHandle(s string) bool {
	return strings.HasPrefix(s, "@") && isIdent(strings.TrimPrefix(s, "@"))
}
