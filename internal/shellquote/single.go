package shellquote

import "strings"

// safeUnquotedRune is the character class that needs no quoting at all: a
// string made up entirely of these characters is returned unchanged.
func safeUnquotedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '@', '%', '+', '=', ':', ',', '.', '/', '-':
		return true
	}
	return false
}

// QuoteSingle produces a shell-safe single-quoted token for s: the empty
// string becomes '', a string made entirely of shell-safe characters is
// returned unchanged, and anything else is wrapped in single quotes with
// every embedded single quote replaced by '"'"' -- close the quoted
// string, emit a double-quoted single quote, reopen. Used for values that
// must never be re-expanded by the shell: state-record JSON blobs and
// restored original values.
func QuoteSingle(s string) string {
	if s == "" {
		return "''"
	}

	safe := true
	for _, r := range s {
		if !safeUnquotedRune(r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}

	escaped := strings.ReplaceAll(s, "'", `'"'"'`)
	return "'" + escaped + "'"
}
