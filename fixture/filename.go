package fixture

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// replacements maps runes that are common in test names but unwelcome in
// file names to a readable stand-in. Subtest separators and spaces fold
// to underscores, everything else shell-hostile does too.
var replacements = map[rune]string{ //nolint:gochecknoglobals
	'/': "_", '\\': "_", ' ': "_", ':': "-",
	'*': "_", '?': "_", '"': "_", '\'': "_",
	'<': "_", '>': "_", '|': "_", '#': "_", '%': "_",
	'&': "_and_", '+': "_plus_", '@': "_at_",
}

// Filename converts an arbitrary test name into a name that is safe to
// use as a file name on common filesystems. Accented runes fold to their
// ASCII base, anything else outside printable ASCII becomes an
// underscore, and runs of underscores collapse.
func Filename(name string) string {
	if name == "" {
		return ""
	}

	var buf strings.Builder

	for _, r := range name {
		if repl, ok := replacements[r]; ok {
			buf.WriteString(repl)
		} else {
			buf.WriteRune(r)
		}
	}

	// Decompose so combining marks can be stripped, folding é to e.
	decomposed := norm.NFD.String(buf.String())
	buf.Reset()

	for _, r := range decomposed {
		switch {
		case unicode.IsMark(r):
		case r < 32 || r > 126:
			buf.WriteRune('_')
		default:
			buf.WriteRune(r)
		}
	}

	name = buf.String()

	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}

	return strings.Trim(name, "_")
}
