// Package header normalizes spreadsheet column headers into canonical
// snake-case tokens.
package header

import "strings"

// replacer applies the single-character substitutions, left to right.
// "#" expands to the word "number"; brackets and separators become
// underscores or vanish.
var replacer = strings.NewReplacer(
	"[", "_",
	"]", "",
	" ", "_",
	"#", "number",
	"-", "_",
	"/", "_",
	".", "_",
)

// Normalize converts a raw header string into its canonical snake-case
// token: lowercased, special characters replaced per the substitution
// table, and runs of underscores collapsed to one. It is a pure function
// and idempotent: Normalize(Normalize(h)) == Normalize(h).
func Normalize(raw string) string {
	s := replacer.Replace(strings.ToLower(raw))
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

// NormalizeAll normalizes every header in order.
func NormalizeAll(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = Normalize(h)
	}
	return out
}
