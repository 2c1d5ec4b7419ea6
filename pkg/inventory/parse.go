package inventory

import (
	"math"
	"strconv"
	"strings"

	"github.com/skumap/skumap/pkg/errors"
)

// CleanKey normalizes a raw key: trimmed and uppercased. Blank keys
// come back empty and their rows are excluded from aggregation.
func CleanKey(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s)
}

// ParseQty parses a quantity under the strict policy: blank, "NULL",
// and "NAN" coalesce to zero, thousands separators are tolerated, and
// anything else that is not an integer is an error. A strict load fails
// as a whole on the first bad value rather than mis-summing rows.
func ParseQty(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if isBlank(s) {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewParseError("int", "", strconv.Quote(raw)+" is not an integer quantity", err)
	}
	return n, nil
}

// ParseQtyLenient parses a quantity the way the legacy exports were
// consumed: blank/NULL/NAN to zero, commas stripped, "(123)" read as
// -123, decimals rounded half away from zero, and any remaining
// unparseable text silently coalesced to zero.
func ParseQtyLenient(raw string) int {
	s := strings.TrimSpace(raw)
	if isBlank(s) {
		return 0
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	n := int(math.Round(f))
	if negative {
		return -n
	}
	return n
}

// isBlank reports whether the trimmed value counts as missing.
func isBlank(s string) bool {
	switch strings.ToUpper(s) {
	case "", "NULL", "NAN":
		return true
	}
	return false
}
