package report

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeAmount converts a raw monetary cell into a numeric amount.
// Order exports mix plain numbers with Indonesian-formatted strings such as
// "Rp1.234.567,89": the "Rp" prefix and thousands dots are stripped, a comma
// starts the fractional part, and the fraction is discarded (payouts carry
// no sub-unit amounts). A minus sign ahead of the digits is kept. Anything
// that still fails to parse degrades to 0.
func NormalizeAmount(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Everything after the first decimal comma is sub-unit and dropped.
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}

	neg := false
	var digits strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteByte(byte(r))
		case r == '-' && digits.Len() == 0:
			neg = true
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	if neg {
		v = -v
	}
	return v
}

// NormalizeCell normalizes a cell of unknown type. Numeric values pass
// through unchanged; everything else goes through NormalizeAmount.
func NormalizeCell(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		return NormalizeAmount(x)
	default:
		return NormalizeAmount(fmt.Sprint(x))
	}
}
