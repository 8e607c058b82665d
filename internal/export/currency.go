package export

import (
	"math"
	"strconv"
)

// FormatRupiah formats an amount using Indonesian conventions: "Rp" prefix,
// dot as thousands separator, no decimal places.
// Example: 1234567.4 => "Rp 1.234.567"; -5000 => "Rp -5.000".
func FormatRupiah(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatInt(int64(math.Round(v)), 10)
	if len(s) > 3 {
		var buf []byte
		count := 0
		for i := len(s) - 1; i >= 0; i-- {
			buf = append(buf, s[i])
			count++
			if count == 3 && i != 0 {
				buf = append(buf, '.')
				count = 0
			}
		}
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
		s = string(buf)
	}

	if neg {
		return "Rp -" + s
	}
	return "Rp " + s
}
