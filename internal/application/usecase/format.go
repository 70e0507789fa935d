// internal/application/usecase/format.go
package usecase

import (
	"math"
	"strconv"
	"strings"
)

// FormatBigNumber normalizes a user-supplied numeric string for the
// chain: the floor of the parsed value rendered as a plain decimal
// string ("1000.00" -> "1000"). Empty input stays empty; anything
// unparsable (or non-finite) becomes "0" so a bad value fails on chain
// validation rather than crashing the request.
func FormatBigNumber(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return strconv.FormatFloat(math.Floor(f), 'f', -1, 64)
}
