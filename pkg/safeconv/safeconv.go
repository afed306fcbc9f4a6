// Package safeconv provides safe integer parsing for values read from
// external command output.
package safeconv

import "strconv"

// ParseInt parses a decimal string into an int. Returns def when the
// string is empty or malformed.
func ParseInt(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}

	return v
}

// ParseFloat parses a decimal string into a float64. Returns def when the
// string is empty or malformed.
func ParseFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}

	return v
}

// ParseSigned64 parses a decimal string into an int64, reinterpreting
// unsigned 64-bit wraparound values as negative. The smart battery
// controller reports discharge amperage as an unsigned two's complement
// value (e.g. 18446744073709551026 means -590).
func ParseSigned64(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return v, nil
	}

	u, uerr := strconv.ParseUint(s, 10, 64)
	if uerr != nil {
		return 0, uerr
	}

	return int64(u), nil
}
