package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
)

var timeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// NormalizeTime canonicalizes "H:MM" or "HH:MM" to zero-padded "HH:MM" so that
// lexicographic comparison of two normalized times matches chronological order.
// The field name is only used in the error message.
func NormalizeTime(field, s string) (string, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("invalid time %q, expected HH:MM", s)}
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("hour %d out of range", h)}
	}
	if min > 59 {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("minute %d out of range", min)}
	}
	return fmt.Sprintf("%02d:%02d", h, min), nil
}

// NormalizeRange normalizes both ends and enforces start < end.
func NormalizeRange(start, end string) (string, string, error) {
	ns, err := NormalizeTime("start_time", start)
	if err != nil {
		return "", "", err
	}
	ne, err := NormalizeTime("end_time", end)
	if err != nil {
		return "", "", err
	}
	if ns >= ne {
		return "", "", &ValidationError{Field: "start_time", Reason: "must be before end_time"}
	}
	return ns, ne, nil
}
