package timeutil

import (
	"fmt"
	"time"
)

// WireLayout is the canonical wire representation for timestamps: the instant
// in UTC with exactly 7 fractional-second digits and a literal Z suffix,
// e.g. "2025-11-24T05:07:11.3895396Z". Every timestamp crossing the API
// boundary uses this format.
const WireLayout = "2006-01-02T15:04:05.0000000Z"

// FormatError reports an empty or unparsable timestamp string.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return "timeutil: empty timestamp"
	}
	return fmt.Sprintf("timeutil: cannot parse timestamp %q", e.Input)
}

// Format renders t in the canonical wire format, converting to UTC first.
func Format(t time.Time) string {
	return t.UTC().Format(WireLayout)
}

// FormatPtr is the nil-passthrough variant of Format.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// Parse accepts any RFC 3339 timestamp (with or without fractional seconds
// or a numeric zone offset) and normalizes it to UTC. It returns a
// *FormatError if the input is empty or unparsable.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &FormatError{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &FormatError{Input: s}
	}
	return t.UTC(), nil
}

// TryParse is the non-throwing variant of Parse.
func TryParse(s string) (time.Time, bool) {
	t, err := Parse(s)
	return t, err == nil
}
