package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/tickfile/tick/internal/types"
)

// TimeFormat is the on-disk timestamp layout: RFC 3339 in UTC with
// second precision.
const TimeFormat = "2006-01-02T15:04:05Z07:00"

// Now returns the current time formatted for storage.
func Now() string {
	return FormatTime(time.Now())
}

// FormatTime renders a timestamp in the storage layout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// ParseTime converts a stored timestamp to a time.Time. Malformed input
// yields a types.ErrParse so callers can distinguish bad data from IO
// failures; bulk scans treat it as if the field were absent.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty timestamp", types.ErrParse)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", types.ErrParse, s)
	}
	return t, nil
}
