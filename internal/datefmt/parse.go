package datefmt

import (
	"fmt"
	"time"
)

// Layouts that carry their own zone or offset.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z0700",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RubyDate,
	time.UnixDate,
}

// Layouts without a zone; read in the display location. Fractional seconds
// are accepted after the seconds field even though the layouts omit them.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"2 January 2006",
	"Mon Jan 02 2006 15:04:05",
	time.ANSIC,
}

// Date-only ISO strings are midnight UTC, not local midnight.
const dateOnlyLayout = "2006-01-02"

func parseLayouts(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("no known layout matches %q", s)
}
