// Package datefmt renders timestamps for the console: fixed-width local
// date-times, UTC timestamps and "time ago" phrases.
//
// Inputs may be strings, time.Time, metav1.Time or pgtype timestamps. None of
// the formatting functions fail; an unparsable input is replaced with a
// documented fallback and logged at debug level.
package datefmt

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jonboulle/clockwork"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/aliuygur/consoleui/internal/apperrs"
)

// DefaultPlaceholder is shown by FormatTimestamp when there is no timestamp.
const DefaultPlaceholder = "N/A"

// displayLayout is zero padded so every four-digit year renders as 23 characters.
const displayLayout = "2006-01-02 15:04:05.000"

var errAbsent = errors.New("no time value")

// Formatter formats times against a clock and a display location.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	clock       clockwork.Clock
	location    *time.Location
	placeholder string
	logger      *slog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the clock used for relative times.
func WithClock(c clockwork.Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithLocation sets the location treated as local time.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithPlaceholder sets the text FormatTimestamp returns for a missing value.
func WithPlaceholder(s string) Option {
	return func(f *Formatter) {
		f.placeholder = s
	}
}

// WithLogger sets the logger for parse failures. Without it slog.Default is used.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = l
	}
}

// New creates a Formatter using the real clock, time.Local and DefaultPlaceholder
// unless overridden.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		clock:       clockwork.NewRealClock(),
		location:    time.Local,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Formatter) log() *slog.Logger {
	if f.logger != nil {
		return f.logger
	}
	return slog.Default()
}

// Parse converts a date-like value into a time.Time. Absent values (nil, nil
// pointers, blank strings, zero times, invalid pgtype values) and unparsable
// values both yield an *apperrs.Error with code apperrs.CodeUnparsableTime.
func (f *Formatter) Parse(input any) (time.Time, error) {
	t, err := f.resolve(input)
	if err != nil {
		return time.Time{}, apperrs.UnparsableTime(input, err)
	}
	return t, nil
}

func (f *Formatter) resolve(input any) (time.Time, error) {
	switch v := input.(type) {
	case nil:
		return time.Time{}, errAbsent
	case string:
		return f.parseString(v)
	case time.Time:
		return nonZero(v)
	case *time.Time:
		if v == nil {
			return time.Time{}, errAbsent
		}
		return nonZero(*v)
	case metav1.Time:
		return nonZero(v.Time)
	case *metav1.Time:
		if v == nil {
			return time.Time{}, errAbsent
		}
		return nonZero(v.Time)
	case pgtype.Timestamptz:
		return fromPG(v.Time, v.Valid, v.InfinityModifier)
	case pgtype.Timestamp:
		return fromPG(v.Time, v.Valid, v.InfinityModifier)
	default:
		return time.Time{}, fmt.Errorf("unsupported time value of type %T", input)
	}
}

func nonZero(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, errAbsent
	}
	return t, nil
}

func fromPG(t time.Time, valid bool, mod pgtype.InfinityModifier) (time.Time, error) {
	if !valid {
		return time.Time{}, errAbsent
	}
	if mod != pgtype.Finite {
		return time.Time{}, fmt.Errorf("infinite timestamp %s", mod)
	}
	return t, nil
}

// isAbsent reports whether err came from a missing rather than a malformed value.
func isAbsent(err error) bool {
	return errors.Is(err, errAbsent)
}

// FormatDateTime renders input as "YYYY-MM-DD HH:mm:ss.mmm" in the formatter's
// location. An unparsable input is returned unchanged.
func (f *Formatter) FormatDateTime(input string) string {
	t, err := f.parseString(input)
	if err != nil {
		f.log().Debug("unparsable date-time", "input", input, "error", err)
		return input
	}
	return t.In(f.location).Format(displayLayout)
}

// FormatTimestamp renders input as a UTC "YYYY-MM-DD HH:mm:ss.mmm" string.
// A missing value yields the placeholder. An unparsable string is returned as
// is; any other unparsable value yields the placeholder.
func (f *Formatter) FormatTimestamp(input any) string {
	t, err := f.resolve(input)
	if err == nil {
		return t.UTC().Format(displayLayout)
	}
	if isAbsent(err) {
		return f.placeholder
	}
	f.log().Debug("unparsable timestamp", "input", input, "error", err)
	if s, ok := input.(string); ok {
		return s
	}
	return f.placeholder
}

// RelativeTime describes how long ago input was, using the largest whole unit:
// "2 days ago", "1 hour ago", "5 minutes ago", "1 second ago" or "just now".
// Unparsable input yields "". Future times are not special-cased and read as
// "just now".
func (f *Formatter) RelativeTime(input any) string {
	t, err := f.resolve(input)
	if err != nil {
		if !isAbsent(err) {
			f.log().Debug("unparsable relative time", "input", input, "error", err)
		}
		return ""
	}

	// Elapsed seconds from Unix instants; time.Duration tops out near 292 years.
	seconds := floorDiv(f.clock.Now().UnixMilli()-t.UnixMilli(), 1000)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days >= 1:
		return ago(days, "day")
	case hours >= 1:
		return ago(hours, "hour")
	case minutes >= 1:
		return ago(minutes, "minute")
	case seconds >= 1:
		return ago(seconds, "second")
	default:
		return "just now"
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ago(n int64, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

var std = New()

// Parse converts input with the default formatter.
func Parse(input any) (time.Time, error) {
	return std.Parse(input)
}

// FormatDateTime formats input in local time with the default formatter.
func FormatDateTime(input string) string {
	return std.FormatDateTime(input)
}

// FormatTimestamp formats input in UTC with the default formatter.
func FormatTimestamp(input any) string {
	return std.FormatTimestamp(input)
}

// RelativeTime describes input relative to now with the default formatter.
func RelativeTime(input any) string {
	return std.RelativeTime(input)
}

// Blank strings count as absent.
func (f *Formatter) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errAbsent
	}
	return parseLayouts(s, f.location)
}
