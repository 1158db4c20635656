package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Ledger and rule files have always stored amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	// DateLayout is the ISO calendar date format used for business dates.
	DateLayout = "2006-01-02"
	// TimestampLayout is the ISO instant format used for creation and run timestamps.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// MutationResult reports what an update or delete actually did.
// Callers decide whether NotFound is an error for them.
type MutationResult string

const (
	MutationUpdated   MutationResult = "updated"
	MutationNotFound  MutationResult = "not_found"
	MutationUnchanged MutationResult = "unchanged"
)

// Found reports whether the targeted entity existed.
func (r MutationResult) Found() bool {
	return r == MutationUpdated || r == MutationUnchanged
}

// NewTimestamp normalises t to the precision persisted in files.
func NewTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FormatTimestamp renders an instant the way it is stored on disk.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a stored instant.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseDate parses an ISO calendar date in loc. Full ISO instants are accepted too
// (older files stored them in date columns) and reduced to their calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return CivilDate(t.In(loc)), nil
}

// CivilDate truncates t to midnight of its calendar day in t's location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
