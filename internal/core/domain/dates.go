package domain

import (
	"strings"
	"time"
)

const (
	// DateLayout is the canonical calendar date format stored on sales and purchases.
	DateLayout = "2006-01-02"
	// MonthLayout is the bucket key used by monthly rollups.
	MonthLayout = "2006-01"
)

// genericDateLayouts are tried, in order, when a value has no strict YYYY-MM-DD prefix.
var genericDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 January 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// NormalizeDate turns a stored or submitted date into a calendar day in loc.
//
// Fallback order:
//  1. a strict YYYY-MM-DD prefix ("2024-07-15", "2024-07-15T10:00:00Z") is taken as-is;
//  2. each layout in genericDateLayouts; values carrying their own offset are
//     converted into loc before the day is taken.
//
// The boolean is false when nothing matched.
func NormalizeDate(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if len(raw) >= len(DateLayout) {
		if day, err := time.ParseInLocation(DateLayout, raw[:len(DateLayout)], loc); err == nil {
			return day, true
		}
	}
	for _, layout := range genericDateLayouts {
		parsed, err := time.ParseInLocation(layout, raw, loc)
		if err != nil {
			continue
		}
		parsed = parsed.In(loc)
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc), true
	}
	return time.Time{}, false
}

// Calendar pins every "today", month and year comparison to one time zone.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar returns a Calendar in loc using the wall clock.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc, now: time.Now}
}

// WithClock returns a copy of c that reads the current time from now.
func (c Calendar) WithClock(now func() time.Time) Calendar {
	c.now = now
	return c
}

// Location returns the canonical zone.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Now returns the current instant in the canonical zone.
func (c Calendar) Now() time.Time {
	now := c.now
	if now == nil {
		now = time.Now
	}
	return now().In(c.Location())
}

// Today returns the current calendar date as YYYY-MM-DD.
func (c Calendar) Today() string {
	return c.Now().Format(DateLayout)
}

// Normalize parses raw with NormalizeDate in the canonical zone.
func (c Calendar) Normalize(raw string) (time.Time, bool) {
	return NormalizeDate(raw, c.Location())
}

// Canonical returns raw rewritten as YYYY-MM-DD, or false when it cannot be parsed.
func (c Calendar) Canonical(raw string) (string, bool) {
	day, ok := c.Normalize(raw)
	if !ok {
		return "", false
	}
	return day.Format(DateLayout), true
}
