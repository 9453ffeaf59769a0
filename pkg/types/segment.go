package types

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Layouts for the naive local dates and clock times carried by segments.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

// Category discriminates the two segment variants.
type Category string

// Segment categories.
const (
	CategoryTravel Category = "travel"
	CategoryStay   Category = "stay"
)

// Segment is a tagged union of a Travel leg and a Stay record. Category
// names the populated payload; the other payload is the zero value.
type Segment struct {
	Category Category
	Travel   Travel
	Stay     Stay
}

// TravelSegment wraps a travel leg as a Segment.
func TravelSegment(t Travel) Segment {
	return Segment{Category: CategoryTravel, Travel: t}
}

// StaySegment wraps a stay record as a Segment.
func StaySegment(s Stay) Segment {
	return Segment{Category: CategoryStay, Stay: s}
}

// String renders the populated payload on one line.
func (s Segment) String() string {
	switch s.Category {
	case CategoryTravel:
		return s.Travel.String()
	case CategoryStay:
		return s.Stay.String()
	default:
		return ""
	}
}

// dateOf truncates t to its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// capitalize upper-cases the first letter and lower-cases the rest, so
// "FLIGHT" and "flight" both render as "Flight".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
