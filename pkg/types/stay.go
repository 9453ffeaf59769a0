package types

import (
	"fmt"
	"time"
)

// Stay is a lodging interval at one location. From <= To is assumed but
// not checked.
type Stay struct {
	kind     string
	location string
	from     time.Time
	to       time.Time
}

// NewStay builds a stay; from and to are truncated to calendar dates.
func NewStay(kind, location string, from, to time.Time) Stay {
	return Stay{
		kind:     kind,
		location: location,
		from:     dateOf(from),
		to:       dateOf(to),
	}
}

// ParseStay builds a stay from two "2006-01-02" dates.
func ParseStay(kind, location, fromDate, toDate string) (Stay, error) {
	from, err := time.Parse(DateLayout, fromDate)
	if err != nil {
		return Stay{}, fmt.Errorf("parse from date: %w", err)
	}
	to, err := time.Parse(DateLayout, toDate)
	if err != nil {
		return Stay{}, fmt.Errorf("parse to date: %w", err)
	}
	return NewStay(kind, location, from, to), nil
}

// Kind is the lodging label, e.g. "hotel".
func (s Stay) Kind() string { return s.kind }

// Location is the location code of the stay.
func (s Stay) Location() string { return s.location }

// From is the first date of the stay.
func (s Stay) From() time.Time { return s.from }

// To is the last date of the stay.
func (s Stay) To() time.Time { return s.to }

// String renders the stay as "Hotel at BCN on 2023-01-05 to 2023-01-10".
func (s Stay) String() string {
	return fmt.Sprintf("%s at %s on %s to %s",
		capitalize(s.kind), s.location, s.from.Format(DateLayout), s.to.Format(DateLayout))
}
