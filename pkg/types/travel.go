package types

import (
	"fmt"
	"time"
)

// Travel is one point-to-point journey leg. Fields are fixed at
// construction; use NewTravel or ParseTravel.
type Travel struct {
	mode        string
	origin      string
	destination string
	date        time.Time
	start       time.Time
	end         time.Time
}

// NewTravel builds a leg departing at start and arriving at end. Both are
// naive local times on the departure date; when end is earlier than start
// the arrival is taken to be on the following day. Journeys spanning more
// than one midnight cannot be represented.
func NewTravel(mode, origin, destination string, start, end time.Time) Travel {
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return Travel{
		mode:        mode,
		origin:      origin,
		destination: destination,
		date:        dateOf(start),
		start:       start,
		end:         end,
	}
}

// ParseTravel builds a leg from a departure date ("2006-01-02") and two
// clock times ("15:04").
func ParseTravel(mode, origin, destination, date, startTime, endTime string) (Travel, error) {
	start, err := time.Parse(DateTimeLayout, date+" "+startTime)
	if err != nil {
		return Travel{}, fmt.Errorf("parse departure: %w", err)
	}
	end, err := time.Parse(DateTimeLayout, date+" "+endTime)
	if err != nil {
		return Travel{}, fmt.Errorf("parse arrival: %w", err)
	}
	return NewTravel(mode, origin, destination, start, end), nil
}

// Mode is the free-form transport label, e.g. "flight" or "train".
func (t Travel) Mode() string { return t.mode }

// Origin is the departure location code.
func (t Travel) Origin() string { return t.origin }

// Destination is the arrival location code.
func (t Travel) Destination() string { return t.destination }

// Date is the calendar date of departure.
func (t Travel) Date() time.Time { return t.date }

// Start is the departure datetime.
func (t Travel) Start() time.Time { return t.start }

// End is the arrival datetime, never before Start.
func (t Travel) End() time.Time { return t.end }

// String renders the leg as
// "Flight from SVQ to BCN at 2023-03-02 06:40 to 09:10". The arrival
// carries its date when it falls on a different day than the departure.
func (t Travel) String() string {
	endLayout := TimeLayout
	if !dateOf(t.end).Equal(dateOf(t.start)) {
		endLayout = DateTimeLayout
	}
	return fmt.Sprintf("%s from %s to %s at %s to %s",
		capitalize(t.mode), t.origin, t.destination,
		t.start.Format(DateTimeLayout), t.end.Format(endLayout))
}
