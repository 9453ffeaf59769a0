package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Trip groups an outbound chain of legs leaving home, the optional chain
// of legs coming back, and the stays at the destination in between.
// Origin and Destination are derived from the outbound endpoints.
type Trip struct {
	id          uuid.UUID
	origin      string
	destination string
	outbound    []Travel
	ret         []Travel
	stays       []Stay
}

// tripNamespace scopes the name-based trip IDs.
var tripNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/mesh-intelligence/itinerary/trip"))

// NewTrip builds a trip. Returns ErrEmptyOutbound if outbound is empty. ret
// and stays may be empty. The ID is a UUID v5 derived from the legs, so
// the same input always yields the same IDs.
func NewTrip(outbound, ret []Travel, stays []Stay) (Trip, error) {
	if len(outbound) == 0 {
		return Trip{}, ErrEmptyOutbound
	}
	return Trip{
		id:          tripID(outbound, ret),
		origin:      outbound[0].Origin(),
		destination: outbound[len(outbound)-1].Destination(),
		outbound:    slices.Clone(outbound),
		ret:         slices.Clone(ret),
		stays:       slices.Clone(stays),
	}, nil
}

// ID identifies the trip. It depends only on the outbound and return legs.
func (t Trip) ID() uuid.UUID { return t.id }

// Origin is the origin of the first outbound leg.
func (t Trip) Origin() string { return t.origin }

// Destination is the destination of the last outbound leg.
func (t Trip) Destination() string { return t.destination }

// Outbound returns a copy of the outbound legs in travel order.
func (t Trip) Outbound() []Travel { return slices.Clone(t.outbound) }

// Return returns a copy of the return legs; empty for a one-way trip.
func (t Trip) Return() []Travel { return slices.Clone(t.ret) }

// Stays returns a copy of the stays, in input order.
func (t Trip) Stays() []Stay { return slices.Clone(t.stays) }

// RoundTrip reports whether a return chain was found.
func (t Trip) RoundTrip() bool { return len(t.ret) > 0 }

// Segments lists every segment of the trip in display order: outbound
// legs, then stays, then return legs.
func (t Trip) Segments() []Segment {
	out := make([]Segment, 0, len(t.outbound)+len(t.stays)+len(t.ret))
	for _, leg := range t.outbound {
		out = append(out, TravelSegment(leg))
	}
	for _, s := range t.stays {
		out = append(out, StaySegment(s))
	}
	for _, leg := range t.ret {
		out = append(out, TravelSegment(leg))
	}
	return out
}

// String renders a "TRIP to <destination>" header followed by one line per
// segment in display order. Every line ends in a newline.
func (t Trip) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TRIP to %s\n", t.destination)
	for _, s := range t.Segments() {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// tripID hashes the legs of a trip into a UUID v5. A leg is claimed by at
// most one trip, so trips of one run only share an ID when the input
// repeats the same legs.
func tripID(outbound, ret []Travel) uuid.UUID {
	var b strings.Builder
	for _, leg := range outbound {
		writeLegKey(&b, leg)
	}
	b.WriteString("return\n")
	for _, leg := range ret {
		writeLegKey(&b, leg)
	}
	return uuid.NewSHA1(tripNamespace, []byte(b.String()))
}

func writeLegKey(b *strings.Builder, leg Travel) {
	fmt.Fprintf(b, "%s|%s|%s|%s|%s\n", strings.ToLower(leg.mode), leg.origin, leg.destination,
		leg.start.Format(DateTimeLayout), leg.end.Format(DateTimeLayout))
}
