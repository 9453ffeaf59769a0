// Package grouping stitches travel legs and stays into trips anchored at a
// home location.
//
// Legs are resolved greedily: trips are built in chronological order of
// their first leg, and each chain takes the earliest leg that connects.
// A leg claimed by one trip is never offered to another. Stays are matched
// by location and date and are never claimed, so one stay can appear in
// several trips.
package grouping

import (
	"log/slog"
	"slices"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Grouper builds trips for one home location. It keeps no state between
// calls to Trips.
type Grouper struct {
	home   string
	logger *slog.Logger
}

// Option configures a Grouper.
type Option func(*Grouper)

// WithLogger sets the logger used for debug output. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Grouper) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a Grouper for home. home must be non-empty; callers check
// this through types.Config.Validate.
func New(home string, opts ...Option) *Grouper {
	g := &Grouper{home: home, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BuildTrips groups segments into trips starting at home.
func BuildTrips(segments []types.Segment, home string) []types.Trip {
	return New(home).Trips(segments)
}

// Trips returns one trip per leg departing from home, in chronological
// order of those legs. The result is empty when no leg leaves home.
func (g *Grouper) Trips(segments []types.Segment) []types.Trip {
	legs, stays := classify(segments)
	starters, rest := partition(legs, g.home)
	if len(starters) == 0 {
		g.logger.Debug("no legs leave home", "home", g.home, "legs", len(legs))
		return nil
	}

	p := newPool(rest)
	trips := make([]types.Trip, 0, len(starters))
	for _, start := range starters {
		outbound := p.chain(start)
		arrival := outbound[len(outbound)-1]

		var ret []types.Travel
		if i := p.departingFrom(arrival.Destination()); i >= 0 {
			ret = p.chain(p.take(i))
		}

		trip, err := types.NewTrip(outbound, ret, selectStays(stays, arrival, ret))
		if err != nil {
			g.logger.Error("build trip", "origin", start.Origin(), "error", err)
			continue
		}
		g.logger.Debug("trip stitched",
			"destination", trip.Destination(),
			"outbound_legs", len(outbound),
			"return_legs", len(ret),
			"stays", len(trip.Stays()),
		)
		trips = append(trips, trip)
	}

	g.logger.Debug("trips built", "home", g.home, "trips", len(trips), "unclaimed_legs", p.len())
	return trips
}

// classify splits segments into travel legs sorted by departure and stays
// in input order. The sort is stable so legs departing at the same moment
// keep their input order.
func classify(segments []types.Segment) ([]types.Travel, []types.Stay) {
	var legs []types.Travel
	var stays []types.Stay
	for _, s := range segments {
		switch s.Category {
		case types.CategoryTravel:
			legs = append(legs, s.Travel)
		case types.CategoryStay:
			stays = append(stays, s.Stay)
		}
	}
	slices.SortStableFunc(legs, func(a, b types.Travel) int {
		return a.Start().Compare(b.Start())
	})
	return legs, stays
}

// partition splits legs into those leaving home and the rest, keeping
// chronological order within each group.
func partition(legs []types.Travel, home string) (starters, rest []types.Travel) {
	for _, leg := range legs {
		if leg.Origin() == home {
			starters = append(starters, leg)
		} else {
			rest = append(rest, leg)
		}
	}
	return starters, rest
}

// selectStays returns the stays at arrival's destination that begin on or
// after arrival's date and, when there is a return chain, end on or before
// the date of its first leg.
func selectStays(stays []types.Stay, arrival types.Travel, ret []types.Travel) []types.Stay {
	var out []types.Stay
	for _, s := range stays {
		if s.Location() != arrival.Destination() || s.From().Before(arrival.Date()) {
			continue
		}
		if len(ret) > 0 && s.To().After(ret[0].Date()) {
			continue
		}
		out = append(out, s)
	}
	return out
}
