package grouping

import (
	"slices"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// pool holds the travel legs of one run that no trip has claimed yet, in
// chronological order. Legs leave the pool by index and never return.
type pool struct {
	legs []types.Travel
}

func newPool(legs []types.Travel) *pool {
	return &pool{legs: slices.Clone(legs)}
}

func (p *pool) len() int { return len(p.legs) }

// take removes and returns the leg at index i, keeping the order of the
// remaining legs.
func (p *pool) take(i int) types.Travel {
	leg := p.legs[i]
	p.legs = slices.Delete(p.legs, i, i+1)
	return leg
}

// next returns the index of the first leg that continues tail, or -1.
func (p *pool) next(tail types.Travel) int {
	return slices.IndexFunc(p.legs, func(candidate types.Travel) bool {
		return connects(tail, candidate)
	})
}

// departingFrom returns the index of the first leg leaving location, or -1.
func (p *pool) departingFrom(location string) int {
	return slices.IndexFunc(p.legs, func(candidate types.Travel) bool {
		return candidate.Origin() == location
	})
}

// chain walks forward from start, each step claiming the first leg in the
// pool that connects to the current tail. start itself must already be out
// of the pool. The returned path always begins with start.
func (p *pool) chain(start types.Travel) []types.Travel {
	path := []types.Travel{start}
	for {
		i := p.next(path[len(path)-1])
		if i < 0 {
			return path
		}
		path = append(path, p.take(i))
	}
}

// connects reports whether next can follow tail in the same chain: it
// leaves from where tail arrives, does not head straight back to tail's
// origin, and departs after tail arrives but no later than one calendar
// day after.
func connects(tail, next types.Travel) bool {
	return next.Origin() == tail.Destination() &&
		next.Destination() != tail.Origin() &&
		tail.End().Before(next.Start()) &&
		!next.Start().After(tail.End().AddDate(0, 0, 1))
}
