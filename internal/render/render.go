// Package render writes trips as text, JSON, or YAML. Every format lists a
// trip's segments in the same order: outbound legs, stays, return legs.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Leg is the serialized form of a travel leg.
type Leg struct {
	Mode        string `json:"mode" yaml:"mode"`
	Origin      string `json:"origin" yaml:"origin"`
	Destination string `json:"destination" yaml:"destination"`
	Date        string `json:"date" yaml:"date"`
	Start       string `json:"start" yaml:"start"`
	End         string `json:"end" yaml:"end"`
}

// Stay is the serialized form of a stay.
type Stay struct {
	Kind     string `json:"kind" yaml:"kind"`
	Location string `json:"location" yaml:"location"`
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
}

// Trip is the serialized form of a trip.
type Trip struct {
	ID          string `json:"id" yaml:"id"`
	Origin      string `json:"origin" yaml:"origin"`
	Destination string `json:"destination" yaml:"destination"`
	RoundTrip   bool   `json:"round_trip" yaml:"round_trip"`
	Outbound    []Leg  `json:"outbound" yaml:"outbound"`
	Stays       []Stay `json:"stays" yaml:"stays"`
	Return      []Leg  `json:"return" yaml:"return"`
}

// Write renders trips in the named format. Returns types.ErrFormatUnknown
// for an unsupported format.
func Write(w io.Writer, format string, trips []types.Trip) error {
	switch format {
	case types.FormatText:
		return Text(w, trips)
	case types.FormatJSON:
		return JSON(w, trips)
	case types.FormatYAML:
		return YAML(w, trips)
	default:
		return fmt.Errorf("%w: %q", types.ErrFormatUnknown, format)
	}
}

// Text writes each trip as a "TRIP to <destination>" header and one line
// per segment, with a blank line after every trip.
func Text(w io.Writer, trips []types.Trip) error {
	for _, trip := range trips {
		if _, err := fmt.Fprintln(w, trip.String()); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes trips as an indented JSON array.
func JSON(w io.Writer, trips []types.Trip) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Views(trips))
}

// YAML writes trips as a YAML sequence.
func YAML(w io.Writer, trips []types.Trip) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Views(trips)); err != nil {
		return err
	}
	return enc.Close()
}

// Views converts trips to their serialized form. Slices are never nil so
// empty lists encode as [] rather than null.
func Views(trips []types.Trip) []Trip {
	out := make([]Trip, 0, len(trips))
	for _, t := range trips {
		view := Trip{
			ID:          t.ID().String(),
			Origin:      t.Origin(),
			Destination: t.Destination(),
			RoundTrip:   t.RoundTrip(),
			Outbound:    legs(t.Outbound()),
			Stays:       make([]Stay, 0, len(t.Stays())),
			Return:      legs(t.Return()),
		}
		for _, s := range t.Stays() {
			view.Stays = append(view.Stays, Stay{
				Kind:     s.Kind(),
				Location: s.Location(),
				From:     s.From().Format(types.DateLayout),
				To:       s.To().Format(types.DateLayout),
			})
		}
		out = append(out, view)
	}
	return out
}

func legs(in []types.Travel) []Leg {
	out := make([]Leg, 0, len(in))
	for _, l := range in {
		out = append(out, Leg{
			Mode:        l.Mode(),
			Origin:      l.Origin(),
			Destination: l.Destination(),
			Date:        l.Date().Format(types.DateLayout),
			Start:       l.Start().Format(types.DateTimeLayout),
			End:         l.End().Format(types.DateTimeLayout),
		})
	}
	return out
}
