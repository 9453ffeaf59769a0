package records

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// jsonRecord is one line of a JSONL export. Travel records use mode,
// origin, destination, date, start_time and end_time; stay records use
// kind, location, from_date and to_date.
type jsonRecord struct {
	Category    string `json:"category"`
	Mode        string `json:"mode"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Kind        string `json:"kind"`
	Location    string `json:"location"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
}

var errMissingField = errors.New("missing required field")

// JSONL reads segments from JSON Lines. Blank lines, lines that are not
// valid JSON, and records of an unknown category are skipped. Unknown
// fields are ignored.
type JSONL struct {
	open readerFunc
	name string
	opts options
}

// NewJSONL reads JSON Lines from r. r is consumed by the first call to
// Segments.
func NewJSONL(r io.Reader, opts ...Option) *JSONL {
	return &JSONL{open: staticReader(r), name: "input", opts: newOptions(opts)}
}

// OpenJSONL reads the JSON Lines file stored at path.
func OpenJSONL(path string, opts ...Option) *JSONL {
	return &JSONL{open: fileReader(path), name: path, opts: newOptions(opts)}
}

// Segments decodes every record in input order. A well-formed JSON object
// that cannot be turned into a segment yields an error wrapping
// types.ErrMalformedRecord.
func (j *JSONL) Segments(ctx context.Context) ([]types.Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := j.open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", j.name, err)
	}
	defer rc.Close()

	var segments []types.Segment
	scanner := bufio.NewScanner(rc)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec jsonRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			j.opts.logger.Warn("skipping malformed JSONL line", "source", j.name, "line", lineNo)
			continue
		}
		seg, ok, err := rec.segment()
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", types.ErrMalformedRecord, j.name, lineNo, err)
		}
		if !ok {
			j.opts.logger.Debug("skipping record of unknown category", "source", j.name, "line", lineNo, "category", rec.Category)
			continue
		}
		segments = append(segments, seg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", j.name, err)
	}
	return segments, nil
}

func (r jsonRecord) segment() (types.Segment, bool, error) {
	switch types.Category(strings.ToLower(strings.TrimSpace(r.Category))) {
	case types.CategoryTravel:
		if r.Origin == "" || r.Destination == "" {
			return types.Segment{}, false, fmt.Errorf("%w: origin and destination", errMissingField)
		}
		leg, err := types.ParseTravel(r.Mode, r.Origin, r.Destination, r.Date, r.StartTime, r.EndTime)
		if err != nil {
			return types.Segment{}, false, err
		}
		return types.TravelSegment(leg), true, nil
	case types.CategoryStay:
		if r.Location == "" {
			return types.Segment{}, false, fmt.Errorf("%w: location", errMissingField)
		}
		stay, err := types.ParseStay(r.Kind, r.Location, r.FromDate, r.ToDate)
		if err != nil {
			return types.Segment{}, false, err
		}
		return types.StaySegment(stay), true, nil
	default:
		return types.Segment{}, false, nil
	}
}
