package records

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// SegmentPrefix marks the lines of a reservation log that carry a segment.
const SegmentPrefix = "SEGMENT:"

// arrow separates the departure and arrival halves of a segment line.
const arrow = "->"

// Text reads the plain-text reservation log:
//
//	RESERVATION
//	SEGMENT: Flight SVQ 2023-03-02 06:40 -> BCN 09:10
//	SEGMENT: Hotel BCN 2023-01-05 -> 2023-01-10
//
// Lines without the SEGMENT: prefix and segments whose keyword is not a
// known kind are ignored.
type Text struct {
	open readerFunc
	name string
	opts options
}

// NewText reads a reservation log from r. r is consumed by the first call
// to Segments.
func NewText(r io.Reader, opts ...Option) *Text {
	return &Text{open: staticReader(r), name: "input", opts: newOptions(opts)}
}

// OpenText reads the reservation log stored at path.
func OpenText(path string, opts ...Option) *Text {
	return &Text{open: fileReader(path), name: path, opts: newOptions(opts)}
}

// Segments parses every segment line in input order. A line with a known
// keyword but the wrong shape yields an error wrapping
// types.ErrMalformedRecord.
func (t *Text) Segments(ctx context.Context) ([]types.Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := t.open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", t.name, err)
	}
	defer rc.Close()

	// Read everything before parsing so a failed read, such as a body cut
	// off mid-line, is reported as such rather than as a malformed record.
	type segmentLine struct {
		no   int
		rest string
	}
	var lines []segmentLine
	scanner := bufio.NewScanner(rc)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, SegmentPrefix); ok {
			lines = append(lines, segmentLine{no: lineNo, rest: rest})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", t.name, err)
	}

	var segments []types.Segment
	for _, l := range lines {
		seg, ok, err := t.parseLine(l.rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", types.ErrMalformedRecord, t.name, l.no, err)
		}
		if !ok {
			t.opts.logger.Debug("skipping segment of unknown kind", "source", t.name, "line", l.no)
			continue
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// parseLine turns the text after SEGMENT: into a segment. ok is false when
// the keyword is not a known kind.
func (t *Text) parseLine(rest string) (types.Segment, bool, error) {
	var tokens []string
	for _, f := range strings.Fields(rest) {
		if f != arrow {
			tokens = append(tokens, f)
		}
	}
	if len(tokens) == 0 {
		return types.Segment{}, false, nil
	}

	category, ok := t.opts.category(tokens[0])
	if !ok {
		return types.Segment{}, false, nil
	}

	switch category {
	case types.CategoryTravel:
		// kind origin date start destination end
		if len(tokens) != 6 {
			return types.Segment{}, false, fmt.Errorf("travel segment needs 6 fields, got %d", len(tokens))
		}
		leg, err := types.ParseTravel(tokens[0], tokens[1], tokens[4], tokens[2], tokens[3], tokens[5])
		if err != nil {
			return types.Segment{}, false, err
		}
		return types.TravelSegment(leg), true, nil
	default:
		// kind location from to
		if len(tokens) != 4 {
			return types.Segment{}, false, fmt.Errorf("stay segment needs 4 fields, got %d", len(tokens))
		}
		stay, err := types.ParseStay(tokens[0], tokens[1], tokens[2], tokens[3])
		if err != nil {
			return types.Segment{}, false, err
		}
		return types.StaySegment(stay), true, nil
	}
}
