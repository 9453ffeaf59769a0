// Package sqlite reads travel and stay segments from a SQLite database
// file. The database is opened read-only; the tool never writes to it.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// Source reads segments from the segments table of a SQLite file.
type Source struct {
	path   string
	logger *slog.Logger
}

// NewSource returns a Source for the database at path. The file is opened
// when Segments is called.
func NewSource(path string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{path: path, logger: logger}
}

// Segments returns every row of the segments table as a segment, in
// segment_id order. Rows of an unknown category are skipped. Returns
// types.ErrInputNotFound when the file does not exist and an error
// wrapping types.ErrMalformedRecord for a row that cannot be parsed.
func (s *Source) Segments(ctx context.Context) ([]types.Segment, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrInputNotFound, s.path)
		}
		return nil, fmt.Errorf("stat %s: %w", s.path, err)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(s.path))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectSegments)
	if err != nil {
		return nil, fmt.Errorf("querying segments: %w", err)
	}
	defer rows.Close()

	var segments []types.Segment
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.category, &r.kind,
			&r.origin, &r.destination, &r.date, &r.startTime, &r.endTime,
			&r.location, &r.fromDate, &r.toDate); err != nil {
			return nil, fmt.Errorf("scanning segment: %w", err)
		}
		seg, ok, err := r.segment()
		if err != nil {
			return nil, fmt.Errorf("%w: segment_id %d: %w", types.ErrMalformedRecord, r.id, err)
		}
		if !ok {
			s.logger.Debug("skipping row of unknown category", "segment_id", r.id, "category", r.category)
			continue
		}
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating segments: %w", err)
	}
	return segments, nil
}

// readOnlyDSN builds a file URI that opens path without write access.
func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Opaque: path, RawQuery: "mode=ro"}
	return u.String()
}

// row mirrors one record of the segments table.
type row struct {
	id          int64
	category    string
	kind        string
	origin      sql.NullString
	destination sql.NullString
	date        sql.NullString
	startTime   sql.NullString
	endTime     sql.NullString
	location    sql.NullString
	fromDate    sql.NullString
	toDate      sql.NullString
}

func (r row) segment() (types.Segment, bool, error) {
	switch types.Category(r.category) {
	case types.CategoryTravel:
		if r.origin.String == "" || r.destination.String == "" {
			return types.Segment{}, false, errors.New("travel row needs origin and destination")
		}
		leg, err := types.ParseTravel(r.kind, r.origin.String, r.destination.String,
			r.date.String, r.startTime.String, r.endTime.String)
		if err != nil {
			return types.Segment{}, false, err
		}
		return types.TravelSegment(leg), true, nil
	case types.CategoryStay:
		if r.location.String == "" {
			return types.Segment{}, false, errors.New("stay row needs a location")
		}
		stay, err := types.ParseStay(r.kind, r.location.String, r.fromDate.String, r.toDate.String)
		if err != nil {
			return types.Segment{}, false, err
		}
		return types.StaySegment(stay), true, nil
	default:
		return types.Segment{}, false, nil
	}
}
