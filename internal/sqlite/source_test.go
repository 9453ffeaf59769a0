package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// seedDB creates a segments database in a temp directory and runs each
// insert statement against it.
func seedDB(t *testing.T, inserts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segments.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(Schema)
	require.NoError(t, err)
	for _, stmt := range inserts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

const (
	insertOutbound = `INSERT INTO segments (category, kind, origin, destination, date, start_time, end_time)
VALUES ('travel', 'flight', 'SVQ', 'BCN', '2023-03-02', '20:40', '01:10')`
	insertStay = `INSERT INTO segments (category, kind, location, from_date, to_date)
VALUES ('stay', 'hotel', 'BCN', '2023-03-03', '2023-03-07')`
	insertReturn = `INSERT INTO segments (category, kind, origin, destination, date, start_time, end_time)
VALUES ('travel', 'train', 'BCN', 'SVQ', '2023-03-07', '10:00', '15:30')`
)

func TestSourceSegments(t *testing.T) {
	path := seedDB(t, insertOutbound, insertStay, insertReturn,
		`INSERT INTO segments (category, kind, location) VALUES ('car', 'rental', 'BCN')`)

	segments, err := NewSource(path, nil).Segments(context.Background())
	require.NoError(t, err)

	require.Len(t, segments, 3)

	require.Equal(t, types.CategoryTravel, segments[0].Category)
	assert.Equal(t, "flight", segments[0].Travel.Mode())
	assert.Equal(t, "2023-03-03 01:10", segments[0].Travel.End().Format(types.DateTimeLayout))

	require.Equal(t, types.CategoryStay, segments[1].Category)
	assert.Equal(t, "BCN", segments[1].Stay.Location())
	assert.Equal(t, "2023-03-07", segments[1].Stay.To().Format(types.DateLayout))

	require.Equal(t, types.CategoryTravel, segments[2].Category)
	assert.Equal(t, "SVQ", segments[2].Travel.Destination())
}

func TestSourceMissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.db"), nil).Segments(context.Background())
	assert.ErrorIs(t, err, types.ErrInputNotFound)
}

func TestSourceMalformedRow(t *testing.T) {
	tests := []struct {
		name   string
		insert string
	}{
		{
			name: "travel without destination",
			insert: `INSERT INTO segments (category, kind, origin, date, start_time, end_time)
VALUES ('travel', 'flight', 'SVQ', '2023-03-02', '06:40', '09:10')`,
		},
		{
			name: "travel with bad time",
			insert: `INSERT INTO segments (category, kind, origin, destination, date, start_time, end_time)
VALUES ('travel', 'flight', 'SVQ', 'BCN', '2023-03-02', '6', '09:10')`,
		},
		{
			name:   "stay without dates",
			insert: `INSERT INTO segments (category, kind, location) VALUES ('stay', 'hotel', 'BCN')`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := seedDB(t, insertOutbound, tt.insert)

			_, err := NewSource(path, nil).Segments(context.Background())
			require.ErrorIs(t, err, types.ErrMalformedRecord)
			assert.Contains(t, err.Error(), "segment_id 2")
		})
	}
}

func TestSourceWithoutSegmentsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewSource(path, nil).Segments(context.Background())
	assert.Error(t, err)
}

func TestSourceDoesNotWrite(t *testing.T) {
	path := seedDB(t, insertOutbound)

	db, err := sql.Open("sqlite", readOnlyDSN(path))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(insertStay)
	assert.Error(t, err, "read-only connection must reject writes")
}

func TestReadOnlyDSN(t *testing.T) {
	assert.Equal(t, "file:/data/segments.db?mode=ro", readOnlyDSN("/data/segments.db"))
}
