package records

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/itinerary/pkg/types"
)

func countCategories(segments []types.Segment) (travel, stay int) {
	for _, s := range segments {
		switch s.Category {
		case types.CategoryTravel:
			travel++
		case types.CategoryStay:
			stay++
		}
	}
	return travel, stay
}

func TestOpenTextReservationLog(t *testing.T) {
	segments, err := OpenText(filepath.Join("testdata", "input.txt")).Segments(context.Background())
	require.NoError(t, err)

	require.Len(t, segments, 8)
	travel, stay := countCategories(segments)
	assert.Equal(t, 6, travel)
	assert.Equal(t, 2, stay)

	first := segments[0]
	require.Equal(t, types.CategoryTravel, first.Category)
	assert.Equal(t, "Flight", first.Travel.Mode())
	assert.Equal(t, "SVQ", first.Travel.Origin())
	assert.Equal(t, "BCN", first.Travel.Destination())
	assert.Equal(t, "2023-03-02 06:40", first.Travel.Start().Format(types.DateTimeLayout))
	assert.Equal(t, "2023-03-02 09:10", first.Travel.End().Format(types.DateTimeLayout))

	second := segments[1]
	require.Equal(t, types.CategoryStay, second.Category)
	assert.Equal(t, "Hotel", second.Stay.Kind())
	assert.Equal(t, "BCN", second.Stay.Location())
	assert.Equal(t, "2023-01-05", second.Stay.From().Format(types.DateLayout))
	assert.Equal(t, "2023-01-10", second.Stay.To().Format(types.DateLayout))
}

func TestTextSkipsUnknownKindsAndOtherLines(t *testing.T) {
	input := strings.Join([]string{
		"RESERVATION",
		"SEGMENT: Bus SVQ 2023-03-02 06:40 -> CAD 09:10",
		"SEGMENT:",
		"Flight SVQ 2023-03-02 06:40 -> BCN 09:10",
		"SEGMENT: FLIGHT SVQ 2023-03-02 06:40 -> BCN 09:10",
	}, "\n")

	segments, err := NewText(strings.NewReader(input)).Segments(context.Background())
	require.NoError(t, err)

	require.Len(t, segments, 1)
	assert.Equal(t, "FLIGHT", segments[0].Travel.Mode())
}

func TestTextWithKinds(t *testing.T) {
	input := "SEGMENT: Bus SVQ 2023-03-02 06:40 -> CAD 09:10\n" +
		"SEGMENT: Flight SVQ 2023-03-02 06:40 -> BCN 09:10\n" +
		"SEGMENT: Apartment CAD 2023-03-02 -> 2023-03-04\n"

	segments, err := NewText(strings.NewReader(input),
		WithKinds([]string{"Bus"}, []string{"apartment"}),
	).Segments(context.Background())
	require.NoError(t, err)

	require.Len(t, segments, 2)
	assert.Equal(t, "CAD", segments[0].Travel.Destination())
	assert.Equal(t, "CAD", segments[1].Stay.Location())
}

func TestTextMalformedRecord(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "travel with missing arrival", input: "SEGMENT: Flight SVQ 2023-03-02 06:40 -> BCN"},
		{name: "travel with bad date", input: "SEGMENT: Flight SVQ 2023-02-30 06:40 -> BCN 09:10"},
		{name: "stay with extra field", input: "SEGMENT: Hotel BCN 2023-01-05 -> 2023-01-10 late"},
		{name: "stay with bad date", input: "SEGMENT: Hotel BCN 2023-01-05 -> soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewText(strings.NewReader("RESERVATION\n" + tt.input)).Segments(context.Background())
			require.ErrorIs(t, err, types.ErrMalformedRecord)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestOpenTextMissingFile(t *testing.T) {
	_, err := OpenText(filepath.Join(t.TempDir(), "missing.txt")).Segments(context.Background())
	assert.Error(t, err)
}

func TestTextCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewText(strings.NewReader("")).Segments(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen(t *testing.T) {
	src, err := Open(types.SourceText, "input.txt")
	require.NoError(t, err)
	assert.IsType(t, &Text{}, src)

	src, err = Open(types.SourceJSONL, "input.jsonl")
	require.NoError(t, err)
	assert.IsType(t, &JSONL{}, src)

	_, err = Open("csv", "input.csv")
	assert.ErrorIs(t, err, types.ErrSourceUnknown)
}

func TestTextReadErrorWinsOverTruncatedLine(t *testing.T) {
	errCut := errors.New("body cut off")
	// The read fails part way through the second segment line.
	input := io.MultiReader(
		strings.NewReader("SEGMENT: Flight SVQ 2023-03-02 06:40 -> BCN 09:10\nSEGMENT: Flight BCN"),
		failingReader{err: errCut},
	)

	_, err := NewText(input).Segments(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errCut)
	assert.NotErrorIs(t, err, types.ErrMalformedRecord)
}

func TestTextIndentedSegmentLine(t *testing.T) {
	segments, err := NewText(strings.NewReader("   SEGMENT: Hotel BCN 2023-01-05 -> 2023-01-10\n")).Segments(context.Background())
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "BCN", segments[0].Stay.Location())
}

// failingReader fails every read with err.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
