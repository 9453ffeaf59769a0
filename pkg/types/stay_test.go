package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStay(t *testing.T) {
	stay, err := ParseStay("Hotel", "BCN", "2023-01-05", "2023-01-10")
	require.NoError(t, err)

	assert.Equal(t, "Hotel", stay.Kind())
	assert.Equal(t, "BCN", stay.Location())
	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), stay.From())
	assert.Equal(t, time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), stay.To())
}

func TestParseStayRejectsBadDates(t *testing.T) {
	_, err := ParseStay("hotel", "BCN", "2023-01-05", "tomorrow")
	assert.Error(t, err)

	_, err = ParseStay("hotel", "BCN", "05/01/2023", "2023-01-10")
	assert.Error(t, err)
}

func TestNewStayTruncatesToDates(t *testing.T) {
	stay := NewStay("hotel", "MAD",
		time.Date(2023, 2, 15, 14, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 17, 11, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC), stay.From())
	assert.Equal(t, time.Date(2023, 2, 17, 0, 0, 0, 0, time.UTC), stay.To())
}

func TestStayString(t *testing.T) {
	stay, err := ParseStay("hotel", "BCN", "2023-01-05", "2023-01-10")
	require.NoError(t, err)
	assert.Equal(t, "Hotel at BCN on 2023-01-05 to 2023-01-10", stay.String())
}

func TestSegmentUnion(t *testing.T) {
	leg, err := ParseTravel("flight", "SVQ", "BCN", "2023-03-02", "06:40", "09:10")
	require.NoError(t, err)
	stay, err := ParseStay("hotel", "BCN", "2023-03-02", "2023-03-05")
	require.NoError(t, err)

	ts := TravelSegment(leg)
	assert.Equal(t, CategoryTravel, ts.Category)
	assert.Equal(t, leg, ts.Travel)
	assert.Equal(t, leg.String(), ts.String())

	ss := StaySegment(stay)
	assert.Equal(t, CategoryStay, ss.Category)
	assert.Equal(t, stay, ss.Stay)
	assert.Equal(t, stay.String(), ss.String())

	assert.Empty(t, Segment{}.String())
}
