package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToDB(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "2025-03-01T12:30:45Z", timeToDB(ts))

	// Zoned times are normalized to UTC before storage.
	zone := time.FixedZone("CET", 3600)
	assert.Equal(t, "2025-03-01T11:30:45Z", timeToDB(time.Date(2025, 3, 1, 12, 30, 45, 0, zone)))
}

func TestTimePtrToDB(t *testing.T) {
	assert.Nil(t, timePtrToDB(nil))

	ts := time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, "2025-03-01T12:30:45Z", timePtrToDB(&ts))
}

func TestTimeFromDB(t *testing.T) {
	parsed, err := timeFromDB("2025-03-01T12:30:45Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC), parsed)

	_, err = timeFromDB("not-a-timestamp")
	assert.Error(t, err)
}

func TestTimeRoundTrip(t *testing.T) {
	original := time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC)

	parsed, err := timeFromDB(timeToDB(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}
