package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	for _, bad := range []string{"", "9:0:0", "25:00", "09:60", "9am", "09-00"} {
		_, err := NewTimeStringFromString(bad)
		assert.Error(t, err, "value %q must be rejected", bad)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("11:00"))
	assert.True(t, TimeString("15:00").IsAfter("13:00"))
	assert.False(t, TimeString("bogus").IsBefore("11:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), got)
}

func TestTimeString_JSON(t *testing.T) {
	data, err := json.Marshal(TimeString("13:00"))
	require.NoError(t, err)
	assert.Equal(t, `"13:00"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"15:00"`), &ts))
	assert.Equal(t, TimeString("15:00"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит как "09:00:00"
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2030, 5, 1, 11, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:00"), ts)

	require.NoError(t, ts.Scan([]byte("13:00")))
	assert.Equal(t, TimeString("13:00"), ts)

	assert.Error(t, ts.Scan(42))
}
