package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, "2024-03-01", d.Next().String())

	for _, bad := range []string{"", "2023-02-29", "2024/01/01", "2024-1-1", "2024-01-01T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOfUsesUTCDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	ts := time.Date(2024, 1, 6, 3, 0, 0, 0, jakarta)
	assert.Equal(t, "2024-01-05", DateOf(ts).String())
}

func TestDateJSON(t *testing.T) {
	var point MoodPoint
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-05","mood":"good"}`), &point))
	assert.Equal(t, MoodGood, point.Mood)

	out, err := json.Marshal(point)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-05","mood":"good"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"05-01-2024"}`), &point))
}

func TestMoodValid(t *testing.T) {
	for _, m := range Moods {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, Mood("sangat_baik").Valid())
	assert.False(t, Mood("").Valid())
}
