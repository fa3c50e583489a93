package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		d, err := ParseDate("2025-03-01")
		require.NoError(t, err)
		assert.Equal(t, NewDate(2025, time.March, 1), d)
		assert.Equal(t, "2025-03-01", d.String())
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, err := ParseDate("03/01/2025")
		assert.Error(t, err)
	})
}

func TestDate_Arithmetic(t *testing.T) {
	start := NewDate(2025, time.February, 27)
	end := start.AddDays(3)

	assert.Equal(t, "2025-03-02", end.String())
	assert.Equal(t, 3, end.DaysSince(start))
	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))
	assert.True(t, start.Equal(NewDate(2025, time.February, 27)))
}

func TestDate_JSON(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		in := struct {
			Start Date `json:"start"`
		}{Start: NewDate(2025, time.May, 5)}

		data, err := json.Marshal(in)
		require.NoError(t, err)
		assert.JSONEq(t, `{"start":"2025-05-05"}`, string(data))

		var out struct {
			Start Date `json:"start"`
		}
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in.Start, out.Start)
	})

	t.Run("RejectsTimestamps", func(t *testing.T) {
		var d Date
		err := json.Unmarshal([]byte(`"2025-05-05T10:00:00Z"`), &d)
		assert.Error(t, err)
	})
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.FixedZone("", 0))))
	assert.Equal(t, NewDate(2025, time.June, 1), d)

	require.NoError(t, d.Scan([]byte("2025-06-02")))
	assert.Equal(t, NewDate(2025, time.June, 2), d)

	require.NoError(t, d.Scan("2025-06-03T00:00:00Z"))
	assert.Equal(t, NewDate(2025, time.June, 3), d)

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2025, time.June, 4).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-04", v)
}
