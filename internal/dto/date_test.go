package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"plain date", "2024-03-15", want},
		{"rfc3339 utc", "2024-03-15T00:00:00.000Z", want},
		{"rfc3339 with offset", "2024-03-15T23:30:00-02:00", time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)},
		{"javascript date string", "Fri Mar 15 2024 00:00:00 GMT+0000 (Coordinated Universal Time)", want},
		{"javascript date string from query", "Fri Mar 15 2024 01:00:00 GMT 0100 (Central European Standard Time)", want},
		{"surrounding spaces", "  2024-03-15 ", want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-02-30", "15/03/2024"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}

func TestDate_JSON(t *testing.T) {
	var body struct {
		Date Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-02-29"}`), &body))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), body.Date.Time)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-02-29"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":12}`), &body))
}
