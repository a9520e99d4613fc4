package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinute(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"9", 0, false},
		{"night", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseMinute(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestFormatMinute(t *testing.T) {
	assert.Equal(t, "09:00", FormatMinute(540))
	assert.Equal(t, "00:05", FormatMinute(5))
	assert.Equal(t, "23:59", FormatMinute(1439))
}
