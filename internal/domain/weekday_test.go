package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{"2024-01-01", Monday},
		{"2024-02-29", Thursday},
		{"2024-03-10", Sunday},
		{"2025-12-27", Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			date, err := time.Parse(DateFormat, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, WeekdayOf(date))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("Friday")
	require.NoError(t, err)
	assert.Equal(t, Friday, day)

	for _, bad := range []string{"friday", "Fri", "FRIDAY", ""} {
		_, err := ParseWeekday(bad)
		assert.ErrorIs(t, err, ErrInvalidWeekday, bad)
	}
}
