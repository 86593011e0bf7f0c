package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ISO date", "2024-02-29", false},
		{"full timestamp", "2024-02-29 18:30:00", false},
		{"RFC3339", "2024-02-29T18:30:00Z", false},
		{"whitespace tolerated", "  2024-02-29  ", false},
		{"empty", "", true},
		{"garbage", "not-a-date", true},
		{"european format rejected", "29.02.2024", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, "2024-02-29", ToISODate(EndOfMonth(2024, time.February)))
	assert.Equal(t, "2023-02-28", ToISODate(EndOfMonth(2023, time.February)))
	assert.Equal(t, "2024-12-31", ToISODate(EndOfMonth(2024, time.December)))
}

func TestCutoffISODate(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-08", CutoffISODate(now, 7))
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-03-15"))
	assert.True(t, IsISODate("2024-03-15 10:00:00"))
	assert.False(t, IsISODate("15.03.2024"))
	assert.False(t, IsISODate("2024-3-5"))
}
