package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysApart(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same moment", time.Date(2026, 3, 2, 10, 0, 0, 0, loc), time.Date(2026, 3, 2, 10, 0, 0, 0, loc), 0},
		{"same day different hours", time.Date(2026, 3, 2, 1, 0, 0, 0, loc), time.Date(2026, 3, 2, 23, 59, 0, 0, loc), 0},
		{"adjacent days across midnight", time.Date(2026, 3, 2, 23, 59, 0, 0, loc), time.Date(2026, 3, 3, 0, 1, 0, 0, loc), 1},
		{"order does not matter", time.Date(2026, 3, 5, 8, 0, 0, 0, loc), time.Date(2026, 3, 2, 8, 0, 0, 0, loc), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysApart(tt.a, tt.b))
		})
	}
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	got := startOfDay(time.Date(2026, 3, 2, 17, 45, 12, 0, loc))

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
