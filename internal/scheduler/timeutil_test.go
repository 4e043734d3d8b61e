package scheduler

import "testing"

func TestClockToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"bogus", 0},
		{"12", 0},
	}
	for _, c := range cases {
		if got := ClockToMinutes(c.clock); got != c.want {
			t.Errorf("ClockToMinutes(%q) = %d, want %d", c.clock, got, c.want)
		}
	}
}

func TestBlockDurationHours(t *testing.T) {
	assertFloat(t, "two hours", BlockDurationHours("09:00", "11:00"), 2)
	assertFloat(t, "half hour", BlockDurationHours("10:15", "10:45"), 0.5)
	assertFloat(t, "inverted", BlockDurationHours("11:00", "09:00"), -2)
	assertFloat(t, "empty", BlockDurationHours("10:00", "10:00"), 0)
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		minutes int
		want    string
	}{
		{"09:00", 90, "10:30"},
		{"10:30", 30, "11:00"},
		{"23:30", 60, "00:30"}, // 过午夜回绕，天标签不变
		{"08:05", 0, "08:05"},
	}
	for _, c := range cases {
		if got := AddMinutes(c.clock, c.minutes); got != c.want {
			t.Errorf("AddMinutes(%q, %v) = %q, want %q", c.clock, c.minutes, got, c.want)
		}
	}
}
