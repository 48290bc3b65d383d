package timeutil

import (
	"testing"
	"time"
)

func TestAgo(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		delta time.Duration
		want  string
	}{
		{30 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{9 * 24 * time.Hour, "1w ago"},
	}
	for _, c := range cases {
		if got := Ago(now.Add(-c.delta), now); got != c.want {
			t.Fatalf("Ago(-%v) = %q, want %q", c.delta, got, c.want)
		}
	}
}
