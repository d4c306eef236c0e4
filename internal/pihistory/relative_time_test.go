package pihistory

import (
	"testing"
	"time"
)

func TestFormatRelativeSince(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-time.Minute), "1 minute ago"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-time.Hour), "1 hour ago"},
		{now.Add(-23 * time.Hour), "23 hours ago"},
		{now.Add(-24 * time.Hour), "1 day ago"},
		{now.Add(-6 * 24 * time.Hour), "6 days ago"},
		{now.Add(-14 * 24 * time.Hour), "2 weeks ago"},
		{now.Add(-60 * 24 * time.Hour), "2025-04-16"},
	}
	for _, tc := range cases {
		if got := formatRelativeSince(tc.t, now); got != tc.want {
			t.Fatalf("formatRelativeSince(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}
