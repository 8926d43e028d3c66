package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_RelativeAge(t *testing.T) {
	now := time.Date(2023, time.May, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{name: "zero elapsed", elapsed: 0, want: "just now"},
		{name: "sub second", elapsed: 500 * time.Millisecond, want: "just now"},
		{name: "one second", elapsed: time.Second, want: "1 second ago"},
		{name: "last second before a minute", elapsed: 59 * time.Second, want: "59 seconds ago"},
		{name: "exactly one minute", elapsed: time.Minute, want: "1 minute ago"},
		{name: "last second before an hour", elapsed: time.Hour - time.Second, want: "59 minutes ago"},
		{name: "exactly one hour", elapsed: time.Hour, want: "1 hour ago"},
		{name: "hours dominate minutes", elapsed: 5*time.Hour + 30*time.Minute, want: "5 hours ago"},
		{name: "exactly one day", elapsed: 24 * time.Hour, want: "1 day ago"},
		{name: "under a month", elapsed: 30 * 24 * time.Hour, want: "30 days ago"},
		{name: "just over a month", elapsed: 31 * 24 * time.Hour, want: "1 month ago"},
		{name: "several months", elapsed: 100 * 24 * time.Hour, want: "3 months ago"},
		{name: "exactly 365 days stays months", elapsed: 365 * 24 * time.Hour, want: "11 months ago"},
		{name: "one second past a year", elapsed: 365*24*time.Hour + time.Second, want: "1 year ago"},
		{name: "two years", elapsed: 2 * 366 * 24 * time.Hour, want: "2 years ago"},
		{name: "future timestamp", elapsed: -time.Minute, want: "just now"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RelativeAge(now.Add(-tc.elapsed), now))
		})
	}
}
