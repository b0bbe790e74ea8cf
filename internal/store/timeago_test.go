package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"zero elapsed", 0, "0 seconds ago"},
		{"seconds", 42 * time.Second, "42 seconds ago"},
		{"just under a minute", 59 * time.Second, "59 seconds ago"},
		{"exactly one minute stays plural", 60 * time.Second, "1 minutes ago"},
		{"minutes", 5 * time.Minute, "5 minutes ago"},
		{"exactly one hour stays plural", time.Hour, "1 hours ago"},
		{"hours", 7 * time.Hour, "7 hours ago"},
		{"days", 48 * time.Hour, "2 days ago"},
		{"months", 31 * 24 * time.Hour, "1 months ago"},
		{"years", 3 * 365 * 24 * time.Hour, "3 years ago"},
		{"future timestamps clamp to zero", -10 * time.Second, "0 seconds ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeAgo(now.Add(-tt.ago), now))
		})
	}
}
