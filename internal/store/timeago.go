package store

import (
	"fmt"
	"time"
)

// timeAgo renders the elapsed time between then and now as a coarse
// relative-time string ("5 minutes ago"). Units are always pluralized,
// including at exactly one ("1 minutes ago") - the display layer has
// always shown it this way and downstream snapshots assert on it.
func timeAgo(then, now time.Time) string {
	seconds := int(now.Sub(then).Seconds())
	if seconds < 0 {
		seconds = 0
	}

	if interval := seconds / 31536000; interval >= 1 {
		return fmt.Sprintf("%d years ago", interval)
	}
	if interval := seconds / 2592000; interval >= 1 {
		return fmt.Sprintf("%d months ago", interval)
	}
	if interval := seconds / 86400; interval >= 1 {
		return fmt.Sprintf("%d days ago", interval)
	}
	if interval := seconds / 3600; interval >= 1 {
		return fmt.Sprintf("%d hours ago", interval)
	}
	if interval := seconds / 60; interval >= 1 {
		return fmt.Sprintf("%d minutes ago", interval)
	}
	return fmt.Sprintf("%d seconds ago", seconds)
}
