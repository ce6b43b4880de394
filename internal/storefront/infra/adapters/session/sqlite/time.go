package sqlite

import (
	"fmt"
	"time"
)

// Fixed width so stored values sort chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads an updated_at value written by formatTime.
func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse updated_at %q: %w", s, err)
	}
	return t, nil
}
