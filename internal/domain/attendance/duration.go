package attendance

import (
	"fmt"
	"time"
)

// DurationPlaceholder is rendered when either timestamp is missing.
const DurationPlaceholder = "—"

// WorkDuration derives the elapsed-time column from check-in and check-out.
// Hours and minutes are floored from the raw millisecond difference. A
// check-out earlier than check-in yields a negative duration rendered with a
// leading minus; the value is passed through, never clamped.
func WorkDuration(checkIn, checkOut *time.Time) string {
	if checkIn == nil || checkOut == nil {
		return DurationPlaceholder
	}

	ms := checkOut.Sub(*checkIn).Milliseconds()
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}

	totalMinutes := ms / (60 * 1000)
	return fmt.Sprintf("%s%dh %dm", sign, totalMinutes/60, totalMinutes%60)
}
