package auction

import "time"

// CeilToHour rounds up to the top of the hour. On-the-hour times are kept.
func CeilToHour(t time.Time) time.Time {
	floor := t.Truncate(time.Hour)
	if floor.Equal(t) {
		return t
	}
	return floor.Add(time.Hour)
}

// EndAfter returns the clearing tick at which an auction started or extended
// at from should next clear.
func EndAfter(from time.Time, window time.Duration) time.Time {
	return CeilToHour(from.Add(window))
}

// TickOf truncates now to the clearing granularity.
func TickOf(now time.Time, granularity time.Duration) time.Time {
	if granularity <= 0 {
		return now
	}
	return now.Truncate(granularity)
}
