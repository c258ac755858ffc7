package match

import "time"

// dateBucket maps a day gap to a proximity score. Buckets are inclusive on
// their upper edge: a gap of exactly 3 days scores 0.85, a gap of 4 falls
// through to the 7-day bucket.
type dateBucket struct {
	maxDays int
	score   float64
}

var dateBuckets = []dateBucket{
	{0, 1.0},
	{1, 0.95},
	{3, 0.85},
	{7, 0.70},
	{14, 0.50},
	{30, 0.30},
}

// beyondBucketScore applies to any gap over the last bucket.
const beyondBucketScore = 0.1

// DateProximityScore maps the calendar-day gap between two dates to a fixed
// bucket ladder. Missing (zero) dates score 0.
func DateProximityScore(d1, d2 time.Time) float64 {
	if d1.IsZero() || d2.IsZero() {
		return 0
	}

	days := DaysBetween(d1, d2)
	for _, b := range dateBuckets {
		if days <= b.maxDays {
			return b.score
		}
	}
	return beyondBucketScore
}

// DaysBetween returns the absolute calendar-day gap between two dates,
// ignoring time-of-day components.
func DaysBetween(d1, d2 time.Time) int {
	a := time.Date(d1.Year(), d1.Month(), d1.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(d2.Year(), d2.Month(), d2.Day(), 0, 0, 0, 0, time.UTC)

	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
