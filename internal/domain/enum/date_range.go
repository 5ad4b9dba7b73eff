package enum

import "time"

// DateRange is a named time bucket used to filter transactions.
type DateRange string

const (
	DateRangeAll       DateRange = "all"
	DateRangeToday     DateRange = "today"
	DateRangeYesterday DateRange = "yesterday"
	DateRangeWeek      DateRange = "week"
	DateRangeMonth     DateRange = "month"
)

// Valid reports whether the value is a known bucket name.
func (r DateRange) Valid() bool {
	switch r {
	case DateRangeAll, DateRangeToday, DateRangeYesterday, DateRangeWeek, DateRangeMonth:
		return true
	}
	return false
}

// Window returns the half-open interval [start, end) for the bucket, anchored
// to now and aligned to day boundaries in now's location. A timestamp equal to
// now falls into today, week and month, but never yesterday. DateRangeAll
// returns ok=false meaning no time constraint.
func (r DateRange) Window(now time.Time) (start, end time.Time, ok bool) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	switch r {
	case DateRangeToday:
		return startOfDay, endOfDay, true
	case DateRangeYesterday:
		return startOfDay.Add(-24 * time.Hour), startOfDay, true
	case DateRangeWeek:
		// trailing 7 days including today
		return startOfDay.AddDate(0, 0, -6), endOfDay, true
	case DateRangeMonth:
		// trailing 30 days including today
		return startOfDay.AddDate(0, 0, -29), endOfDay, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
