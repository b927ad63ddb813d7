package hours

import "ohd/internal/models"

// PairOpenClose zips the i-th open with the i-th close of a sorted timeline.
// Matching is positional only: unmatched trailing events are dropped and
// out-of-order input is paired as-is.
func PairOpenClose(times []models.WeekEvent) []models.Interval {
	opens := filterByType(times, models.EventOpen)
	closes := filterByType(times, models.EventClose)

	n := min(len(opens), len(closes))
	intervals := make([]models.Interval, n)
	for i := 0; i < n; i++ {
		intervals[i] = models.Interval{Open: opens[i], Close: closes[i]}
	}
	return intervals
}

func filterByType(times []models.WeekEvent, t models.EventType) []int {
	values := make([]int, 0, len(times)/2+1)
	for _, ev := range times {
		if ev.Type == t {
			values = append(values, ev.Value)
		}
	}
	return values
}
