// Package hours turns raw weekly open/close events into per-day opening
// intervals and renders them for display. Everything here is pure.
package hours

import (
	"time"

	"ohd/internal/models"
)

// OpeningTimes runs normalize, pair and bucket over a weekly schedule.
func OpeningTimes(schedule models.WeekSchedule) models.DayOpeningTimes {
	return GroupByOpeningDay(PairOpenClose(ToSortedWeekTimes(schedule)))
}

// CurrentWeekday maps t onto the Monday-first week. time.Weekday counts from
// Sunday, so Sunday (0) wraps to the last slot.
func CurrentWeekday(t time.Time) models.Weekday {
	return models.Weekdays[(int(t.Weekday())+models.DaysInWeek-1)%models.DaysInWeek]
}
