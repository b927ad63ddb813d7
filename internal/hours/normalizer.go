package hours

import (
	"slices"

	"ohd/internal/models"
)

// ToSortedWeekTimes shifts every day event onto the week timeline and sorts
// the result by time. Days are visited in canonical order, so events sharing
// the same week time keep their input order.
func ToSortedWeekTimes(schedule models.WeekSchedule) []models.WeekEvent {
	times := make([]models.WeekEvent, 0, countEvents(schedule))
	for dayIndex, day := range models.Weekdays {
		offset := dayIndex * models.SecondsInDay
		for _, ev := range schedule[day] {
			times = append(times, models.WeekEvent{
				Type:  ev.Type,
				Value: ev.Value + offset,
			})
		}
	}

	slices.SortStableFunc(times, func(a, b models.WeekEvent) int {
		return a.Value - b.Value
	})
	return times
}

func countEvents(schedule models.WeekSchedule) int {
	n := 0
	for _, events := range schedule {
		n += len(events)
	}
	return n
}
