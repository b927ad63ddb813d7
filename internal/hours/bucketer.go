package hours

import "ohd/internal/models"

// GroupByOpeningDay files week-relative intervals under the day they open on
// and converts both ends back to seconds-of-day. The close of a range that
// runs past midnight ends up numerically below its open and stays that way.
// Every weekday is present in the result.
func GroupByOpeningDay(intervals []models.Interval) models.DayOpeningTimes {
	result := make(models.DayOpeningTimes, models.DaysInWeek)
	for _, day := range models.Weekdays {
		result[day] = []models.Interval{}
	}

	for _, iv := range intervals {
		day := models.Weekdays[openingDayIndex(iv.Open)]
		result[day] = append(result[day], models.Interval{
			Open:  toDayTime(iv.Open),
			Close: toDayTime(iv.Close),
		})
	}
	return result
}

// openingDayIndex is floor(open / day). Values past the end of the week wrap.
func openingDayIndex(weekTime int) int {
	idx := floorDiv(weekTime, models.SecondsInDay) % models.DaysInWeek
	if idx < 0 {
		idx += models.DaysInWeek
	}
	return idx
}

func toDayTime(weekTime int) int {
	v := weekTime % models.SecondsInDay
	if v < 0 {
		v += models.SecondsInDay
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
