package models

const (
	SecondsInDay = 24 * 3600
	DaysInWeek   = 7
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays is the canonical Monday-first order. Offsets and output ordering
// are both derived from a day's position in this array.
var Weekdays = [DaysInWeek]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayIndex returns the position of day in Weekdays, or -1 for an unknown name.
func WeekdayIndex(day Weekday) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

func (d Weekday) Valid() bool {
	return WeekdayIndex(d) >= 0
}
