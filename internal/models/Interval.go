package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Interval is one opening range. Inside the pipeline both fields are
// seconds-of-week; once bucketed they are seconds-of-day and Close may be
// smaller than Open when the range runs past midnight.
type Interval struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// DayOpeningTimes lists intervals per day, ordered by opening time.
type DayOpeningTimes map[Weekday][]Interval

// MarshalJSON writes days in canonical weekday order and always emits all of
// them, using [] for days without intervals.
func (d DayOpeningTimes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range Weekdays {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(string(day))
		buf.WriteString(`":`)

		intervals := d[day]
		if intervals == nil {
			intervals = []Interval{}
		}
		data, err := json.Marshal(intervals)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OpenDays counts days that have at least one interval.
func (d DayOpeningTimes) OpenDays() int {
	count := 0
	for _, day := range Weekdays {
		if len(d[day]) > 0 {
			count++
		}
	}
	return count
}
