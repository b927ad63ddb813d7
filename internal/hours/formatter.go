package hours

import (
	"time"

	"ohd/internal/models"
)

const rangeSeparator = " - "

// FormatInterval renders an interval as "9 AM - 8 PM". Open is always printed
// first, even when Close is the smaller number.
func FormatInterval(iv models.Interval) string {
	return FormatDayTime(iv.Open) + rangeSeparator + FormatDayTime(iv.Close)
}

// FormatDayTime renders seconds-of-day on a 12-hour clock, dropping the
// minutes when they are zero.
func FormatDayTime(seconds int) string {
	t := time.Unix(int64(seconds), 0).UTC()
	if t.Minute() == 0 {
		return t.Format("3 PM")
	}
	return t.Format("3:04 PM")
}
