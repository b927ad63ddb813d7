package services

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"ohd/internal/hours"
	"ohd/internal/models"
	"ohd/internal/structures"
)

const (
	ClosedLabel      = "Closed"
	intervalJoinWith = ", "
)

type ScheduleServiceInterface interface {
	GetSchedule() models.WeekSchedule
	ReplaceSchedule(schedule models.WeekSchedule)
	ReplaceScheduleJSON(data []byte) error
	GetOpeningTimes() models.DayOpeningTimes
	Compute(schedule models.WeekSchedule) models.DayOpeningTimes
	Display(times models.DayOpeningTimes, today models.Weekday) []models.DayDisplay
	Today() models.Weekday
	GetVersion() uint64
	GetSnapshot() *models.Snapshot
	PutSnapshot(snapshot *models.Snapshot) error
}

type ScheduleService struct {
	mu           sync.RWMutex
	schedule     models.WeekSchedule
	openingTimes models.DayOpeningTimes
	version      uint64
	updatedAt    time.Time

	location *time.Location
	now      func() time.Time
}

func (ss *ScheduleService) GetSchedule() models.WeekSchedule {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.schedule.Clone()
}

func (ss *ScheduleService) ReplaceSchedule(schedule models.WeekSchedule) {
	cp := schedule.Clone()
	times := hours.OpeningTimes(cp)

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.schedule = cp
	ss.openingTimes = times
	ss.version++
	ss.updatedAt = ss.now()
}

// ReplaceScheduleJSON parses data and swaps it in. On a parse error the
// previously stored schedule stays active.
func (ss *ScheduleService) ReplaceScheduleJSON(data []byte) error {
	schedule, err := models.ParseWeekSchedule(data)
	if err != nil {
		return err
	}
	ss.ReplaceSchedule(schedule)
	return nil
}

func (ss *ScheduleService) GetOpeningTimes() models.DayOpeningTimes {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return cloneOpeningTimes(ss.openingTimes)
}

func (ss *ScheduleService) Compute(schedule models.WeekSchedule) models.DayOpeningTimes {
	return hours.OpeningTimes(schedule)
}

// Display builds one row per weekday in canonical order.
func (ss *ScheduleService) Display(times models.DayOpeningTimes, today models.Weekday) []models.DayDisplay {
	caser := cases.Title(language.English)
	rows := make([]models.DayDisplay, 0, models.DaysInWeek)
	for _, day := range models.Weekdays {
		row := models.DayDisplay{
			Day:   day,
			Label: caser.String(string(day)),
			Today: day == today,
		}

		intervals := times[day]
		if len(intervals) == 0 {
			row.Hours = ClosedLabel
			row.Closed = true
		} else {
			formatted := make([]string, len(intervals))
			for i, iv := range intervals {
				formatted[i] = hours.FormatInterval(iv)
			}
			row.Hours = strings.Join(formatted, intervalJoinWith)
		}
		rows = append(rows, row)
	}
	return rows
}

func (ss *ScheduleService) Today() models.Weekday {
	return hours.CurrentWeekday(ss.now().In(ss.location))
}

func (ss *ScheduleService) GetVersion() uint64 {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.version
}

func (ss *ScheduleService) GetSnapshot() *models.Snapshot {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return &models.Snapshot{
		Version:   models.SnapshotVersion,
		UpdatedAt: ss.updatedAt,
		Schedule:  ss.schedule.Clone(),
	}
}

// PutSnapshot restores a persisted schedule. The snapshot timestamp is kept
// so a restart does not look like an edit.
func (ss *ScheduleService) PutSnapshot(snapshot *models.Snapshot) error {
	schedule := snapshot.Schedule
	if schedule == nil {
		schedule = models.WeekSchedule{}
	}
	if err := models.ValidateWeekSchedule(schedule); err != nil {
		return err
	}

	cp := schedule.Clone()
	times := hours.OpeningTimes(cp)

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.schedule = cp
	ss.openingTimes = times
	ss.version++
	ss.updatedAt = snapshot.UpdatedAt
	return nil
}

// SetClock replaces the time source. Used by tests.
func (ss *ScheduleService) SetClock(now func() time.Time) {
	ss.now = now
}

func cloneOpeningTimes(times models.DayOpeningTimes) models.DayOpeningTimes {
	out := make(models.DayOpeningTimes, models.DaysInWeek)
	for _, day := range models.Weekdays {
		src := times[day]
		cp := make([]models.Interval, len(src))
		copy(cp, src)
		out[day] = cp
	}
	return out
}

func NewScheduleService(conf *structures.Config) ScheduleServiceInterface {
	location, err := time.LoadLocation(conf.Schedule.Timezone)
	if err != nil {
		location = time.UTC
	}

	schedule := models.WeekSchedule{}
	return &ScheduleService{
		schedule:     schedule,
		openingTimes: hours.OpeningTimes(schedule),
		location:     location,
		now:          time.Now,
	}
}
