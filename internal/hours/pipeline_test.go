package hours

import (
	"testing"
	"time"

	"ohd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAt(v int) models.DayEvent  { return models.DayEvent{Type: models.EventOpen, Value: v} }
func closeAt(v int) models.DayEvent { return models.DayEvent{Type: models.EventClose, Value: v} }

func emptyWeek() models.DayOpeningTimes {
	out := models.DayOpeningTimes{}
	for _, d := range models.Weekdays {
		out[d] = []models.Interval{}
	}
	return out
}

// --- ToSortedWeekTimes ---

func TestToSortedWeekTimes_OffsetsAndSorts(t *testing.T) {
	times := ToSortedWeekTimes(models.WeekSchedule{
		models.Monday:  {openAt(32400), closeAt(72000)},
		models.Tuesday: {closeAt(72000), openAt(32400)},
	})

	assert.Equal(t, []models.WeekEvent{
		{Type: models.EventOpen, Value: 32400},
		{Type: models.EventClose, Value: 72000},
		{Type: models.EventOpen, Value: 118800},
		{Type: models.EventClose, Value: 158400},
	}, times)
}

func TestToSortedWeekTimes_EmptySchedule(t *testing.T) {
	assert.Empty(t, ToSortedWeekTimes(models.WeekSchedule{}))
	assert.Empty(t, ToSortedWeekTimes(nil))
	assert.Empty(t, ToSortedWeekTimes(models.WeekSchedule{models.Monday: {}}))
}

func TestToSortedWeekTimes_SundayOffset(t *testing.T) {
	times := ToSortedWeekTimes(models.WeekSchedule{
		models.Sunday: {openAt(0)},
	})
	require.Len(t, times, 1)
	assert.Equal(t, 6*models.SecondsInDay, times[0].Value)
}

func TestToSortedWeekTimes_TiesKeepInputOrder(t *testing.T) {
	times := ToSortedWeekTimes(models.WeekSchedule{
		models.Monday: {closeAt(3600), openAt(3600)},
	})
	require.Len(t, times, 2)
	assert.Equal(t, models.EventClose, times[0].Type)
	assert.Equal(t, models.EventOpen, times[1].Type)
}

// --- PairOpenClose ---

func TestPairOpenClose_Positional(t *testing.T) {
	pairs := PairOpenClose([]models.WeekEvent{
		{Type: models.EventOpen, Value: 32400},
		{Type: models.EventClose, Value: 72000},
		{Type: models.EventOpen, Value: 118800},
		{Type: models.EventClose, Value: 158400},
	})

	assert.Equal(t, []models.Interval{
		{Open: 32400, Close: 72000},
		{Open: 118800, Close: 158400},
	}, pairs)
}

func TestPairOpenClose_DropsUnmatched(t *testing.T) {
	pairs := PairOpenClose([]models.WeekEvent{
		{Type: models.EventOpen, Value: 100},
		{Type: models.EventClose, Value: 200},
		{Type: models.EventOpen, Value: 300},
	})
	assert.Equal(t, []models.Interval{{Open: 100, Close: 200}}, pairs)

	pairs = PairOpenClose([]models.WeekEvent{
		{Type: models.EventClose, Value: 50},
		{Type: models.EventClose, Value: 60},
	})
	assert.Empty(t, pairs)
}

func TestPairOpenClose_ZipsByIndexNotByNeighbour(t *testing.T) {
	// a leading close is paired with the first open even though it comes earlier
	pairs := PairOpenClose([]models.WeekEvent{
		{Type: models.EventClose, Value: 3600},
		{Type: models.EventOpen, Value: 32400},
	})
	assert.Equal(t, []models.Interval{{Open: 32400, Close: 3600}}, pairs)
}

// --- GroupByOpeningDay ---

func TestGroupByOpeningDay_ConvertsToDayTime(t *testing.T) {
	got := GroupByOpeningDay([]models.Interval{
		{Open: 32400, Close: 72000},
		{Open: 118800, Close: 158400},
	})

	want := emptyWeek()
	want[models.Monday] = []models.Interval{{Open: 32400, Close: 72000}}
	want[models.Tuesday] = []models.Interval{{Open: 32400, Close: 72000}}
	assert.Equal(t, want, got)
}

func TestGroupByOpeningDay_AllDaysPresent(t *testing.T) {
	got := GroupByOpeningDay(nil)
	assert.Len(t, got, models.DaysInWeek)
	for _, d := range models.Weekdays {
		assert.NotNil(t, got[d], d)
		assert.Empty(t, got[d], d)
	}
}

func TestGroupByOpeningDay_OwnedByOpenDay(t *testing.T) {
	got := GroupByOpeningDay([]models.Interval{
		{Open: 4*models.SecondsInDay + 36000, Close: 5*models.SecondsInDay + 3600},
	})
	assert.Equal(t, []models.Interval{{Open: 36000, Close: 3600}}, got[models.Friday])
	assert.Empty(t, got[models.Saturday])
}

// --- OpeningTimes ---

func TestOpeningTimes_SingleRange(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Monday: {openAt(32400), closeAt(72000)},
	})

	want := emptyWeek()
	want[models.Monday] = []models.Interval{{Open: 32400, Close: 72000}}
	assert.Equal(t, want, got)
}

func TestOpeningTimes_EmptyDays(t *testing.T) {
	assert.Equal(t, emptyWeek(), OpeningTimes(models.WeekSchedule{models.Monday: {}}))
	assert.Equal(t, emptyWeek(), OpeningTimes(models.WeekSchedule{}))
}

func TestOpeningTimes_MultipleRangesSingleDay(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Monday: {openAt(32400), closeAt(39600), openAt(57600), closeAt(82800)},
	})

	want := emptyWeek()
	want[models.Monday] = []models.Interval{
		{Open: 32400, Close: 39600},
		{Open: 57600, Close: 82800},
	}
	assert.Equal(t, want, got)
}

func TestOpeningTimes_UnorderedDayEvents(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Monday: {closeAt(82800), openAt(57600), closeAt(39600), openAt(32400)},
	})
	assert.Equal(t, []models.Interval{
		{Open: 32400, Close: 39600},
		{Open: 57600, Close: 82800},
	}, got[models.Monday])
}

func TestOpeningTimes_MultipleDays(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Monday:  {openAt(32400), closeAt(39600)},
		models.Tuesday: {openAt(57600), closeAt(82800)},
	})

	want := emptyWeek()
	want[models.Monday] = []models.Interval{{Open: 32400, Close: 39600}}
	want[models.Tuesday] = []models.Interval{{Open: 57600, Close: 82800}}
	assert.Equal(t, want, got)
}

func TestOpeningTimes_CloseOnNextDay(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Monday:  {openAt(32400)},
		models.Tuesday: {closeAt(3600)},
	})

	want := emptyWeek()
	want[models.Monday] = []models.Interval{{Open: 32400, Close: 3600}}
	assert.Equal(t, want, got)
}

func TestOpeningTimes_SundayClosesOnMonday(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Monday: {closeAt(3600)},
		models.Sunday: {openAt(72000)},
	})
	assert.Equal(t, []models.Interval{{Open: 72000, Close: 3600}}, got[models.Sunday])
	assert.Empty(t, got[models.Monday])
}

func TestOpeningTimes_FullWeek(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Monday:    {},
		models.Tuesday:   {openAt(36000), closeAt(64800)},
		models.Wednesday: {},
		models.Thursday:  {openAt(36000), closeAt(64800)},
		models.Friday:    {openAt(36000)},
		models.Saturday:  {closeAt(3600), openAt(36000)},
		models.Sunday:    {closeAt(3600), openAt(43200), closeAt(75600)},
	})

	assert.Equal(t, models.DayOpeningTimes{
		models.Monday:    {},
		models.Tuesday:   {{Open: 36000, Close: 64800}},
		models.Wednesday: {},
		models.Thursday:  {{Open: 36000, Close: 64800}},
		models.Friday:    {{Open: 36000, Close: 3600}},
		models.Saturday:  {{Open: 36000, Close: 3600}},
		models.Sunday:    {{Open: 43200, Close: 75600}},
	}, got)
}

func TestOpeningTimes_DayOrderedByOpen(t *testing.T) {
	got := OpeningTimes(models.WeekSchedule{
		models.Wednesday: {openAt(64800), closeAt(72000), openAt(0), closeAt(3600), openAt(28800), closeAt(43200)},
	})
	day := got[models.Wednesday]
	require.Len(t, day, 3)
	for i := 1; i < len(day); i++ {
		assert.Less(t, day[i-1].Open, day[i].Open)
	}
}

// --- CurrentWeekday ---

func TestCurrentWeekday(t *testing.T) {
	// 2024-01-01 was a Monday
	base := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i, want := range models.Weekdays {
		assert.Equal(t, want, CurrentWeekday(base.AddDate(0, 0, i)))
	}
}

func TestCurrentWeekday_SundayWraps(t *testing.T) {
	sunday := time.Date(2024, time.January, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, models.Sunday, CurrentWeekday(sunday))
}
