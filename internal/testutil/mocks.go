package testutil

import (
	"ohd/internal/hours"
	"ohd/internal/models"
	"ohd/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockScheduleService implements services.ScheduleServiceInterface on top of
// the real pipeline, recording writes.
type MockScheduleService struct {
	mu           sync.Mutex
	Schedule     models.WeekSchedule
	Version      uint64
	TodayValue   models.Weekday
	ReplaceErr   error
	ReplaceCalls int
	PutCalls     []*models.Snapshot
}

func (m *MockScheduleService) GetSchedule() models.WeekSchedule {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Schedule.Clone()
}

func (m *MockScheduleService) ReplaceSchedule(schedule models.WeekSchedule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceCalls++
	m.Schedule = schedule.Clone()
	m.Version++
}

func (m *MockScheduleService) ReplaceScheduleJSON(data []byte) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	schedule, err := models.ParseWeekSchedule(data)
	if err != nil {
		return err
	}
	m.ReplaceSchedule(schedule)
	return nil
}

func (m *MockScheduleService) GetOpeningTimes() models.DayOpeningTimes {
	m.mu.Lock()
	defer m.mu.Unlock()
	return hours.OpeningTimes(m.Schedule)
}

func (m *MockScheduleService) Compute(schedule models.WeekSchedule) models.DayOpeningTimes {
	return hours.OpeningTimes(schedule)
}

func (m *MockScheduleService) Display(times models.DayOpeningTimes, today models.Weekday) []models.DayDisplay {
	rows := make([]models.DayDisplay, 0, models.DaysInWeek)
	for _, day := range models.Weekdays {
		row := models.DayDisplay{Day: day, Label: string(day), Today: day == today, Hours: "Closed", Closed: true}
		if ivs := times[day]; len(ivs) > 0 {
			row.Hours = hours.FormatInterval(ivs[0])
			row.Closed = false
		}
		rows = append(rows, row)
	}
	return rows
}

func (m *MockScheduleService) Today() models.Weekday {
	if m.TodayValue == "" {
		return models.Monday
	}
	return m.TodayValue
}

func (m *MockScheduleService) GetVersion() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Version
}

func (m *MockScheduleService) GetSnapshot() *models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &models.Snapshot{
		Version:  models.SnapshotVersion,
		Schedule: m.Schedule.Clone(),
	}
}

func (m *MockScheduleService) PutSnapshot(snapshot *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, snapshot)
	m.Schedule = snapshot.Schedule.Clone()
	m.Version++
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu         sync.Mutex
	Data       map[string][]byte
	ClearCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.ClearCalls++
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// identity
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu                sync.Mutex
	PersistCalls      int
	Intervals         map[string]int
	RejectedSchedules int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistCalls++
}

func (m *MockMetrics) SetIntervalsTotal(day string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Intervals == nil {
		m.Intervals = make(map[string]int)
	}
	m.Intervals[day] = count
}

func (m *MockMetrics) IncScheduleRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RejectedSchedules++
}

func (m *MockMetrics) Persisted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PersistCalls
}
