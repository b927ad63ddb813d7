package models

type EventType string

const (
	EventOpen  EventType = "open"
	EventClose EventType = "close"
)

// DayEvent is a single open/close mark inside one day, in seconds since midnight.
type DayEvent struct {
	Type  EventType `json:"type"`
	Value int       `json:"value"`
}

// WeekEvent is a DayEvent shifted onto the whole week (seconds since Monday 00:00).
type WeekEvent struct {
	Type  EventType `json:"type"`
	Value int       `json:"value"`
}

// WeekSchedule holds raw events per day. Days without events may be absent.
type WeekSchedule map[Weekday][]DayEvent

// Clone returns a deep copy so callers never share event slices.
func (ws WeekSchedule) Clone() WeekSchedule {
	out := make(WeekSchedule, len(ws))
	for day, events := range ws {
		cp := make([]DayEvent, len(events))
		copy(cp, events)
		out[day] = cp
	}
	return out
}
