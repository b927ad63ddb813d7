package models

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

var ErrInvalidSchedule = errors.New("invalid schedule")

// rawDayEvent keeps Value as a pointer so an absent value is told apart
// from midnight.
type rawDayEvent struct {
	Type  EventType `json:"type"`
	Value *int      `json:"value"`
}

// ParseWeekSchedule decodes a schedule document and checks its shape: known
// weekday keys, open/close tags and seconds-of-day values. Whether opens and
// closes alternate is left to the caller.
func ParseWeekSchedule(data []byte) (WeekSchedule, error) {
	var raw map[Weekday][]rawDayEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSchedule, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidSchedule)
	}

	schedule := make(WeekSchedule, len(raw))
	for day, events := range raw {
		converted := make([]DayEvent, len(events))
		for i, ev := range events {
			if ev.Value == nil {
				return nil, fmt.Errorf("%w: %s event %d: value is required", ErrInvalidSchedule, day, i)
			}
			converted[i] = DayEvent{Type: ev.Type, Value: *ev.Value}
		}
		schedule[day] = converted
	}
	if err := ValidateWeekSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func ValidateWeekSchedule(schedule WeekSchedule) error {
	for day, events := range schedule {
		if !day.Valid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
		for i, ev := range events {
			if err := validateDayEvent(ev); err != nil {
				return fmt.Errorf("%w: %s event %d: %s", ErrInvalidSchedule, day, i, err)
			}
		}
	}
	return nil
}

func validateDayEvent(ev DayEvent) error {
	v := validate.Map(map[string]any{
		"type":  string(ev.Type),
		"value": ev.Value,
	})
	v.StringRule("type", "required|in:open,close")
	v.StringRule("value", "int|min:0|max:86399")
	if !v.Validate() {
		return v.Errors
	}
	return nil
}

// ParseInterval decodes a single {"open","close"} object.
func ParseInterval(data []byte) (Interval, error) {
	var raw struct {
		Open  *int `json:"open"`
		Close *int `json:"close"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Interval{}, fmt.Errorf("%w: %s", ErrInvalidSchedule, err)
	}
	if raw.Open == nil || raw.Close == nil {
		return Interval{}, fmt.Errorf("%w: interval needs both open and close", ErrInvalidSchedule)
	}
	return Interval{Open: *raw.Open, Close: *raw.Close}, nil
}
