package models

// DayDisplay is one rendered row of the weekly opening hours table.
type DayDisplay struct {
	Day    Weekday `json:"day"`
	Label  string  `json:"label"`
	Hours  string  `json:"hours"`
	Closed bool    `json:"closed"`
	Today  bool    `json:"today"`
}
