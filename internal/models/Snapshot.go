package models

import "time"

const SnapshotVersion = 1

// Snapshot is the on-disk envelope of the stored schedule.
type Snapshot struct {
	Version   int          `json:"version"`
	UpdatedAt time.Time    `json:"updated_at"`
	Schedule  WeekSchedule `json:"schedule"`
}
