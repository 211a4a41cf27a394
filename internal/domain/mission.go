package domain

import "time"

// Mission is a completion record; at most one row exists per (user, mission)
type Mission struct {
	ID               int64          `json:"id"`
	UserID           string         `json:"user"`
	MissionID        int64          `json:"mission"`
	Configuration    map[string]any `json:"configuration,omitempty"`
	TimeOfCompletion time.Time      `json:"time_of_completion"`
}
