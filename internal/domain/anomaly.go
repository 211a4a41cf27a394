package domain

import "time"

// Anomaly is a catalogued observation target (planet, cloud image, rover frame, ...)
type Anomaly struct {
	ID            int64          `json:"id"`
	Content       string         `json:"content"`
	AnomalyType   string         `json:"anomalytype"`
	AnomalySet    string         `json:"anomaly_set"`
	Configuration map[string]any `json:"configuration,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// LinkedAnomaly records that an anomaly has been routed to a user by one of their structures.
// ClassificationID, when set, points at the planet classification the anomaly belongs to.
type LinkedAnomaly struct {
	ID               int64     `json:"id"`
	Author           string    `json:"author"`
	AnomalyID        int64     `json:"anomaly_id"`
	ClassificationID *int64    `json:"classification_id,omitempty"`
	Automaton        string    `json:"automaton"`
	CreatedAt        time.Time `json:"created_at"`
}

// AutomatonTelescope marks links created by a telescope deployment
const AutomatonTelescope = "Telescope"

// Research is a technology the user has unlocked
type Research struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	TechType  string    `json:"tech_type"`
	CreatedAt time.Time `json:"created_at"`
}
