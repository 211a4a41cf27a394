package domain

// Session identifies the authenticated user making a request.
// It is carried explicitly into every service call rather than read from ambient state.
type Session struct {
	UserID string `json:"user_id"`
}

// Valid reports whether the session identifies a user
func (s Session) Valid() bool {
	return s.UserID != ""
}

// Location is the user's active planet: the anomaly they are currently deployed to
type Location struct {
	AnomalyID  int64  `json:"anomaly_id"`
	PlanetType string `json:"planet_type,omitempty"`
}

// Valid reports whether a location has been selected
func (l Location) Valid() bool {
	return l.AnomalyID > 0
}
