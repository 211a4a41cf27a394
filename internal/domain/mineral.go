package domain

import "time"

// MineralDeposit is a resource site discovered through a rover classification
type MineralDeposit struct {
	ID            int64                `json:"id"`
	Owner         string               `json:"owner"`
	AnomalyID     int64                `json:"anomaly"`
	Discovery     int64                `json:"discovery"`
	Configuration MineralConfiguration `json:"mineralconfiguration"`
	Location      string               `json:"location"`
	RoverName     string               `json:"roverName,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// MineralConfiguration describes what was found at a deposit
type MineralConfiguration struct {
	Type            string       `json:"type"`
	Quantity        string       `json:"quantity"`
	Difficulty      string       `json:"difficulty"`
	Confidence      int          `json:"confidence"`
	DiscoveryMethod string       `json:"discoveryMethod"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
}

// Coordinates is a waypoint position on a route map
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
