package domain

import "time"

// Classification is a user's answer about one anomaly
type Classification struct {
	ID                   int64                       `json:"id"`
	Author               string                      `json:"author"`
	AnomalyID            int64                       `json:"anomaly"`
	Content              string                      `json:"content"`
	Media                []string                    `json:"media"`
	ClassificationType   string                      `json:"classificationtype"`
	Configuration        ClassificationConfiguration `json:"classificationConfiguration"`
	ClassificationParent *int64                      `json:"classification_parent,omitempty"`
	CreatedAt            time.Time                   `json:"created_at"`
}

// ClassificationConfiguration is the typed form of the classification_configuration column
type ClassificationConfiguration struct {
	// ClassificationOptions maps option group index to the option ids the user toggled on
	ClassificationOptions map[string]map[string]bool `json:"classificationOptions"`
	AdditionalFields      map[string]string          `json:"additionalFields,omitempty"`
	ParentPlanet          *int64                     `json:"parentPlanet"`
	ActivePlanet          *int64                     `json:"activePlanet,omitempty"`
	CreatedBy             *int64                     `json:"createdBy"`
	ClassificationParent  *int64                     `json:"classificationParent"`
	AnnotationOptions     []string                   `json:"annotationOptions,omitempty"`
	Votes                 int                        `json:"votes,omitempty"`
}

// SelectedCount returns how many options are toggled on across all groups
func (c ClassificationConfiguration) SelectedCount() int {
	n := 0
	for _, group := range c.ClassificationOptions {
		for _, on := range group {
			if on {
				n++
			}
		}
	}
	return n
}

// ClassificationFilter narrows a classification listing
type ClassificationFilter struct {
	Author             string
	ClassificationType string
	AnomalyID          int64
	Limit              int
}
