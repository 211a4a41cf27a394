package domain

// Profile holds the per-user game totals
type Profile struct {
	ID                   string `json:"id"`
	Username             string `json:"username"`
	ClassificationPoints int    `json:"classificationPoints"`
}
