package domain

import "time"

// Comment is a free-text reply attached to a classification
type Comment struct {
	ID               int64     `json:"id"`
	Author           string    `json:"author"`
	ClassificationID int64     `json:"classification_id"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
}

// Vote is a single upvote; a user votes on a classification at most once
type Vote struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"user_id"`
	ClassificationID int64     `json:"classification_id"`
	AnomalyID        int64     `json:"anomaly_id"`
	VoteType         string    `json:"vote_type"`
	CreatedAt        time.Time `json:"created_at"`
}

// VoteTypeUp is the only vote kind the game issues
const VoteTypeUp = "up"
