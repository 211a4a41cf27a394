package progression

import "github.com/osse101/StarSailors_Go/internal/catalog"

// State is where a user stands on one classification workflow
type State string

const (
	// StateTutorial shows onboarding content; the backing mission is not yet completed
	StateTutorial State = "Tutorial"
	// StateLive shows the live classification flow
	StateLive State = "Live"
)

// StateFor is the single transition rule: a workflow is Live iff its backing mission is completed
func StateFor(missionCompleted bool) State {
	if missionCompleted {
		return StateLive
	}
	return StateTutorial
}

// WorkflowStatus is the evaluated state of one catalog entry for a user at a location
type WorkflowStatus struct {
	Entry catalog.Entry `json:"entry"`
	State State         `json:"state"`
	// Owned is true when the user has the entry's structure on the active planet
	Owned bool `json:"owned"`
	// Unlocked is true when the entry's identifier is in that structure's unlocked list
	Unlocked bool `json:"unlocked"`
}

// UnlockResult reports the outcome of an unlock request
type UnlockResult struct {
	InventoryID      int64    `json:"inventory_id"`
	Identifier       string   `json:"identifier"`
	AlreadyUnlocked  bool     `json:"already_unlocked"`
	MissionsUnlocked []string `json:"missions_unlocked"`
	Attempts         int      `json:"attempts"`
}
