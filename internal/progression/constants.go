package progression

// Log messages
const (
	LogMsgUnlockConflict      = "Structure configuration changed during unlock, retrying"
	LogMsgFeatureUnlocked     = "Feature unlocked"
	LogMsgAlreadyUnlocked     = "Feature already unlocked"
	LogMsgMissionCompleted    = "Mission completed"
	LogMsgPublishFailed       = "Failed to publish progression event"
	LogMsgMissionCacheCleared = "Mission cache invalidated"
)

// Configuration keys read from an anomaly to find its planet type
const (
	AnomalyConfigPlanetType = "planetType"
	AnomalyConfigType       = "type"
)

// DefaultUnlockRetries bounds compare-and-swap retries when none is configured
const DefaultUnlockRetries = 3
