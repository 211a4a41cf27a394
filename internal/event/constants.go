package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat reports handler failures for a single publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"

	// LogMsgPublishFailed is logged by callers that publish after a commit and swallow the error
	LogMsgPublishFailed = "Event publish failed"
)
