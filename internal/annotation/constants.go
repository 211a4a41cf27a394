package annotation

// Object naming
const (
	// FileNameFormat is {unixMillis}-{userID}-annotated-image.png
	FileNameFormat = "%d-%s-annotated-image.png"
)

// Mineral deposits found from rover annotations
const (
	DefaultDepositLocation = "Mars"
	DefaultRoverName       = "Rover 1"
)

// Log messages
const (
	LogMsgBaseImageFailed = "Failed to load base image"
	LogMsgRenderFailed    = "Failed to render annotation"
	LogMsgUploadFailed    = "Failed to upload annotation"
	LogMsgSaved           = "Annotation saved"
	LogMsgDepositFailed   = "Failed to record mineral deposit"
	LogMsgDepositRecorded = "Mineral deposit recorded"
	LogMsgPublishFailed   = "Failed to publish event"
)
