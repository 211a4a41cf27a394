package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidID         = "Invalid %s"
	ErrMsgInvalidLocation   = "Invalid location"

	// Anomaly error messages
	ErrMsgGetAnomalyFailed = "Failed to retrieve anomaly"

	// Classification error messages
	ErrMsgSubmitFailed       = "Failed to submit classification"
	ErrMsgListFailed         = "Failed to list classifications"
	ErrMsgGetClassification  = "Failed to retrieve classification"
	ErrMsgVoteFailed         = "Failed to record vote"
	ErrMsgCommentFailed      = "Failed to add comment"
	ErrMsgListCommentsFailed = "Failed to list comments"

	// Annotation error messages
	ErrMsgSaveAnnotationFailed = "Failed to save annotation"
	ErrMsgPreviewFailed        = "Failed to render annotation"
	ErrMsgListDepositsFailed   = "Failed to list mineral deposits"

	// Progression error messages
	ErrMsgWorkflowsFailed       = "Failed to retrieve workflow states"
	ErrMsgCatalogFailed         = "Failed to retrieve structure catalog"
	ErrMsgUnlockFailed          = "Failed to unlock feature"
	ErrMsgCompleteMissionFailed = "Failed to complete mission"
	ErrMsgGetMissionFailed      = "Failed to retrieve mission"

	// Deployment error messages
	ErrMsgDeployableFailed    = "Failed to list deployable anomalies"
	ErrMsgDeployStatusFailed  = "Failed to load deployment status"
	ErrMsgSkillProgressFailed = "Failed to load skill progress"
	ErrMsgDeployFailed        = "Failed to deploy telescope"
	ErrMsgResearchFailed      = "Failed to record research"
)

// Success messages for API responses
const (
	MsgCommentAdded     = "Comment added"
	MsgMissionCompleted = "Mission completed"
	MsgMissionAlready   = "Mission already completed"
)
