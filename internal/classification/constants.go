package classification

// Listing limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Content limits
const (
	MaxContentLength = 5000
	MaxCommentLength = 2000
	MaxMediaItems    = 10
)

// AdditionalFieldPrefix names extra text fields as field_0, field_1, ...
const AdditionalFieldPrefix = "field_"

// Log messages
const (
	LogMsgSubmitted          = "Classification submitted"
	LogMsgSubmissionReplayed = "Submission replayed"
	LogMsgStructureConsumed  = "Structure use consumed"
	LogMsgStructureDepleted  = "Structure has no uses left"
	LogMsgVoted              = "Classification voted"
	LogMsgCommented          = "Comment added"
	LogMsgPublishFailed      = "Failed to publish event"
	LogMsgBeginTxFailed      = "Failed to begin transaction"
)

// Error messages
const (
	ErrMsgBeginTxFailed = "failed to begin transaction: %w"
	ErrMsgCommitFailed  = "failed to commit transaction: %w"
	ErrMsgLedgerFailed  = "failed to update submission ledger: %w"
	ErrMsgStructureFmt  = "failed to consume structure %d: %w"
	ErrMsgInsertFailed  = "failed to insert classification: %w"
	ErrMsgPointsFailed  = "failed to add classification points: %w"
	ErrMsgMissionFailed = "failed to record mission: %w"
	ErrMsgLinkFailed    = "failed to resolve linked anomaly: %w"
	ErrMsgLoadFormsFmt  = "classification forms: %w"
)
