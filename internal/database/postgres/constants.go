package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Anomaly queries
const (
	SQLSelectAnomaly = `
		SELECT id, content, anomalytype, anomaly_set, configuration, created_at
		FROM anomalies WHERE id = $1`
)

// Mission queries
const (
	SQLMissionExists = `SELECT EXISTS(SELECT 1 FROM missions WHERE user_id = $1 AND mission = $2)`

	SQLListMissions = `SELECT mission FROM missions WHERE user_id = $1 ORDER BY mission`

	SQLSelectMission = `
		SELECT id, user_id, mission, configuration, time_of_completion
		FROM missions WHERE user_id = $1 AND mission = $2`

	SQLInsertMissionIfAbsent = `
		INSERT INTO missions (user_id, mission, time_of_completion)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, mission) DO NOTHING`
)

// Inventory queries
const (
	inventoryColumns = `id, owner, item, anomaly, quantity, configuration, version`

	SQLSelectStructure = `
		SELECT ` + inventoryColumns + ` FROM inventory
		WHERE owner = $1 AND item = $2 AND ($3::bigint = 0 OR anomaly = $3)
		ORDER BY id ASC LIMIT 1`

	SQLSelectStructureForUpdate = SQLSelectStructure + ` FOR UPDATE`

	SQLListStructures = `
		SELECT ` + inventoryColumns + ` FROM inventory
		WHERE owner = $1 AND ($2::bigint = 0 OR anomaly = $2)
		ORDER BY id ASC`

	// SQLUpdateStructureConfig is a compare-and-swap on version
	SQLUpdateStructureConfig = `
		UPDATE inventory SET configuration = $2, version = version + 1
		WHERE id = $1 AND version = $3`

	SQLInventoryExists = `SELECT EXISTS(SELECT 1 FROM inventory WHERE id = $1)`
)

// Classification queries
const (
	classificationColumns = `id, author, anomaly, content, media, classificationtype,
		classification_configuration, classification_parent, created_at`

	SQLSelectClassification = `SELECT ` + classificationColumns + ` FROM classifications WHERE id = $1`

	SQLSelectClassificationForUpdate = SQLSelectClassification + ` FOR UPDATE`

	SQLListClassifications = `
		SELECT ` + classificationColumns + ` FROM classifications
		WHERE ($1::text = '' OR author::text = $1::text)
		  AND ($2::text = '' OR classificationtype = $2::text)
		  AND ($3::bigint = 0 OR anomaly = $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`

	SQLInsertClassification = `
		INSERT INTO classifications
			(author, anomaly, content, media, classificationtype, classification_configuration, classification_parent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	SQLUpdateClassificationConfig = `UPDATE classifications SET classification_configuration = $2 WHERE id = $1`
)

// Submission ledger queries
const (
	SQLSelectSubmission = `SELECT classification_id FROM submissions WHERE author = $1 AND request_id = $2`

	// The primary key makes a second claimer wait on the first until it commits or rolls back
	SQLClaimSubmission = `
		INSERT INTO submissions (author, request_id) VALUES ($1, $2)
		ON CONFLICT (author, request_id) DO NOTHING`

	SQLCompleteSubmission = `UPDATE submissions SET classification_id = $3 WHERE author = $1 AND request_id = $2`
)

// Profile, link and social queries
const (
	SQLAddClassificationPoints = `
		INSERT INTO profiles (id, classification_points) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET classification_points = profiles.classification_points + EXCLUDED.classification_points`

	SQLSelectLinkedAnomaly = `
		SELECT id, author, anomaly_id, classification_id, automaton, created_at
		FROM linked_anomalies WHERE author = $1 AND anomaly_id = $2
		ORDER BY id ASC LIMIT 1`

	SQLDeleteLinkedAnomalies = `DELETE FROM linked_anomalies WHERE author = $1 AND anomaly_id = $2`

	SQLInsertVote = `
		INSERT INTO votes (user_id, classification_id, anomaly_id, vote_type)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, classification_id) DO NOTHING`

	SQLInsertComment = `
		INSERT INTO comments (author, classification_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	SQLListComments = `
		SELECT id, author, classification_id, content, created_at
		FROM comments WHERE classification_id = $1
		ORDER BY created_at ASC, id ASC`
)

// Mineral deposit queries
const (
	SQLInsertMineralDeposit = `
		INSERT INTO mineral_deposits (owner, anomaly, discovery, mineralconfiguration, location, rover_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	SQLListMineralDeposits = `
		SELECT id, owner, anomaly, discovery, mineralconfiguration, location, rover_name, created_at
		FROM mineral_deposits WHERE owner = $1
		ORDER BY created_at DESC, id DESC`
)

// Deployment queries
const (
	SQLListAnomaliesInSets = `
		SELECT id, content, anomalytype, anomaly_set, configuration, created_at
		FROM anomalies WHERE anomaly_set = ANY($1)
		ORDER BY id`

	SQLCountClassificationsOfTypes = `
		SELECT COUNT(*) FROM classifications
		WHERE author = $1 AND classificationtype = ANY($2) AND created_at >= $3`

	SQLResearchExists = `SELECT EXISTS(SELECT 1 FROM researched WHERE user_id = $1 AND tech_type = $2)`

	SQLInsertResearch = `
		INSERT INTO researched (user_id, tech_type) VALUES ($1, $2)
		ON CONFLICT (user_id, tech_type) DO NOTHING`

	SQLCountDeployments = `
		SELECT COUNT(DISTINCT created_at) FROM linked_anomalies
		WHERE author = $1 AND automaton = $2 AND created_at >= $3`

	SQLCountCommunityActions = `
		SELECT
			(SELECT COUNT(*) FROM comments cm JOIN classifications c ON c.id = cm.classification_id
			 WHERE cm.author = $1 AND c.author <> $1 AND cm.created_at >= $2),
			(SELECT COUNT(*) FROM votes v JOIN classifications c ON c.id = v.classification_id
			 WHERE v.user_id = $1 AND v.vote_type = 'up' AND c.author <> $1 AND v.created_at >= $2)`

	SQLInsertLinkedAnomaly = `
		INSERT INTO linked_anomalies (author, anomaly_id, classification_id, automaton)
		VALUES ($1, $2, $3, $4)`
)

// Error Messages - format strings wrap the underlying error with %w
const (
	ErrMsgGetAnomalyFailed           = "failed to get anomaly: %w"
	ErrMsgMissionLookupFailed        = "failed to look up mission: %w"
	ErrMsgInsertMissionFailed        = "failed to insert mission: %w"
	ErrMsgGetStructureFailed         = "failed to get structure: %w"
	ErrMsgUpdateStructureFailed      = "failed to update structure configuration: %w"
	ErrMsgDecodeConfigFailed         = "failed to decode configuration: %w"
	ErrMsgEncodeConfigFailed         = "failed to encode configuration: %w"
	ErrMsgGetClassificationFailed    = "failed to get classification: %w"
	ErrMsgListClassificationsFailed  = "failed to list classifications: %w"
	ErrMsgInsertClassificationFailed = "failed to insert classification: %w"
	ErrMsgUpdateClassificationFailed = "failed to update classification: %w"
	ErrMsgSubmissionLedgerFailed     = "failed to access submission ledger: %w"
	ErrMsgAddPointsFailed            = "failed to add classification points: %w"
	ErrMsgLinkedAnomalyFailed        = "failed to access linked anomalies: %w"
	ErrMsgVoteFailed                 = "failed to record vote: %w"
	ErrMsgCommentFailed              = "failed to access comments: %w"
	ErrMsgMineralDepositFailed       = "failed to access mineral deposits: %w"
	ErrMsgBeginTransactionFailed     = "failed to begin transaction: %w"
	ErrMsgListAnomaliesFailed        = "failed to list anomalies: %w"
	ErrMsgCountFailed                = "failed to count %s: %w"
	ErrMsgResearchFailed             = "failed to access research: %w"
	ErrMsgCommitFailed               = "failed to commit transaction: %w"
)
