package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameClassificationsSubmitted = "classifications_submitted_total"
	MetricNameSubmissionReplays        = "classification_submission_replays_total"
	MetricNameStructureUsesConsumed    = "structure_uses_consumed_total"
	MetricNameVotesCast                = "classification_votes_total"
	MetricNameCommentsAdded            = "comments_added_total"
	MetricNameAnnotationUploads        = "annotation_uploads_total"
	MetricNameAnnotationUploadBytes    = "annotation_upload_bytes"
	MetricNameAnnotationRenderDuration = "annotation_render_duration_seconds"
	MetricNameFeaturesUnlocked         = "features_unlocked_total"
	MetricNameUnlockConflicts          = "unlock_cas_conflicts_total"
	MetricNameMissionsCompleted        = "missions_completed_total"
	MetricNameMineralDeposits          = "mineral_deposits_discovered_total"
	MetricNameTelescopeDeployments     = "telescope_deployments_total"
	MetricNameAnomaliesLinked          = "telescope_anomalies_linked_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextClassificationsSubmitted = "Total number of new classifications by type"
	HelpTextSubmissionReplays        = "Total number of submissions answered from the idempotency ledger"
	HelpTextStructureUsesConsumed    = "Total structure uses consumed by classifications"
	HelpTextVotesCast                = "Total number of classification votes"
	HelpTextCommentsAdded            = "Total number of classification comments"
	HelpTextAnnotationUploads        = "Total annotation uploads by outcome"
	HelpTextAnnotationUploadBytes    = "Size of uploaded annotation PNGs in bytes"
	HelpTextAnnotationRenderDuration = "Time spent rasterizing an annotation in seconds"
	HelpTextFeaturesUnlocked         = "Total features newly unlocked on structures"
	HelpTextUnlockConflicts          = "Total compare-and-swap misses while unlocking features"
	HelpTextMissionsCompleted        = "Total missions newly completed"
	HelpTextMineralDeposits          = "Total mineral deposits discovered by type"
	HelpTextTelescopeDeployments     = "Total telescope deployments by deployment type"
	HelpTextAnomaliesLinked          = "Total anomalies linked to users by telescope deployments"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelOutcome    = "outcome"
	LabelStructure  = "structure"
	LabelIdentifier = "identifier"
	LabelMineral    = "mineral"
	LabelDeployment = "deployment"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RenderLatencyBuckets covers rasterization of a canvas-sized surface
var RenderLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25}

// UploadSizeBuckets spans 1KiB to 4MiB
var UploadSizeBuckets = []float64{1 << 10, 4 << 10, 16 << 10, 64 << 10, 256 << 10, 1 << 20, 4 << 20}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// unmatchedRoute labels requests that did not hit a registered route
const unmatchedRoute = "unmatched"
