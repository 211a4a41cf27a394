package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Classification Metrics
var (
	ClassificationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClassificationsSubmitted,
			Help: HelpTextClassificationsSubmitted,
		},
		[]string{LabelType},
	)

	SubmissionReplays = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSubmissionReplays,
			Help: HelpTextSubmissionReplays,
		},
	)

	StructureUsesConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStructureUsesConsumed,
			Help: HelpTextStructureUsesConsumed,
		},
		[]string{LabelStructure},
	)

	VotesCast = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVotesCast,
			Help: HelpTextVotesCast,
		},
	)

	CommentsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCommentsAdded,
			Help: HelpTextCommentsAdded,
		},
	)
)

// Annotation Metrics
var (
	AnnotationUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAnnotationUploads,
			Help: HelpTextAnnotationUploads,
		},
		[]string{LabelOutcome},
	)

	AnnotationUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAnnotationUploadBytes,
			Help:    HelpTextAnnotationUploadBytes,
			Buckets: UploadSizeBuckets,
		},
	)

	AnnotationRenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAnnotationRenderDuration,
			Help:    HelpTextAnnotationRenderDuration,
			Buckets: RenderLatencyBuckets,
		},
	)
)

// Progression Metrics
var (
	FeaturesUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFeaturesUnlocked,
			Help: HelpTextFeaturesUnlocked,
		},
		[]string{LabelStructure, LabelIdentifier},
	)

	UnlockConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnlockConflicts,
			Help: HelpTextUnlockConflicts,
		},
	)

	MissionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMissionsCompleted,
			Help: HelpTextMissionsCompleted,
		},
	)

	MineralDeposits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMineralDeposits,
			Help: HelpTextMineralDeposits,
		},
		[]string{LabelMineral},
	)
)

// Deployment Metrics
var (
	TelescopeDeployments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTelescopeDeployments,
			Help: HelpTextTelescopeDeployments,
		},
		[]string{LabelDeployment},
	)

	AnomaliesLinked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAnomaliesLinked,
			Help: HelpTextAnomaliesLinked,
		},
	)
)
