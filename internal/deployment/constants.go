package deployment

import "time"

// Anomaly sets a telescope can be pointed at
const (
	SetDiskDetective        = "diskDetective"
	SetSuperWASPVariable    = "superwasp-variable"
	SetTelescopeSuperWASP   = "telescope-superwasp-variable"
	SetTelescopeTESS        = "telescope-tess"
	SetTelescopeMinorPlanet = "telescope-minorPlanet"
	SetActiveAsteroids      = "active-asteroids"
	SetTelescopeNGTS        = "telescope-ngts"
)

// Research that changes what a deployment can do
const (
	TechNGTSAccess     = "ngtsAccess"
	TechProbeReceptors = "probereceptors"
)

// Deployment limits
const (
	// DeploymentWindow is how far back deployments and community actions are counted
	DeploymentWindow = 7 * 24 * time.Hour

	// BaseDeploymentsPerWindow is the allowance before community credits
	BaseDeploymentsPerWindow = 1

	// UpvotesPerCredit upvotes on other people's work earn one extra deployment; each comment earns one
	UpvotesPerCredit = 3

	// MinorPlanetsForActiveAsteroids classifications unlock the active asteroid set
	MinorPlanetsForActiveAsteroids = 2

	DefaultMaxAnomalies  = 4
	UpgradedMaxAnomalies = 6

	MaxTechTypeLength = 64
)

// User-facing status messages
const (
	MsgEarnedDeploys   = "You have earned additional deploys by interacting with the community this week!"
	MsgAlreadyDeployed = "Telescope has already been deployed this week. Recalibrate & search again next week."
)

// Log messages
const (
	LogMsgDeployed      = "Telescope deployed"
	LogMsgResearched    = "Research recorded"
	LogMsgIDsTruncated  = "Deployment trimmed to the anomaly limit"
	LogMsgPublishFailed = "Failed to publish event"
)

// Error messages
const (
	ErrMsgUnknownDeploymentType = "unknown deployment type %q"
	ErrMsgNoAnomaliesSelected   = "no anomalies selected"
	ErrMsgNotDeployable         = "anomaly %d is not in a deployable set"
	ErrMsgInvalidTechType       = "invalid tech type"
)
