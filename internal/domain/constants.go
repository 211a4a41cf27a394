package domain

import "time"

// Structure item identifiers - stable ids from the item catalog
const (
	ItemAutomatonStation = 3102
	ItemTelescope        = 3103
	ItemBiodome          = 3104
	ItemWeatherBalloon   = 3105
	ItemResearchStation  = 3106
	ItemLaunchpad        = 3107
	ItemFirstRocket      = 3108
	ItemPhysicsLab       = 31010
)

// Item categories as stored in the item catalog
const (
	ItemCategoryStructure = "Structure"
	ItemCategoryMinerals  = "Minerals"
	ItemCategoryAutomaton = "Automaton"
)

// Classification types that carry extra behaviour
const (
	ClassificationTypeCloud        = "cloud"
	ClassificationTypeAIForMars    = "automaton-aiForMars"
	ClassificationTypePlanet       = "planet"
	ClassificationTypeRoverImg     = "roverImg"
	ClassificationTypePlanetFour   = "satellite-planetFour"
	ClassificationTypeJovianVortex = "lidar-jovianVortexHunter"
	ClassificationTypeMinorPlanet  = "telescope-minorPlanet"
	ClassificationTypeSunspot      = "sunspot"
	ClassificationTypeBurrowingOwl = "zoodex-burrowingOwl"
	ClassificationTypeNestQuestGo  = "zoodex-nestQuestGo"
)

// Storage buckets
const (
	BucketMedia     = "media"
	BucketAnomalies = "anomalies"
)

// Reward bookkeeping
const (
	// ClassificationPointsPerSubmission is added to the author's profile on each new classification
	ClassificationPointsPerSubmission = 1

	// StructureUsesPerSubmission is removed from the backing structure on each new classification
	StructureUsesPerSubmission = 1

	// FollowUpPanelDelay is how long the client waits after a submission before revealing onboarding
	FollowUpPanelDelay = 3 * time.Second
)

// User-facing fallback strings
const (
	MsgLoading        = "Loading..."
	MsgNoAnomalyFound = "No anomaly found"
	MsgOwlsSleeping   = "The owls are sleeping, try again later"
)
