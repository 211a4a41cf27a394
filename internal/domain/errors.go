package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session / precondition errors
	ErrMsgNoSession        = "no active session"
	ErrMsgNoActiveLocation = "no active location"
	ErrMsgInvalidToken     = "invalid session token"

	// Lookup errors
	ErrMsgAnomalyNotFound        = "anomaly not found"
	ErrMsgClassificationNotFound = "classification not found"
	ErrMsgStructureNotFound      = "structure not found"
	ErrMsgProfileNotFound        = "profile not found"
	ErrMsgMissionNotFound        = "mission not completed"

	// Structure errors
	ErrMsgStructureDepleted = "structure has no uses left"
	ErrMsgConfigConflict    = "configuration was modified concurrently"
	ErrMsgInvalidConfig     = "invalid configuration"

	// Submission errors
	ErrMsgInvalidSubmission = "invalid submission"
	ErrMsgAlreadyVoted      = "already voted"
	ErrMsgDuplicateRequest  = "request id already recorded"

	// Deployment errors
	ErrMsgAlreadyDeployed = "telescope already deployed this week"

	// Storage errors
	ErrMsgUploadFailed = "upload failed"
	ErrMsgImageFetch   = "failed to fetch base image"
	ErrMsgEncodeFailed = "failed to encode canvas"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNoSession        = errors.New(ErrMsgNoSession)
	ErrNoActiveLocation = errors.New(ErrMsgNoActiveLocation)
	ErrInvalidToken     = errors.New(ErrMsgInvalidToken)

	ErrAnomalyNotFound        = errors.New(ErrMsgAnomalyNotFound)
	ErrClassificationNotFound = errors.New(ErrMsgClassificationNotFound)
	ErrStructureNotFound      = errors.New(ErrMsgStructureNotFound)
	ErrProfileNotFound        = errors.New(ErrMsgProfileNotFound)
	ErrMissionNotFound        = errors.New(ErrMsgMissionNotFound)

	ErrStructureDepleted = errors.New(ErrMsgStructureDepleted)
	ErrConfigConflict    = errors.New(ErrMsgConfigConflict)
	ErrInvalidConfig     = errors.New(ErrMsgInvalidConfig)

	ErrInvalidSubmission = errors.New(ErrMsgInvalidSubmission)
	ErrAlreadyVoted      = errors.New(ErrMsgAlreadyVoted)
	ErrDuplicateRequest  = errors.New(ErrMsgDuplicateRequest)

	ErrAlreadyDeployed = errors.New(ErrMsgAlreadyDeployed)

	ErrUploadFailed = errors.New(ErrMsgUploadFailed)
	ErrImageFetch   = errors.New(ErrMsgImageFetch)
	ErrEncodeFailed = errors.New(ErrMsgEncodeFailed)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
