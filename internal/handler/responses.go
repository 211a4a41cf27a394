package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and answers with the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+": service error", "error", err)
	} else {
		log.Warn(opName+": request rejected", "error", err, "status", status)
	}
	if msg == ErrMsgGenericServerError {
		msg = opName
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNoSessionError        = "Sign in to continue"
	ErrMsgInvalidTokenError     = "Invalid session token"
	ErrMsgNoActiveLocationError = "Choose an active planet first"

	ErrMsgAnomalyNotFoundError        = "No anomaly found"
	ErrMsgClassificationNotFoundError = "Classification not found"
	ErrMsgStructureNotFoundError      = "You don't have that structure on this planet"
	ErrMsgMissionNotFoundError        = "Mission not completed"
	ErrMsgProfileNotFoundError        = "Profile not found"

	ErrMsgStructureDepletedError = "This structure has no uses left"
	ErrMsgConfigConflictError    = "The owls are sleeping, try again later"
	ErrMsgInvalidConfigError     = "That unlock is not valid for this structure"

	ErrMsgInvalidSubmissionError = "Please check your classification and try again"
	ErrMsgAlreadyVotedError      = "You have already voted"
	ErrMsgDuplicateRequestError  = "This request is already being processed"
	ErrMsgAlreadyDeployedError   = "Telescope has already been deployed this week. Recalibrate & search again next week."

	ErrMsgUploadFailedError = "Upload failed. Please try again."
	ErrMsgImageFetchError   = "Could not load the image for this anomaly"

	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoSession):
		return http.StatusUnauthorized, ErrMsgNoSessionError
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, ErrMsgInvalidTokenError
	case errors.Is(err, domain.ErrNoActiveLocation):
		return http.StatusBadRequest, ErrMsgNoActiveLocationError

	case errors.Is(err, domain.ErrAnomalyNotFound):
		return http.StatusNotFound, ErrMsgAnomalyNotFoundError
	case errors.Is(err, domain.ErrClassificationNotFound):
		return http.StatusNotFound, ErrMsgClassificationNotFoundError
	case errors.Is(err, domain.ErrStructureNotFound):
		return http.StatusNotFound, ErrMsgStructureNotFoundError
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, ErrMsgMissionNotFoundError
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError

	case errors.Is(err, domain.ErrStructureDepleted):
		return http.StatusConflict, ErrMsgStructureDepletedError
	case errors.Is(err, domain.ErrConfigConflict):
		return http.StatusConflict, ErrMsgConfigConflictError
	case errors.Is(err, domain.ErrAlreadyVoted):
		return http.StatusConflict, ErrMsgAlreadyVotedError
	case errors.Is(err, domain.ErrDuplicateRequest):
		return http.StatusConflict, ErrMsgDuplicateRequestError
	case errors.Is(err, domain.ErrAlreadyDeployed):
		return http.StatusConflict, ErrMsgAlreadyDeployedError
	case errors.Is(err, domain.ErrInvalidConfig):
		return http.StatusBadRequest, ErrMsgInvalidConfigError
	case errors.Is(err, domain.ErrInvalidSubmission):
		return http.StatusBadRequest, ErrMsgInvalidSubmissionError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError

	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusBadGateway, ErrMsgUploadFailedError
	case errors.Is(err, domain.ErrImageFetch):
		return http.StatusBadGateway, ErrMsgImageFetchError
	}

	// Store failures, encoder failures and anything unrecognised stay opaque
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
