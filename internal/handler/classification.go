package handler

import (
	"net/http"

	"github.com/osse101/StarSailors_Go/internal/auth"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

// FormResponse tells the client which input to present for an anomaly type
type FormResponse struct {
	AnomalyType      string                    `json:"anomaly_type"`
	Mode             classification.InputMode  `json:"mode"`
	Placeholder      string                    `json:"placeholder"`
	Groups           [][]classification.Option `json:"groups"`
	AdditionalFields []string                  `json:"additional_fields,omitempty"`
}

// ClassificationListResponse wraps a page of classifications
type ClassificationListResponse struct {
	Classifications []domain.Classification `json:"classifications"`
}

// CommentRequest is a new comment on a classification
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// CommentListResponse wraps a classification's comments
type CommentListResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// ClassificationHandlers contains HTTP handlers for classification submission and discussion
type ClassificationHandlers struct {
	service   classification.Service
	locations LocationResolver
}

// NewClassificationHandlers creates classification handlers
func NewClassificationHandlers(service classification.Service, locations LocationResolver) *ClassificationHandlers {
	return &ClassificationHandlers{service: service, locations: locations}
}

// HandleGetForm returns the input form for an anomaly type
// @Summary Get classification form
// @Description Returns the input mode, option groups and placeholder for an anomaly type
// @Tags classifications
// @Produce json
// @Param anomaly_type query string true "Anomaly type"
// @Success 200 {object} FormResponse
// @Failure 400 {object} ErrorResponse
// @Router /classifications/form [get]
func (h *ClassificationHandlers) HandleGetForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		anomalyType, ok := GetQueryParam(r, w, "anomaly_type")
		if !ok {
			return
		}

		form := h.service.Form(anomalyType)
		groups := form.Groups
		if groups == nil {
			groups = [][]classification.Option{}
		}
		respondJSON(w, http.StatusOK, FormResponse{
			AnomalyType:      anomalyType,
			Mode:             form.Mode(),
			Placeholder:      form.Placeholder,
			Groups:           groups,
			AdditionalFields: form.AdditionalFields,
		})
	}
}

// HandleSubmit files a classification. Retrying with the same request_id replays the first result.
// @Summary Submit classification
// @Description Validates the answer against the anomaly type's form, consumes a structure use and records the classification in one transaction
// @Tags classifications
// @Accept json
// @Produce json
// @Param location query int false "Active planet anomaly ID"
// @Param request body classification.SubmitRequest true "Classification"
// @Success 201 {object} classification.SubmitResult
// @Success 200 {object} classification.SubmitResult "Replayed"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /classifications [post]
func (h *ClassificationHandlers) HandleSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req classification.SubmitRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit classification"); err != nil {
			return
		}
		loc, ok := activeLocation(w, r, h.locations)
		if !ok {
			return
		}

		LogRequestFields(log, "anomaly_id", req.AnomalyID, "anomaly_type", req.AnomalyType, "request_id", req.RequestID)
		res, err := h.service.Submit(r.Context(), auth.SessionFromContext(r.Context()), loc, req)
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitFailed, err)
			return
		}

		status := http.StatusCreated
		if res.Replayed {
			status = http.StatusOK
		}
		respondJSON(w, status, res)
	}
}

// HandleList lists classifications newest first
// @Summary List classifications
// @Tags classifications
// @Produce json
// @Param author query string false "Author user ID"
// @Param type query string false "Classification type"
// @Param anomaly query int false "Anomaly ID"
// @Param limit query int false "Page size"
// @Success 200 {object} ClassificationListResponse
// @Router /classifications [get]
func (h *ClassificationHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.ClassificationFilter{
			Author:             GetOptionalQueryParam(r, "author", ""),
			ClassificationType: GetOptionalQueryParam(r, "type", ""),
			AnomalyID:          getQueryInt64(r, "anomaly"),
			Limit:              getQueryInt(r, "limit", classification.DefaultListLimit),
		}

		list, err := h.service.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgListFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, ClassificationListResponse{Classifications: list})
	}
}

// HandleGet returns one classification
// @Summary Get classification
// @Tags classifications
// @Produce json
// @Param id path int true "Classification ID"
// @Success 200 {object} domain.Classification
// @Failure 404 {object} ErrorResponse
// @Router /classifications/{id} [get]
func (h *ClassificationHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getPathID(w, r, "id")
		if !ok {
			return
		}
		c, err := h.service.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetClassification, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleVote upvotes a classification once per user
// @Summary Vote on classification
// @Tags classifications
// @Produce json
// @Param id path int true "Classification ID"
// @Success 200 {object} classification.VoteResult
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /classifications/{id}/vote [post]
func (h *ClassificationHandlers) HandleVote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getPathID(w, r, "id")
		if !ok {
			return
		}
		res, err := h.service.Vote(r.Context(), auth.SessionFromContext(r.Context()), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgVoteFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleAddComment comments on a classification
// @Summary Comment on classification
// @Tags classifications
// @Accept json
// @Produce json
// @Param id path int true "Classification ID"
// @Param request body CommentRequest true "Comment"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /classifications/{id}/comments [post]
func (h *ClassificationHandlers) HandleAddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getPathID(w, r, "id")
		if !ok {
			return
		}
		var req CommentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add comment"); err != nil {
			return
		}

		comment, err := h.service.AddComment(r.Context(), auth.SessionFromContext(r.Context()), id, req.Content)
		if err != nil {
			respondServiceError(w, r, ErrMsgCommentFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgCommentAdded, Data: comment})
	}
}

// HandleListComments lists a classification's comments oldest first
// @Summary List comments
// @Tags classifications
// @Produce json
// @Param id path int true "Classification ID"
// @Success 200 {object} CommentListResponse
// @Router /classifications/{id}/comments [get]
func (h *ClassificationHandlers) HandleListComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getPathID(w, r, "id")
		if !ok {
			return
		}
		comments, err := h.service.ListComments(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgListCommentsFailed, err)
			return
		}
		if comments == nil {
			comments = []domain.Comment{}
		}
		respondJSON(w, http.StatusOK, CommentListResponse{Comments: comments})
	}
}
