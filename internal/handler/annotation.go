package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/StarSailors_Go/internal/annotation"
	"github.com/osse101/StarSailors_Go/internal/auth"
	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

// DepositListResponse wraps the caller's mineral deposits
type DepositListResponse struct {
	Deposits []domain.MineralDeposit `json:"deposits"`
}

// AnnotationHandlers serves the annotation canvas endpoints
type AnnotationHandlers struct {
	service   annotation.Service
	locations LocationResolver
}

// NewAnnotationHandlers creates annotation handlers
func NewAnnotationHandlers(service annotation.Service, locations LocationResolver) *AnnotationHandlers {
	return &AnnotationHandlers{service: service, locations: locations}
}

// HandlePreview renders an annotation without storing it
// @Summary Preview annotation
// @Description Renders the drawings over the anomaly's image and returns the PNG
// @Tags annotations
// @Accept json
// @Produce png
// @Param request body annotation.SaveRequest true "Annotation"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /annotations/preview [post]
func (h *AnnotationHandlers) HandlePreview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req annotation.SaveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Preview annotation"); err != nil {
			return
		}

		png, err := h.service.Preview(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ErrMsgPreviewFailed, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(png); err != nil {
			logger.FromContext(r.Context()).Error("Failed to write preview", "error", err)
		}
	}
}

// HandleSave renders an annotation and uploads it
// @Summary Save annotation
// @Tags annotations
// @Accept json
// @Produce json
// @Param request body annotation.SaveRequest true "Annotation"
// @Success 201 {object} annotation.SaveResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /annotations [post]
func (h *AnnotationHandlers) HandleSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req annotation.SaveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save annotation"); err != nil {
			return
		}

		res, err := h.service.Save(r.Context(), auth.SessionFromContext(r.Context()), req)
		if err != nil {
			respondServiceError(w, r, ErrMsgSaveAnnotationFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, res)
	}
}

// HandleSubmit uploads an annotation and files it as a classification
// @Summary Save and submit annotation
// @Description Uploads the rendered annotation, then submits a classification carrying its URL and drawn categories
// @Tags annotations
// @Accept json
// @Produce json
// @Param location query int false "Active planet anomaly ID"
// @Param request body annotation.SubmitRequest true "Annotation and classification"
// @Success 201 {object} annotation.SubmitResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /annotations/submit [post]
func (h *AnnotationHandlers) HandleSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req annotation.SubmitRequest
		if err := decodeRequest(r, w, &req, "Submit annotation"); err != nil {
			return
		}
		// The classification is always about the annotated anomaly
		req.Classification.AnomalyID = req.AnomalyID
		if err := validateRequest(w, &req); err != nil {
			return
		}
		loc, ok := activeLocation(w, r, h.locations)
		if !ok {
			return
		}

		res, err := h.service.SaveAndSubmit(r.Context(), auth.SessionFromContext(r.Context()), loc, req)
		if err != nil {
			respondServiceError(w, r, ErrMsgSubmitFailed, err)
			return
		}

		status := http.StatusCreated
		if res.Submission != nil && res.Submission.Replayed {
			status = http.StatusOK
		}
		respondJSON(w, status, res)
	}
}

// HandleListDeposits lists the caller's mineral deposits
// @Summary List mineral deposits
// @Tags minerals
// @Produce json
// @Success 200 {object} DepositListResponse
// @Failure 401 {object} ErrorResponse
// @Router /minerals/deposits [get]
func (h *AnnotationHandlers) HandleListDeposits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deposits, err := h.service.Deposits(r.Context(), auth.SessionFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, ErrMsgListDepositsFailed, err)
			return
		}
		if deposits == nil {
			deposits = []domain.MineralDeposit{}
		}
		respondJSON(w, http.StatusOK, DepositListResponse{Deposits: deposits})
	}
}
