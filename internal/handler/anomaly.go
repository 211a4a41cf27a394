package handler

import (
	"net/http"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/repository"
	"github.com/osse101/StarSailors_Go/internal/storage"
)

// AnomalyResponse is an anomaly with its media resolved to public URLs
type AnomalyResponse struct {
	Anomaly  *domain.Anomaly `json:"anomaly"`
	ImageURL string          `json:"image_url"`
	Frames   []string        `json:"frames,omitempty"`
}

// AnomalyHandlers serves anomaly lookups
type AnomalyHandlers struct {
	repo repository.Anomaly
	urls storage.URLBuilder
}

// NewAnomalyHandlers creates anomaly handlers
func NewAnomalyHandlers(repo repository.Anomaly, urls storage.URLBuilder) *AnomalyHandlers {
	return &AnomalyHandlers{repo: repo, urls: urls}
}

// HandleGetAnomaly returns one anomaly with its image and frame URLs
// @Summary Get anomaly
// @Description Returns the anomaly and the public URLs of its image and any frame sequence
// @Tags anomalies
// @Produce json
// @Param id path int true "Anomaly ID"
// @Success 200 {object} AnomalyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /anomalies/{id} [get]
func (h *AnomalyHandlers) HandleGetAnomaly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := getPathID(w, r, "id")
		if !ok {
			return
		}

		a, err := h.repo.GetAnomaly(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAnomalyFailed, err)
			return
		}

		image, frames := h.urls.AnomalyMedia(*a)
		respondJSON(w, http.StatusOK, AnomalyResponse{Anomaly: a, ImageURL: image, Frames: frames})
	}
}
