package handler

import (
	"net/http"

	"github.com/osse101/StarSailors_Go/internal/auth"
	"github.com/osse101/StarSailors_Go/internal/deployment"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/storage"
)

// DeployableAnomaliesResponse lists what a telescope deployment may target
type DeployableAnomaliesResponse struct {
	DeploymentType deployment.Type   `json:"deployment_type"`
	Anomalies      []AnomalyResponse `json:"anomalies"`
}

// ResearchRequest records an unlocked tech
type ResearchRequest struct {
	TechType string `json:"tech_type" validate:"required,max=64"`
}

// ResearchResponse reports whether the research row was new
type ResearchResponse struct {
	TechType string `json:"tech_type"`
	Inserted bool   `json:"inserted"`
}

// DeploymentHandlers serves telescope deployments
type DeploymentHandlers struct {
	service deployment.Service
	urls    storage.URLBuilder
}

// NewDeploymentHandlers creates deployment handlers
func NewDeploymentHandlers(service deployment.Service, urls storage.URLBuilder) *DeploymentHandlers {
	return &DeploymentHandlers{service: service, urls: urls}
}

// HandleListAnomalies returns the anomalies a deployment of the requested type can target
// @Summary List deployable anomalies
// @Description Planetary sets grow with minor planet classifications and NGTS research
// @Tags deployment
// @Produce json
// @Param deployment_type query string true "stellar or planetary"
// @Success 200 {object} DeployableAnomaliesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /deploy/telescope/anomalies [get]
func (h *DeploymentHandlers) HandleListAnomalies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "deployment_type")
		if !ok {
			return
		}
		dtype := deployment.Type(raw)

		anomalies, err := h.service.Anomalies(r.Context(), auth.SessionFromContext(r.Context()), dtype)
		if err != nil {
			respondServiceError(w, r, ErrMsgDeployableFailed, err)
			return
		}

		resp := DeployableAnomaliesResponse{DeploymentType: dtype, Anomalies: make([]AnomalyResponse, 0, len(anomalies))}
		for i := range anomalies {
			image, frames := h.urls.AnomalyMedia(anomalies[i])
			resp.Anomalies = append(resp.Anomalies, AnomalyResponse{Anomaly: &anomalies[i], ImageURL: image, Frames: frames})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleStatus returns the caller's weekly deployment allowance
// @Summary Get telescope deployment status
// @Description One deployment per week plus one per comment and one per three upvotes on other people's classifications
// @Tags deployment
// @Produce json
// @Success 200 {object} deployment.Status
// @Failure 401 {object} ErrorResponse
// @Router /deploy/telescope/status [get]
func (h *DeploymentHandlers) HandleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := h.service.Status(r.Context(), auth.SessionFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, ErrMsgDeployStatusFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, st)
	}
}

// HandleSkillProgress returns the caller's telescope and weather skill counts
// @Summary Get skill progress
// @Tags deployment
// @Produce json
// @Success 200 {object} deployment.SkillProgress
// @Failure 401 {object} ErrorResponse
// @Router /deploy/telescope/skills [get]
func (h *DeploymentHandlers) HandleSkillProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.service.SkillProgress(r.Context(), auth.SessionFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, ErrMsgSkillProgressFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleDeploy links the selected anomalies to the caller
// @Summary Deploy telescope
// @Description Duplicate ids are dropped and the selection is cut to 4, or 6 with the receptor upgrade
// @Tags deployment
// @Accept json
// @Produce json
// @Param request body deployment.DeployRequest true "Deployment"
// @Success 201 {object} deployment.DeployResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /deploy/telescope [post]
func (h *DeploymentHandlers) HandleDeploy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req deployment.DeployRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deploy telescope"); err != nil {
			return
		}

		res, err := h.service.Deploy(r.Context(), auth.SessionFromContext(r.Context()), req)
		if err != nil {
			respondServiceError(w, r, ErrMsgDeployFailed, err)
			return
		}

		log.Info("Deploy telescope: success", "deployment_type", req.DeploymentType, "inserted", res.Inserted)
		respondJSON(w, http.StatusCreated, res)
	}
}

// HandleResearch records an unlocked tech for the caller
// @Summary Record research
// @Tags deployment
// @Accept json
// @Produce json
// @Param request body ResearchRequest true "Research"
// @Success 201 {object} ResearchResponse
// @Success 200 {object} ResearchResponse "Already researched"
// @Failure 400 {object} ErrorResponse
// @Router /research [post]
func (h *DeploymentHandlers) HandleResearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResearchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record research"); err != nil {
			return
		}

		inserted, err := h.service.Research(r.Context(), auth.SessionFromContext(r.Context()), req.TechType)
		if err != nil {
			respondServiceError(w, r, ErrMsgResearchFailed, err)
			return
		}

		status := http.StatusOK
		if inserted {
			status = http.StatusCreated
		}
		respondJSON(w, status, ResearchResponse{TechType: req.TechType, Inserted: inserted})
	}
}
