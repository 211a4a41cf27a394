package handler

import (
	"net/http"

	"github.com/osse101/StarSailors_Go/internal/auth"
	"github.com/osse101/StarSailors_Go/internal/catalog"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/progression"
)

// WorkflowsResponse lists Tutorial/Live state per compatible workflow
type WorkflowsResponse struct {
	Workflows []progression.WorkflowStatus `json:"workflows"`
}

// CatalogResponse lists structures compatible with a planet type
type CatalogResponse struct {
	PlanetType string          `json:"planet_type"`
	Entries    []catalog.Entry `json:"entries"`
}

// UnlockRequest appends an identifier to a structure's unlocked list
type UnlockRequest struct {
	StructureItemID int    `json:"structure_item_id" validate:"required,gt=0"`
	Identifier      string `json:"identifier" validate:"required,max=100"`
}

// MissionCompleteResponse reports whether the completion row was new
type MissionCompleteResponse struct {
	Message   string `json:"message"`
	MissionID int64  `json:"mission_id"`
	Inserted  bool   `json:"inserted"`
}

// ProgressionHandlers contains HTTP handlers for the mission and unlock state machine
type ProgressionHandlers struct {
	service progression.Service
}

// NewProgressionHandlers creates new progression handlers
func NewProgressionHandlers(service progression.Service) *ProgressionHandlers {
	return &ProgressionHandlers{service: service}
}

// HandleGetWorkflows returns each compatible workflow's state on the active planet
// @Summary Get workflow states
// @Description Returns Tutorial or Live per workflow compatible with the active planet
// @Tags progression
// @Produce json
// @Param location query int true "Active planet anomaly ID"
// @Success 200 {object} WorkflowsResponse
// @Failure 401 {object} ErrorResponse
// @Router /progression/workflows [get]
func (h *ProgressionHandlers) HandleGetWorkflows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, ok := activeLocation(w, r, h.service)
		if !ok {
			return
		}

		states, err := h.service.WorkflowStates(r.Context(), auth.SessionFromContext(r.Context()), loc)
		if err != nil {
			respondServiceError(w, r, ErrMsgWorkflowsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, WorkflowsResponse{Workflows: states})
	}
}

// HandleGetCatalog returns the structures that can be deployed on the active planet
// @Summary Get compatible structure catalog
// @Tags progression
// @Produce json
// @Param location query int true "Active planet anomaly ID"
// @Param planet_type query string false "Overrides the active planet's type"
// @Success 200 {object} CatalogResponse
// @Failure 400 {object} ErrorResponse
// @Router /progression/catalog [get]
func (h *ProgressionHandlers) HandleGetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, ok := activeLocation(w, r, h.service)
		if !ok {
			return
		}
		loc.PlanetType = GetOptionalQueryParam(r, "planet_type", loc.PlanetType)

		entries, err := h.service.CompatibleCatalog(loc)
		if err != nil {
			respondServiceError(w, r, ErrMsgCatalogFailed, err)
			return
		}
		if entries == nil {
			entries = []catalog.Entry{}
		}
		respondJSON(w, http.StatusOK, CatalogResponse{PlanetType: loc.PlanetType, Entries: entries})
	}
}

// HandleUnlock unlocks a feature on one of the caller's structures
// @Summary Unlock feature
// @Description Appends the identifier to the structure's unlocked list with optimistic concurrency; repeated unlocks are no-ops
// @Tags progression
// @Accept json
// @Produce json
// @Param location query int true "Active planet anomaly ID"
// @Param request body UnlockRequest true "Unlock"
// @Success 200 {object} progression.UnlockResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /progression/unlock [post]
func (h *ProgressionHandlers) HandleUnlock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UnlockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unlock feature"); err != nil {
			return
		}
		loc, ok := activeLocation(w, r, h.service)
		if !ok {
			return
		}

		res, err := h.service.UnlockFeature(r.Context(), auth.SessionFromContext(r.Context()), loc, req.StructureItemID, req.Identifier)
		if err != nil {
			respondServiceError(w, r, ErrMsgUnlockFailed, err)
			return
		}

		log.Info("Unlock feature: success", "identifier", req.Identifier, "already_unlocked", res.AlreadyUnlocked)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleCompleteMission records a mission completion
// @Summary Complete mission
// @Tags progression
// @Produce json
// @Param mission path int true "Mission ID"
// @Success 201 {object} MissionCompleteResponse
// @Success 200 {object} MissionCompleteResponse "Already completed"
// @Failure 401 {object} ErrorResponse
// @Router /progression/missions/{mission}/complete [post]
func (h *ProgressionHandlers) HandleCompleteMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, ok := getPathID(w, r, "mission")
		if !ok {
			return
		}

		inserted, err := h.service.CompleteMission(r.Context(), auth.SessionFromContext(r.Context()), missionID)
		if err != nil {
			respondServiceError(w, r, ErrMsgCompleteMissionFailed, err)
			return
		}

		if inserted {
			respondJSON(w, http.StatusCreated, MissionCompleteResponse{Message: MsgMissionCompleted, MissionID: missionID, Inserted: true})
			return
		}
		respondJSON(w, http.StatusOK, MissionCompleteResponse{Message: MsgMissionAlready, MissionID: missionID})
	}
}

// HandleGetMission returns the caller's completion record for a mission
// @Summary Get mission completion
// @Tags progression
// @Produce json
// @Param mission path int true "Mission ID"
// @Success 200 {object} domain.Mission
// @Failure 404 {object} ErrorResponse
// @Router /progression/missions/{mission} [get]
func (h *ProgressionHandlers) HandleGetMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, ok := getPathID(w, r, "mission")
		if !ok {
			return
		}

		m, err := h.service.GetMission(r.Context(), auth.SessionFromContext(r.Context()), missionID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMissionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}
