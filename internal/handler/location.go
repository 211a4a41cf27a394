package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

const (
	// LocationQueryParam and LocationHeader carry the anomaly id of the caller's active planet
	LocationQueryParam = "location"
	LocationHeader     = "X-Active-Location"
)

// LocationResolver turns an anomaly id into the caller's active location
type LocationResolver interface {
	ResolveLocation(ctx context.Context, anomalyID int64) (domain.Location, error)
}

// activeLocation reads the caller's active planet from the query or header.
// No location yields the zero Location; services that need one reject it.
// If ok is false, the HTTP response has already been written and the handler should return.
func activeLocation(w http.ResponseWriter, r *http.Request, resolver LocationResolver) (domain.Location, bool) {
	raw := r.URL.Query().Get(LocationQueryParam)
	if raw == "" {
		raw = r.Header.Get(LocationHeader)
	}
	if raw == "" {
		return domain.Location{}, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLocation)
		return domain.Location{}, false
	}
	loc, err := resolver.ResolveLocation(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgInvalidLocation, err)
		return domain.Location{}, false
	}
	return loc, true
}
