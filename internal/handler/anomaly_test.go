package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/storage"
)

const storageBase = "https://example.supabase.co"

func TestHandleGetAnomaly(t *testing.T) {
	repo := &MockAnomalyRepo{}
	repo.On("GetAnomaly", mock.Anything, int64(900)).Return(&domain.Anomaly{ID: 900, AnomalyType: "roverImg", AnomalySet: "automaton-aiForMars"}, nil)
	repo.On("GetAnomaly", mock.Anything, int64(901)).Return(&domain.Anomaly{ID: 901, AnomalySet: "telescope-dailyMinorPlanet"}, nil)
	repo.On("GetAnomaly", mock.Anything, int64(404)).Return(nil, domain.ErrAnomalyNotFound)
	h := NewAnomalyHandlers(repo, storage.NewURLBuilder(storageBase)).HandleGetAnomaly()

	t.Run("Single Image", func(t *testing.T) {
		rec := serve(http.MethodGet, "/anomalies/{id}", h, newRequest(t, http.MethodGet, "/anomalies/900", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decode[AnomalyResponse](t, rec)
		assert.Equal(t, storageBase+"/storage/v1/object/public/telescope/automaton-aiForMars/900.jpeg", resp.ImageURL)
		assert.Empty(t, resp.Frames)
	})

	t.Run("Frame Sequence", func(t *testing.T) {
		rec := serve(http.MethodGet, "/anomalies/{id}", h, newRequest(t, http.MethodGet, "/anomalies/901", nil))

		resp := decode[AnomalyResponse](t, rec)
		assert.Len(t, resp.Frames, 4)
		assert.Equal(t, resp.Frames[0], resp.ImageURL)
		assert.Contains(t, resp.Frames[3], "/telescope-dailyMinorPlanet/901/4.png")
	})

	t.Run("Not Found", func(t *testing.T) {
		rec := serve(http.MethodGet, "/anomalies/{id}", h, newRequest(t, http.MethodGet, "/anomalies/404", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"No anomaly found"}`, rec.Body.String())
	})
}
