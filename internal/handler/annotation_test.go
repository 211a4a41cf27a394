package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/StarSailors_Go/internal/annotation"
	"github.com/osse101/StarSailors_Go/internal/canvas"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/domain"
)

func saveRequest() annotation.SaveRequest {
	return annotation.SaveRequest{
		AnomalyID: 900,
		Project:   canvas.ProjectAI4M,
		Settings:  annotation.Settings{Tool: canvas.ToolPen, Category: "sand", LineWidth: 2},
		Events: []canvas.Event{
			{Kind: canvas.EventPress, X: 10, Y: 10},
			{Kind: canvas.EventMove, X: 40, Y: 40},
			{Kind: canvas.EventRelease},
		},
	}
}

func TestHandlePreview(t *testing.T) {
	InitValidator()

	t.Run("Returns PNG", func(t *testing.T) {
		svc := &MockAnnotationService{}
		png := []byte("\x89PNG\r\n\x1a\nfake")
		svc.On("Preview", mock.Anything, saveRequest()).Return(png, nil)

		rec := serve(http.MethodPost, "/annotations/preview", NewAnnotationHandlers(svc, nil).HandlePreview(),
			newRequest(t, http.MethodPost, "/annotations/preview", saveRequest()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("Unknown Event Kind", func(t *testing.T) {
		svc := &MockAnnotationService{}
		req := saveRequest()
		req.Events = append(req.Events, canvas.Event{Kind: "teleport"})

		rec := serve(http.MethodPost, "/annotations/preview", NewAnnotationHandlers(svc, nil).HandlePreview(),
			newRequest(t, http.MethodPost, "/annotations/preview", req))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Preview", mock.Anything, mock.Anything)
	})

	t.Run("Oversized Drawings Rejected", func(t *testing.T) {
		far := canvas.Point{X: 1e8, Y: 10}
		cases := map[string]canvas.DrawingObject{
			"width":      {Type: canvas.ToolPen, Width: 1600, Points: []canvas.Point{{X: 10, Y: 10}, {X: 20, Y: 20}}},
			"coordinate": {Type: canvas.ToolPen, Width: 2, Points: []canvas.Point{{X: 10, Y: 10}, far}},
			"corner":     {Type: canvas.ToolSquare, Width: 2, StartPoint: &canvas.Point{}, EndPoint: &far},
			"tool":       {Type: "spray", Width: 2},
		}
		for name, d := range cases {
			t.Run(name, func(t *testing.T) {
				svc := &MockAnnotationService{}
				req := saveRequest()
				req.Drawings = []canvas.DrawingObject{d}

				rec := serve(http.MethodPost, "/annotations/preview", NewAnnotationHandlers(svc, nil).HandlePreview(),
					newRequest(t, http.MethodPost, "/annotations/preview", req))

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				svc.AssertNotCalled(t, "Preview", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Event Outside Coordinate Range", func(t *testing.T) {
		svc := &MockAnnotationService{}
		req := saveRequest()
		req.Events[1].X = -1e8

		rec := serve(http.MethodPost, "/annotations/preview", NewAnnotationHandlers(svc, nil).HandlePreview(),
			newRequest(t, http.MethodPost, "/annotations/preview", req))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Preview", mock.Anything, mock.Anything)
	})

	t.Run("Anomaly Missing", func(t *testing.T) {
		svc := &MockAnnotationService{}
		svc.On("Preview", mock.Anything, saveRequest()).Return(nil, domain.ErrAnomalyNotFound)

		rec := serve(http.MethodPost, "/annotations/preview", NewAnnotationHandlers(svc, nil).HandlePreview(),
			newRequest(t, http.MethodPost, "/annotations/preview", saveRequest()))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "No anomaly found")
	})
}

func TestHandleSave(t *testing.T) {
	InitValidator()

	t.Run("Uploaded", func(t *testing.T) {
		svc := &MockAnnotationService{}
		svc.On("Save", mock.Anything, testSession, saveRequest()).Return(&annotation.SaveResult{
			URL: "https://example.supabase.co/storage/v1/object/public/media/1-user-1-annotated-image.png", Width: 450, Height: 150,
		}, nil)

		rec := serve(http.MethodPost, "/annotations", NewAnnotationHandlers(svc, nil).HandleSave(),
			signedIn(newRequest(t, http.MethodPost, "/annotations", saveRequest())))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "annotated-image.png")
	})

	t.Run("Upload Failure", func(t *testing.T) {
		svc := &MockAnnotationService{}
		svc.On("Save", mock.Anything, testSession, saveRequest()).Return(nil, domain.ErrUploadFailed)

		rec := serve(http.MethodPost, "/annotations", NewAnnotationHandlers(svc, nil).HandleSave(),
			signedIn(newRequest(t, http.MethodPost, "/annotations", saveRequest())))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUploadFailedError)
	})

	t.Run("Missing Project", func(t *testing.T) {
		svc := &MockAnnotationService{}
		req := saveRequest()
		req.Project = ""

		rec := serve(http.MethodPost, "/annotations", NewAnnotationHandlers(svc, nil).HandleSave(),
			signedIn(newRequest(t, http.MethodPost, "/annotations", req)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"project":"This field is required"`)
	})
}

func TestHandleAnnotationSubmit(t *testing.T) {
	InitValidator()

	body := annotation.SubmitRequest{
		SaveRequest: saveRequest(),
		Classification: classification.SubmitRequest{
			RequestID:   testRequestID,
			AnomalyType: domain.ClassificationTypeAIForMars,
		},
		MineralWaypoint: &domain.Coordinates{X: 12, Y: 34},
	}

	t.Run("Classification Inherits Anomaly", func(t *testing.T) {
		svc := &MockAnnotationService{}
		locs := &MockProgressionService{}
		locs.On("ResolveLocation", mock.Anything, int64(30)).Return(mars, nil)
		svc.On("SaveAndSubmit", mock.Anything, testSession, mars, mock.MatchedBy(func(r annotation.SubmitRequest) bool {
			return r.Classification.AnomalyID == 900 && r.MineralWaypoint != nil
		})).Return(&annotation.SubmitResult{
			Upload:     &annotation.SaveResult{URL: "u"},
			Submission: &classification.SubmitResult{Classification: &domain.Classification{ID: 41}},
			Deposit:    &domain.MineralDeposit{ID: 7},
		}, nil)

		rec := serve(http.MethodPost, "/annotations/submit", NewAnnotationHandlers(svc, locs).HandleSubmit(),
			signedIn(newRequest(t, http.MethodPost, "/annotations/submit?location=30", body)))

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"deposit":{"id":7`)
		svc.AssertExpectations(t)
	})

	t.Run("Replay", func(t *testing.T) {
		svc := &MockAnnotationService{}
		locs := &MockProgressionService{}
		locs.On("ResolveLocation", mock.Anything, int64(30)).Return(mars, nil)
		svc.On("SaveAndSubmit", mock.Anything, testSession, mars, mock.Anything).Return(&annotation.SubmitResult{
			Upload:     &annotation.SaveResult{URL: "u"},
			Submission: &classification.SubmitResult{Classification: &domain.Classification{ID: 41}, Replayed: true},
		}, nil)

		rec := serve(http.MethodPost, "/annotations/submit", NewAnnotationHandlers(svc, locs).HandleSubmit(),
			signedIn(newRequest(t, http.MethodPost, "/annotations/submit?location=30", body)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Classification Needs Request ID", func(t *testing.T) {
		svc := &MockAnnotationService{}
		bad := body
		bad.Classification.RequestID = ""

		rec := serve(http.MethodPost, "/annotations/submit", NewAnnotationHandlers(svc, nil).HandleSubmit(),
			signedIn(newRequest(t, http.MethodPost, "/annotations/submit", bad)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"requestid"`)
	})
}

func TestHandleListDeposits(t *testing.T) {
	svc := &MockAnnotationService{}
	svc.On("Deposits", mock.Anything, testSession).Return(nil, nil)
	svc.On("Deposits", mock.Anything, domain.Session{}).Return(nil, domain.ErrNoSession)
	h := NewAnnotationHandlers(svc, nil).HandleListDeposits()

	rec := serve(http.MethodGet, "/minerals/deposits", h, signedIn(newRequest(t, http.MethodGet, "/minerals/deposits", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deposits":[]}`, rec.Body.String())

	rec = serve(http.MethodGet, "/minerals/deposits", h, newRequest(t, http.MethodGet, "/minerals/deposits", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
