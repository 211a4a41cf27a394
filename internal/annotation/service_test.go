package annotation

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StarSailors_Go/internal/canvas"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/metrics"
	"github.com/osse101/StarSailors_Go/internal/storage"
)

const (
	userID    = "11111111-2222-4333-8444-555555555555"
	roverShot = int64(900)
	diskShot  = int64(901)
)

var session = domain.Session{UserID: userID}

type fakeAnomalies struct{}

func (fakeAnomalies) GetAnomaly(_ context.Context, id int64) (*domain.Anomaly, error) {
	switch id {
	case roverShot:
		return &domain.Anomaly{ID: id, AnomalyType: domain.ClassificationTypeAIForMars, AnomalySet: "automaton-aiForMars"}, nil
	case diskShot:
		return &domain.Anomaly{ID: id, AnomalySet: "telescope-diskDetective"}, nil
	}
	return nil, domain.ErrAnomalyNotFound
}

type fakeFetcher struct {
	urls []string
	err  error
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (image.Image, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 900, 300))
	for i := range img.Pix {
		img.Pix[i] = 0x40
	}
	return img, nil
}

type fakeUploader struct {
	bucket, key, contentType string
	body                     []byte
	err                      error
}

func (u *fakeUploader) Upload(_ context.Context, bucket, key string, body []byte, contentType string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.bucket, u.key, u.body, u.contentType = bucket, key, body, contentType
	return "https://cdn.example/storage/v1/object/public/" + bucket + "/" + key, nil
}

type fakeMinerals struct {
	deposits []domain.MineralDeposit
	err      error
}

func (m *fakeMinerals) InsertMineralDeposit(_ context.Context, d domain.MineralDeposit) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	d.ID = int64(len(m.deposits) + 1)
	m.deposits = append(m.deposits, d)
	return d.ID, nil
}

func (m *fakeMinerals) ListMineralDeposits(_ context.Context, owner string) ([]domain.MineralDeposit, error) {
	var out []domain.MineralDeposit
	for _, d := range m.deposits {
		if d.Owner == owner {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeClassifications records what would have been submitted
type fakeClassifications struct {
	classification.Service
	got      classification.SubmitRequest
	replayed bool
	err      error
	// recorded is what the ledger already holds for the request id
	recorded *classification.SubmitResult
}

func (f *fakeClassifications) Recorded(_ context.Context, _ domain.Session, _ string) (*classification.SubmitResult, bool, error) {
	return f.recorded, f.recorded != nil, nil
}

func (f *fakeClassifications) Submit(_ context.Context, s domain.Session, _ domain.Location, req classification.SubmitRequest) (*classification.SubmitResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.got = req
	return &classification.SubmitResult{
		Classification: &domain.Classification{ID: 4242, Author: s.UserID, AnomalyID: req.AnomalyID, Media: req.Media, ClassificationType: req.AnomalyType},
		Replayed:       f.replayed,
		FollowUpAfter:  domain.FollowUpPanelDelay,
	}, nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, e event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

type harness struct {
	svc      *service
	fetcher  *fakeFetcher
	uploader *fakeUploader
	minerals *fakeMinerals
	classes  *fakeClassifications
	bus      *recordingBus
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		fetcher:  &fakeFetcher{},
		uploader: &fakeUploader{},
		minerals: &fakeMinerals{},
		classes:  &fakeClassifications{},
		bus:      &recordingBus{},
	}
	h.svc = NewService(fakeAnomalies{}, h.minerals, storage.NewURLBuilder("https://cdn.example"), h.fetcher, h.uploader, h.classes, h.bus).(*service)
	h.svc.now = func() time.Time { return time.UnixMilli(1700000000123) }
	return h
}

func squareStroke(x0, y0, x1, y1 float64) []canvas.Event {
	return []canvas.Event{
		{Kind: canvas.EventPress, X: x0, Y: y0},
		{Kind: canvas.EventMove, X: x1, Y: y1},
		{Kind: canvas.EventRelease},
	}
}

func roverRequest() SaveRequest {
	events := append(squareStroke(10, 10, 60, 60), squareStroke(100, 20, 140, 80)...)
	return SaveRequest{
		AnomalyID: roverShot,
		Project:   canvas.ProjectAI4M,
		Settings:  Settings{Tool: canvas.ToolSquare, Category: "bedrock", LineWidth: 3},
		Events:    events,
	}
}

func TestSave_UploadsPNGToMediaBucket(t *testing.T) {
	h := newHarness(t)
	before := testutil.ToFloat64(metrics.AnnotationUploads.WithLabelValues(metrics.OutcomeSuccess))

	res, err := h.svc.Save(context.Background(), session, roverRequest())
	require.NoError(t, err)

	assert.Equal(t, storage.BucketMedia, h.uploader.bucket)
	assert.Equal(t, "1700000000123-"+userID+"-annotated-image.png", h.uploader.key)
	assert.Equal(t, storage.ContentTypePNG, h.uploader.contentType)
	assert.Equal(t, "https://cdn.example/storage/v1/object/public/media/"+h.uploader.key, res.URL)
	assert.Equal(t, len(h.uploader.body), res.Bytes)
	assert.Equal(t, []string{"bedrock", "bedrock"}, res.Categories)

	// 900x300 fits the 450x350 surface as 450x150
	assert.Equal(t, 450, res.Width)
	assert.Equal(t, 150, res.Height)
	decoded, err := png.Decode(bytes.NewReader(h.uploader.body))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 450, 150), decoded.Bounds())

	assert.Equal(t, []string{"https://cdn.example/storage/v1/object/public/telescope/automaton-aiForMars/900.jpeg"}, h.fetcher.urls)
	assert.Equal(t, []event.Type{event.AnnotationUploaded}, h.bus.types())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AnnotationUploads.WithLabelValues(metrics.OutcomeSuccess)))
}

func TestSave_DrawnPixelsUseCategoryColour(t *testing.T) {
	h := newHarness(t)
	res, err := h.svc.Save(context.Background(), session, roverRequest())
	require.NoError(t, err)
	require.NotZero(t, res.Bytes)

	img, err := png.Decode(bytes.NewReader(h.uploader.body))
	require.NoError(t, err)
	want, ok := canvas.ParseHexColor(canvas.ColorFor(canvas.ProjectAI4M, "bedrock"))
	require.True(t, ok)
	got := color.RGBAModel.Convert(img.At(10, 30)).(color.RGBA)
	assert.Equal(t, want, got, "left edge of the first square")
}

func TestSave_ExplicitDrawingsAndFrames(t *testing.T) {
	h := newHarness(t)
	start, end := canvas.Point{X: 5, Y: 5}, canvas.Point{X: 40, Y: 40}
	req := SaveRequest{
		AnomalyID: diskShot,
		Frame:     2,
		Project:   canvas.ProjectCustom,
		Drawings: []canvas.DrawingObject{
			{Type: canvas.ToolSquare, Category: "Custom", Color: "#FF4B39", Width: 2, StartPoint: &start, EndPoint: &end},
		},
	}
	res, err := h.svc.Save(context.Background(), session, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Custom"}, res.Categories)
	assert.Equal(t, []string{"https://cdn.example/storage/v1/object/public/telescope/telescope-diskDetective/901/3.png"}, h.fetcher.urls)

	req.Frame = 10
	_, err = h.svc.Save(context.Background(), session, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSave_Failures(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.svc.Save(context.Background(), domain.Session{}, roverRequest())
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("unknown anomaly", func(t *testing.T) {
		h := newHarness(t)
		req := roverRequest()
		req.AnomalyID = 1
		_, err := h.svc.Save(context.Background(), session, req)
		assert.ErrorIs(t, err, domain.ErrAnomalyNotFound)
	})

	t.Run("base image", func(t *testing.T) {
		h := newHarness(t)
		h.fetcher.err = domain.ErrImageFetch
		_, err := h.svc.Save(context.Background(), session, roverRequest())
		assert.ErrorIs(t, err, domain.ErrImageFetch)
		assert.Empty(t, h.uploader.key)
	})

	t.Run("bad tool", func(t *testing.T) {
		h := newHarness(t)
		req := roverRequest()
		req.Settings.Tool = "spray"
		_, err := h.svc.Save(context.Background(), session, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("upload", func(t *testing.T) {
		h := newHarness(t)
		h.uploader.err = domain.ErrUploadFailed
		before := testutil.ToFloat64(metrics.AnnotationUploads.WithLabelValues(metrics.OutcomeFailure))
		_, err := h.svc.Save(context.Background(), session, roverRequest())
		assert.ErrorIs(t, err, domain.ErrUploadFailed)
		assert.Empty(t, h.bus.types())
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.AnnotationUploads.WithLabelValues(metrics.OutcomeFailure)))
	})
}

func TestPreview_RejectsOverlongStrokes(t *testing.T) {
	h := newHarness(t)
	req := roverRequest()
	zigzag := canvas.DrawingObject{Type: canvas.ToolPen, Width: 2}
	for i := 0; i < 2000; i++ {
		zigzag.Points = append(zigzag.Points, canvas.Point{X: float64((i % 2) * 450), Y: 350})
	}
	req.Drawings = []canvas.DrawingObject{zigzag}

	_, err := h.svc.Preview(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreview_MatchesSavedBytes(t *testing.T) {
	h := newHarness(t)
	preview, err := h.svc.Preview(context.Background(), roverRequest())
	require.NoError(t, err)
	_, err = h.svc.Save(context.Background(), session, roverRequest())
	require.NoError(t, err)
	assert.Equal(t, h.uploader.body, preview, "rendering is deterministic")
}

func TestSave_CanvasBounds(t *testing.T) {
	h := newHarness(t)
	svc := NewService(fakeAnomalies{}, h.minerals, storage.NewURLBuilder("https://cdn.example"), h.fetcher, h.uploader, h.classes, h.bus,
		WithCanvasBounds(300, 300)).(*service)

	res, err := svc.Save(context.Background(), session, roverRequest())
	require.NoError(t, err)

	assert.Equal(t, 300, res.Width)
	assert.Equal(t, 100, res.Height)
}

func roverSubmit() SubmitRequest {
	return SubmitRequest{
		SaveRequest: roverRequest(),
		Classification: classification.SubmitRequest{
			RequestID:         "8a7c7d1e-96a3-4c6b-9d5b-1b0b7f2d4e10",
			AnomalyType:       domain.ClassificationTypeAIForMars,
			Media:             []string{"https://cdn.example/original.jpeg"},
			SelectedOptions:   map[string]map[string]bool{"0": {"4": true}},
			AnnotationOptions: []string{"rock-heavy"},
		},
		MineralWaypoint: &domain.Coordinates{X: 12, Y: 34},
	}
}

func TestSaveAndSubmit_RecordsDeposit(t *testing.T) {
	h := newHarness(t)
	loc := domain.Location{AnomalyID: 30}

	res, err := h.svc.SaveAndSubmit(context.Background(), session, loc, roverSubmit())
	require.NoError(t, err)

	got := h.classes.got
	assert.Equal(t, roverShot, got.AnomalyID)
	assert.Equal(t, []string{"https://cdn.example/original.jpeg", res.Upload.URL}, got.Media)
	assert.Equal(t, []string{"rock-heavy", "bedrock", "bedrock"}, got.AnnotationOptions)

	require.NotNil(t, res.Deposit)
	d := res.Deposit
	assert.Equal(t, int64(4242), d.Discovery)
	assert.Equal(t, userID, d.Owner)
	assert.Equal(t, DefaultDepositLocation, d.Location)
	assert.Equal(t, DefaultRoverName, d.RoverName)
	assert.Equal(t, "aluminum", d.Configuration.Type, "all-bedrock terrain")
	assert.Equal(t, &domain.Coordinates{X: 12, Y: 34}, d.Configuration.Coordinates)
	assert.Len(t, h.minerals.deposits, 1)

	assert.Equal(t, []event.Type{event.AnnotationUploaded, event.MineralDepositDiscovered}, h.bus.types())
}

func TestSaveAndSubmit_NoDeposit(t *testing.T) {
	t.Run("not a waypoint", func(t *testing.T) {
		h := newHarness(t)
		req := roverSubmit()
		req.MineralWaypoint = nil
		res, err := h.svc.SaveAndSubmit(context.Background(), session, domain.Location{}, req)
		require.NoError(t, err)
		assert.Nil(t, res.Deposit)
		assert.Empty(t, h.minerals.deposits)
	})

	t.Run("replayed submission", func(t *testing.T) {
		h := newHarness(t)
		h.classes.replayed = true
		res, err := h.svc.SaveAndSubmit(context.Background(), session, domain.Location{}, roverSubmit())
		require.NoError(t, err)
		assert.Nil(t, res.Deposit)
	})

	t.Run("deposit write fails", func(t *testing.T) {
		h := newHarness(t)
		h.minerals.err = errors.New("db down")
		res, err := h.svc.SaveAndSubmit(context.Background(), session, domain.Location{}, roverSubmit())
		require.NoError(t, err, "the classification already stands")
		assert.Nil(t, res.Deposit)
		assert.NotNil(t, res.Submission)
	})
}

func TestSaveAndSubmit_RecordedRequestSkipsUpload(t *testing.T) {
	h := newHarness(t)
	stored := "https://cdn.example/storage/v1/object/public/media/1-" + userID + "-annotated-image.png"
	h.classes.recorded = &classification.SubmitResult{
		Classification: &domain.Classification{
			ID:            77,
			Media:         []string{"https://cdn.example/original.jpeg", stored},
			Configuration: domain.ClassificationConfiguration{AnnotationOptions: []string{"bedrock"}},
		},
		Replayed: true,
	}

	res, err := h.svc.SaveAndSubmit(context.Background(), session, domain.Location{}, roverSubmit())
	require.NoError(t, err)

	assert.True(t, res.Submission.Replayed)
	assert.Equal(t, int64(77), res.Submission.Classification.ID)
	assert.Equal(t, stored, res.Upload.URL)
	assert.Empty(t, h.uploader.key, "nothing is uploaded for a replay")
	assert.Empty(t, h.fetcher.urls)
	assert.Empty(t, h.classes.got.RequestID, "submit is not called")
	assert.Empty(t, h.minerals.deposits)
}

func TestSaveAndSubmit_SubmitError(t *testing.T) {
	h := newHarness(t)
	h.classes.err = domain.ErrStructureDepleted
	_, err := h.svc.SaveAndSubmit(context.Background(), session, domain.Location{}, roverSubmit())
	assert.ErrorIs(t, err, domain.ErrStructureDepleted)
	assert.NotEmpty(t, h.uploader.key, "the upload is not rolled back")
}

func TestDeposits(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.Deposits(context.Background(), domain.Session{})
	assert.ErrorIs(t, err, domain.ErrNoSession)

	list, err := h.svc.Deposits(context.Background(), session)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = h.svc.SaveAndSubmit(context.Background(), session, domain.Location{}, roverSubmit())
	require.NoError(t, err)
	list, err = h.svc.Deposits(context.Background(), session)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
