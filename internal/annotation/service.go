// Package annotation turns a drawing session over an anomaly image into a stored PNG and,
// optionally, a classification carrying it.
package annotation

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/osse101/StarSailors_Go/internal/canvas"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/event"
	"github.com/osse101/StarSailors_Go/internal/logger"
	"github.com/osse101/StarSailors_Go/internal/metrics"
	"github.com/osse101/StarSailors_Go/internal/repository"
	"github.com/osse101/StarSailors_Go/internal/storage"
)

// Settings are the canvas controls in effect when a recorded stream starts
type Settings struct {
	Tool      canvas.Tool `json:"tool,omitempty" validate:"omitempty,oneof=pen square"`
	Category  string      `json:"category,omitempty"`
	LineWidth float64     `json:"line_width,omitempty" validate:"gte=0,lte=50"`
}

// SaveRequest describes one annotated image.
// Drawings are committed objects sent as-is; Events are replayed on a fresh canvas after them.
type SaveRequest struct {
	AnomalyID int64                  `json:"anomaly_id" validate:"required,gt=0"`
	Frame     int                    `json:"frame" validate:"gte=0"`
	Project   canvas.Project         `json:"project" validate:"required"`
	Settings  Settings               `json:"settings"`
	Drawings  []canvas.DrawingObject `json:"drawings,omitempty" validate:"max=2000,dive"`
	Events    []canvas.Event         `json:"events,omitempty" validate:"max=20000,dive"`
}

// SaveResult is the stored image
type SaveResult struct {
	URL        string   `json:"url"`
	Key        string   `json:"key"`
	Bytes      int      `json:"bytes"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Categories []string `json:"categories"`
}

// SubmitRequest saves an annotation and files a classification with it
type SubmitRequest struct {
	SaveRequest
	Classification classification.SubmitRequest `json:"classification"`
	// MineralWaypoint is set when the rover route marks this anomaly as a deposit site
	MineralWaypoint *domain.Coordinates `json:"mineral_waypoint,omitempty"`
	RoverName       string              `json:"rover_name,omitempty"`
}

// SubmitResult bundles the upload, the classification and any deposit it found
type SubmitResult struct {
	Upload     *SaveResult                  `json:"upload"`
	Submission *classification.SubmitResult `json:"submission"`
	Deposit    *domain.MineralDeposit       `json:"deposit,omitempty"`
}

// Service defines annotation operations
type Service interface {
	Preview(ctx context.Context, req SaveRequest) ([]byte, error)
	Save(ctx context.Context, session domain.Session, req SaveRequest) (*SaveResult, error)
	SaveAndSubmit(ctx context.Context, session domain.Session, loc domain.Location, req SubmitRequest) (*SubmitResult, error)
	Deposits(ctx context.Context, session domain.Session) ([]domain.MineralDeposit, error)
}

type service struct {
	anomalies       repository.Anomaly
	minerals        repository.Mineral
	urls            storage.URLBuilder
	fetcher         storage.ImageFetcher
	uploader        storage.Uploader
	classifications classification.Service
	bus             event.Bus
	now             func() time.Time
	maxW, maxH      int
}

// Option adjusts a service at construction
type Option func(*service)

// WithCanvasBounds caps the annotation surface; zero keeps the canvas defaults
func WithCanvasBounds(width, height int) Option {
	return func(s *service) {
		s.maxW, s.maxH = width, height
	}
}

// NewService creates a new annotation service
func NewService(
	anomalies repository.Anomaly,
	minerals repository.Mineral,
	urls storage.URLBuilder,
	fetcher storage.ImageFetcher,
	uploader storage.Uploader,
	classifications classification.Service,
	bus event.Bus,
	opts ...Option,
) Service {
	s := &service{
		anomalies:       anomalies,
		minerals:        minerals,
		urls:            urls,
		fetcher:         fetcher,
		uploader:        uploader,
		classifications: classifications,
		bus:             bus,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scene is everything needed to rasterize
type scene struct {
	base     image.Image
	size     image.Point
	drawings []canvas.DrawingObject
	current  *canvas.DrawingObject
}

func (s *service) buildScene(ctx context.Context, req SaveRequest) (*scene, error) {
	log := logger.FromContext(ctx)

	a, err := s.anomalies.GetAnomaly(ctx, req.AnomalyID)
	if err != nil {
		return nil, err
	}
	img, frames := s.urls.AnomalyMedia(*a)
	src := img
	if req.Frame > 0 {
		if req.Frame >= len(frames) {
			return nil, fmt.Errorf("%w: anomaly %d has %d frames", domain.ErrInvalidInput, a.ID, len(frames))
		}
		src = frames[req.Frame]
	}

	base, err := s.fetcher.Fetch(ctx, src)
	if err != nil {
		log.Warn(LogMsgBaseImageFailed, "anomaly", a.ID, "url", src, "error", err)
		return nil, err
	}

	c := canvas.New(req.Project)
	if req.Settings.Tool != "" {
		if err := c.SetTool(req.Settings.Tool); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	if req.Settings.Category != "" {
		c.SetCategory(req.Settings.Category)
	}
	if req.Settings.LineWidth > 0 {
		c.SetLineWidth(req.Settings.LineWidth)
	}
	if err := c.Replay(req.Events); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	drawings := append(append([]canvas.DrawingObject{}, req.Drawings...), c.Drawings()...)
	current := c.Current()
	if err := canvas.CheckScene(drawings, current); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	b := base.Bounds()
	return &scene{
		base:     base,
		size:     canvas.CanvasSize(b.Dx(), b.Dy(), s.maxW, s.maxH),
		drawings: drawings,
		current:  current,
	}, nil
}

func (s *service) render(ctx context.Context, sc *scene) ([]byte, error) {
	start := time.Now()
	png, err := canvas.RenderPNG(sc.base, sc.size, sc.drawings, sc.current)
	metrics.AnnotationRenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRenderFailed, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrEncodeFailed, err)
	}
	return png, nil
}

// Preview renders without storing anything
func (s *service) Preview(ctx context.Context, req SaveRequest) ([]byte, error) {
	sc, err := s.buildScene(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, sc)
}

// Save renders the annotation and uploads it to the media bucket.
// Failures are returned as they happen; nothing is retried or rolled back.
func (s *service) Save(ctx context.Context, session domain.Session, req SaveRequest) (*SaveResult, error) {
	log := logger.FromContext(ctx)

	if !session.Valid() {
		return nil, domain.ErrNoSession
	}

	sc, err := s.buildScene(ctx, req)
	if err != nil {
		return nil, err
	}
	png, err := s.render(ctx, sc)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(FileNameFormat, s.now().UnixMilli(), session.UserID)
	url, err := s.uploader.Upload(ctx, storage.BucketMedia, key, png, storage.ContentTypePNG)
	if err != nil {
		metrics.AnnotationUploads.WithLabelValues(metrics.OutcomeFailure).Inc()
		log.Error(LogMsgUploadFailed, "key", key, "error", err)
		return nil, err
	}
	metrics.AnnotationUploads.WithLabelValues(metrics.OutcomeSuccess).Inc()

	log.Info(LogMsgSaved, "anomaly", req.AnomalyID, "url", url, "bytes", len(png))
	if err := s.bus.Publish(ctx, event.NewAnnotationUploadedEvent(session.UserID, req.AnomalyID, url, len(png))); err != nil {
		log.Warn(LogMsgPublishFailed, "error", err)
	}

	all := sc.drawings
	if sc.current != nil {
		all = append(all, *sc.current)
	}
	return &SaveResult{
		URL:        url,
		Key:        key,
		Bytes:      len(png),
		Width:      sc.size.X,
		Height:     sc.size.Y,
		Categories: canvas.Categories(all),
	}, nil
}

// Deposits lists the user's discovered mineral deposits
func (s *service) Deposits(ctx context.Context, session domain.Session) ([]domain.MineralDeposit, error) {
	if !session.Valid() {
		return nil, domain.ErrNoSession
	}
	out, err := s.minerals.ListMineralDeposits(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.MineralDeposit{}
	}
	return out, nil
}
