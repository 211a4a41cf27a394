package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"time"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

// ImageFetcher loads and decodes base images for annotation
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// HTTPFetcher downloads images with a byte limit
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPFetcher creates a fetcher with a per-request timeout
func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

var errTooLarge = errors.New("image exceeds size limit")

// Fetch GETs the URL and decodes it. All failures wrap domain.ErrImageFetch.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		log.Warn(LogMsgFetchFailed, "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn(LogMsgFetchFailed, "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrImageFetch, resp.StatusCode)
	}

	// Read one extra byte to tell "exactly at the limit" from "over it"
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	if int64(len(data)) > f.maxBytes {
		log.Warn(LogMsgImageTooLarge, "url", url, "limit", f.maxBytes)
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, errTooLarge)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrImageFetch, err)
	}
	return img, nil
}
