package storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

const publicObjectPath = "/storage/v1/object/public/"

// URLBuilder derives public object URLs from the hosted backend root
type URLBuilder struct {
	base string
}

// NewURLBuilder trims trailing slashes from base
func NewURLBuilder(base string) URLBuilder {
	return URLBuilder{base: strings.TrimRight(base, "/")}
}

// Public returns {base}/storage/v1/object/public/{bucket}/{key}
func (b URLBuilder) Public(bucket, key string) string {
	return b.base + publicObjectPath + bucket + "/" + escapeKey(key)
}

// AnomalyMedia resolves the image and any frame sequence for an anomaly from its set's layout
func (b URLBuilder) AnomalyMedia(a domain.Anomaly) (image string, frames []string) {
	layout := LayoutFor(a.AnomalySet)
	if layout.Frames == 0 {
		return b.Public(layout.Bucket, joinKey(layout.prefix(a.AnomalySet), fmt.Sprintf("%d.%s", a.ID, layout.Ext))), nil
	}

	frames = make([]string, 0, layout.Frames)
	for n := 1; n <= layout.Frames; n++ {
		frames = append(frames, b.Public(layout.Bucket, joinKey(layout.prefix(a.AnomalySet), fmt.Sprintf("%d/%d.png", a.ID, n))))
	}
	return frames[0], frames
}

func joinKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
