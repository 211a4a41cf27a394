package storage

import "github.com/osse101/StarSailors_Go/internal/domain"

// Buckets
const (
	BucketMedia     = domain.BucketMedia
	BucketAnomalies = domain.BucketAnomalies
	BucketTelescope = "telescope"
	BucketClouds    = "clouds"
)

// ContentTypePNG is the only content type annotations are stored as
const ContentTypePNG = "image/png"

// Log messages
const (
	LogMsgUploadFailed  = "Object upload failed"
	LogMsgUploaded      = "Object uploaded"
	LogMsgFetchFailed   = "Image fetch failed"
	LogMsgImageTooLarge = "Image exceeds size limit"
)
