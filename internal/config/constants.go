package config

import "time"

// DefaultMaxRequestBytes bounds request bodies, which carry whole pointer-event streams
const DefaultMaxRequestBytes = 4 << 20

// Database pool defaults
const (
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Object storage defaults
const (
	DefaultS3Region = "local"
	S3GatewayPath   = "/storage/v1/s3"
)

// Canvas bounds: the annotation surface never exceeds these dimensions
const (
	DefaultCanvasMaxWidth     = 450
	DefaultCanvasMaxHeight    = 350
	DefaultImageFetchMaxBytes = 10 << 20
	DefaultImageFetchTimeout  = 15 * time.Second
)

// Progression defaults
const (
	DefaultMissionCacheSize = 1000
	DefaultMissionCacheTTL  = 5 * time.Minute
	DefaultUnlockMaxRetries = 3
)
