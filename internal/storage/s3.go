package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/osse101/StarSailors_Go/internal/domain"
	"github.com/osse101/StarSailors_Go/internal/logger"
)

// Uploader stores an object and returns its public URL
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error)
}

// putObjectAPI is the slice of the S3 client used here
type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// S3Options configures the S3-compatible storage gateway
type S3Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	PublicURL string
}

// S3Store uploads through the S3 protocol and serves objects from the public URL space
type S3Store struct {
	client putObjectAPI
	urls   URLBuilder
}

// NewS3Store builds a path-style client against the configured endpoint
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Store{client: client, urls: NewURLBuilder(opts.PublicURL)}, nil
}

// URLs exposes the public URL builder
func (s *S3Store) URLs() URLBuilder {
	return s.urls
}

// Upload puts the object and returns its public URL. Failures wrap domain.ErrUploadFailed.
func (s *S3Store) Upload(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		log.Error(LogMsgUploadFailed, "bucket", bucket, "key", key, "error", err)
		return "", fmt.Errorf("%w: %s/%s: %v", domain.ErrUploadFailed, bucket, key, err)
	}

	log.Debug(LogMsgUploaded, "bucket", bucket, "key", key, "bytes", len(body))
	return s.urls.Public(bucket, key), nil
}
