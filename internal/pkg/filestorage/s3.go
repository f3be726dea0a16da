package filestorage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/takeuforward/portal/internal/domain"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// S3Config holds the settings for an S3 compatible bucket
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS, set for MinIO and similar
	AccessKey string
	SecretKey string
	Prefix    string
	PublicURL string // optional override for object URLs
}

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage stores files in an S3 bucket.
type S3Storage struct {
	client s3API
	cfg    S3Config
}

// NewS3Storage builds the client from static credentials when provided and the default chain otherwise
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage requires a bucket")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("S3 storage configured")
	return newS3Storage(client, cfg), nil
}

func newS3Storage(client s3API, cfg S3Config) *S3Storage {
	return &S3Storage{client: client, cfg: cfg}
}

// Save uploads the body as a new object
func (s *S3Storage) Save(ctx context.Context, upload Upload) (*domain.StoredFile, error) {
	key := domain.NewObjectKey(s.cfg.Prefix, upload.FileName)

	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        upload.Body,
		ContentType: aws.String(upload.ContentType),
	}
	if upload.Size > 0 {
		in.ContentLength = aws.Int64(upload.Size)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		logger.Error().Err(err).Str("bucket", s.cfg.Bucket).Str("key", key).Msg("Failed to put object")
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &domain.StoredFile{
		Key:         key,
		URL:         s.objectURL(key),
		FileName:    upload.FileName,
		Size:        upload.Size,
		ContentType: upload.ContentType,
	}, nil
}

// Delete removes an object from the bucket
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *S3Storage) objectURL(key string) string {
	switch {
	case s.cfg.PublicURL != "":
		return joinURL(s.cfg.PublicURL, key)
	case s.cfg.Endpoint != "":
		return joinURL(strings.TrimRight(s.cfg.Endpoint, "/")+"/"+s.cfg.Bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
	}
}
