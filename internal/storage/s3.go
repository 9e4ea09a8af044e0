package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	cfg "github.com/anekzad/portfolio/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNotConfigured is returned by the disabled storage when no bucket is set.
var ErrNotConfigured = errors.New("object storage not configured")

// Storage defines the interface for file storage operations
type Storage interface {
	// Save stores a file at the given path
	Save(path string, file io.Reader) error

	// Delete removes a file at the given path
	Delete(path string) error

	// URL returns the public URL for accessing the file
	URL(path string) string
}

// S3Storage implements Storage for S3-compatible object stores.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, etc.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	region    string
	endpoint  string
	publicURL string
}

// S3Config holds configuration for S3 storage
type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string // Optional: for S3-compatible services
}

// New creates storage from app config. Without a bucket the article admin
// still works, minus hero-image uploads.
func New(c *cfg.Config) (Storage, error) {
	if c.S3Bucket == "" {
		slog.Info("object storage disabled (no S3_BUCKET configured)")
		return disabledStorage{}, nil
	}

	slog.Info("initializing S3 storage",
		"bucket", c.S3Bucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Storage(S3Config{
		Region:    c.S3Region,
		Bucket:    c.S3Bucket,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Endpoint:  c.S3Endpoint,
	})
}

// NewS3Storage creates a new S3 storage instance
func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	ctx := context.Background()

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	// Add static credentials if provided
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Create S3 client with optional custom endpoint
	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	publicURL := cfg.Endpoint
	if publicURL == "" {
		// Standard AWS S3 URL
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	} else {
		// Custom endpoint (MinIO, DO Spaces, etc.)
		publicURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  cfg.Endpoint,
		publicURL: publicURL,
	}, nil
}

// Save stores a file in S3
func (s *S3Storage) Save(path string, file io.Reader) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

// Delete removes a file from S3
func (s *S3Storage) Delete(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	return nil
}

// URL returns the public URL for accessing the file
func (s *S3Storage) URL(path string) string {
	return fmt.Sprintf("%s/%s", s.publicURL, path)
}

// disabledStorage rejects uploads when no bucket is configured.
type disabledStorage struct{}

func (disabledStorage) Save(string, io.Reader) error { return ErrNotConfigured }

func (disabledStorage) Delete(string) error { return ErrNotConfigured }

func (disabledStorage) URL(string) string { return "" }
