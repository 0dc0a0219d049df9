package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Storage implements Storage against a single S3 bucket. It targets real
// AWS S3 by default; configure an endpoint override to run against MinIO or
// LocalStack instead — no code changes are needed since both are S3-compatible.
type S3Storage struct {
	client   *minio.Client
	bucket   string
	region   string
	endpoint string // override base URL, empty for real AWS
}

// Config carries everything needed to reach the bucket, resolved once at startup.
type Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint, when non-empty, points at an alternate S3-compatible service
	// (e.g. "http://localhost:9000"). Path-style addressing is used and public
	// URLs become "{endpoint}/{bucket}/{key}".
	Endpoint string
}

// NewS3Storage creates a client for the configured bucket. Construction does
// not touch the network; call EnsureBucket for local bootstrap.
func NewS3Storage(cfg Config) (*S3Storage, error) {
	host := "s3." + cfg.Region + ".amazonaws.com"
	secure := true
	lookup := minio.BucketLookupDNS

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse storage endpoint %q: %w", cfg.Endpoint, err)
		}
		host = u.Host
		secure = u.Scheme == "https"
		lookup = minio.BucketLookupPath
	}

	client, err := minio.New(host, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       secure,
		Region:       cfg.Region,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return &S3Storage{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: endpoint,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet. Intended for local
// MinIO/LocalStack development; production buckets are provisioned out of band.
func (s *S3Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("create bucket %q: %w", s.bucket, err)
		}
		log.Printf("storage: created bucket %q", s.bucket)
	}
	return nil
}

// Upload streams reader to the bucket under key and returns the public URL.
// size must be the exact byte count (pass -1 only if the size is genuinely
// unknown — the client will buffer it).
func (s *S3Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return s.URLFor(key), nil
}

// Download returns the full content of the object at key.
func (s *S3Storage) Download(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	defer obj.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, obj); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}
	return buf.Bytes(), nil
}

// Delete removes the object at key from the bucket.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// URLFor returns the browser-accessible URL for the given key.
// For local MinIO: "http://localhost:9000/products/products/{id}/image"
// For AWS: "https://products.s3.us-east-1.amazonaws.com/products/{id}/image"
func (s *S3Storage) URLFor(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
