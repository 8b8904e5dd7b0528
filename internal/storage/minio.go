package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible)
// backend. Switching providers only requires different endpoint and
// credentials, no code changes.
type MinioStorage struct {
	client *minio.Client
	bucket string
	urls   URLMapper
	logger *zap.Logger
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists with a
// public-read policy, and returns a ready-to-use MinioStorage. It is safe to
// call on every process start; any failure here means the service cannot
// store pictures and is reported as ErrUnavailable.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket, publicBase string, useSSL bool, logger *zap.Logger) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", ErrUnavailable, err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: check bucket %q: %v", ErrUnavailable, bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%w: create bucket %q: %v", ErrUnavailable, bucket, err)
		}
		logger.Info("created bucket", zap.String("bucket", bucket))
	}

	if err := client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return nil, fmt.Errorf("%w: set bucket policy: %v", ErrUnavailable, err)
	}

	return &MinioStorage{
		client: client,
		bucket: bucket,
		urls:   NewURLMapper(publicBase, bucket),
		logger: logger,
	}, nil
}

// Upload streams reader to the bucket under key. size must be the exact byte
// count (pass -1 only if the size is genuinely unknown — the client will
// buffer it).
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%w: put object %q: %v", ErrWrite, key, err)
	}
	return nil
}

// Download returns the object content for key. The GetObject call is lazy,
// so the object is stat-ed first to surface a missing key immediately.
func (s *MinioStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: get object %q: %v", ErrRead, key, err)
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("%w: %q", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("%w: stat object %q: %v", ErrRead, key, err)
	}
	return obj, nil
}

// Delete removes the object at key. Removing a key that does not exist
// succeeds, matching S3 semantics.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: remove object %q: %v", ErrDelete, key, err)
	}
	return nil
}

// PublicURL returns the browser-accessible URL for the given key.
func (s *MinioStorage) PublicURL(key string) string {
	return s.urls.PublicURL(key)
}

// KeyFromURL recovers the storage key from a public URL.
func (s *MinioStorage) KeyFromURL(url string) string {
	return s.urls.KeyFromURL(url)
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET
// on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
