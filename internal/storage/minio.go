package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore persists uploaded images in a MinIO bucket and hands back a URL
// the frontend can embed. It stands in for the third-party media host the
// upload endpoint proxies to.
type ImageStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewImageStore creates the MinIO client and ensures the bucket exists.
func NewImageStore(cfg *MinIOConfig) (*ImageStore, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &ImageStore{client: mc, bucket: cfg.Bucket, endpoint: cfg.Endpoint, useSSL: cfg.UseSSL}
	// ensure bucket exists (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// Upload stores the image under key and returns its URL.
func (s *ImageStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return s.ObjectURL(key), nil
}

// ObjectURL builds the stable URL for a stored object. The bucket is served
// with public read access, like the media host it replaces.
func (s *ImageStore) ObjectURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}
