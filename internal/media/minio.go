package media

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds connection details for the media object store
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicBaseURL is the externally reachable base for stored objects
	// (a CDN or the store's public endpoint). Also the base thumbnail
	// URLs are derived from.
	PublicBaseURL string
}

// MinioUploader stores media buffers in an S3-compatible bucket
type MinioUploader struct {
	cfg    Config
	client *minio.Client
}

// NewMinioUploader connects to the object store and verifies the bucket exists
func NewMinioUploader(ctx context.Context, cfg Config) (*MinioUploader, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create media store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check media bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create media bucket: %w", err)
		}
	}

	return &MinioUploader{cfg: cfg, client: client}, nil
}

// Upload stores the buffer under folder/<generated id> and returns its
// durable URL and storage identifier. Nothing is persisted on failure.
func (u *MinioUploader) Upload(ctx context.Context, data []byte, kind Kind, folder string) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("upload buffer is empty")
	}
	if kind != KindImage && kind != KindVideo {
		return nil, fmt.Errorf("unsupported resource kind: %s", kind)
	}

	key := folder + "/" + uuid.NewString() + extensionFor(kind, data)
	contentType := http.DetectContentType(data)

	_, err := u.client.PutObject(ctx, u.cfg.Bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media object: %w", err)
	}

	return &UploadResult{
		URL:       strings.TrimSuffix(u.cfg.PublicBaseURL, "/") + "/" + u.cfg.Bucket + "/" + key,
		StorageID: key,
	}, nil
}

// PublicBaseURL exposes the base thumbnail derivation should use
func (u *MinioUploader) PublicBaseURL() string {
	return u.cfg.PublicBaseURL
}

func extensionFor(kind Kind, data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	}
	if kind == KindVideo {
		return ".mp4"
	}
	return ".bin"
}
