package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty,
// Application Default Credentials are used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// GCSImageHost stores post and profile images in a GCS bucket, referenced by
// their public URL. It satisfies application.ImageStore.
type GCSImageHost struct {
	Client *storage.Client
	Bucket string
}

func NewGCSImageHost(client *storage.Client, bucket string) *GCSImageHost {
	return &GCSImageHost{Client: client, Bucket: bucket}
}

// Upload writes the image bytes to a fresh object and returns its public URL.
func (h *GCSImageHost) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if h.Client == nil || h.Bucket == "" {
		return "", fmt.Errorf("image host not configured")
	}
	objectPath := "images/" + uuid.NewString() + extensionFor(contentType)
	wc := h.Client.Bucket(h.Bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return PublicURL(h.Bucket, objectPath), nil
}

// Remove deletes the object referenced by a public URL previously returned by
// Upload. URLs pointing outside the configured bucket are rejected.
func (h *GCSImageHost) Remove(ctx context.Context, url string) error {
	if h.Client == nil || h.Bucket == "" {
		return fmt.Errorf("image host not configured")
	}
	objectPath, ok := objectPathFromURL(h.Bucket, url)
	if !ok {
		return fmt.Errorf("url %q does not belong to bucket %q", url, h.Bucket)
	}
	return h.Client.Bucket(h.Bucket).Object(objectPath).Delete(ctx)
}

// PublicURL builds a public URL for an object (assuming public read access).
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

func objectPathFromURL(bucket, url string) (string, bool) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", bucket)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	path := strings.TrimPrefix(url, prefix)
	if path == "" {
		return "", false
	}
	return path, true
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
