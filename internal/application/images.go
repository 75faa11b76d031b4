package application

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/mahendrairawan/sociable/internal/apperror"
)

// ImageStore is the external image host. Images are referenced by the URL the
// host returns; the raw payload is never persisted in the content store.
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, url string) error
}

// decodeImagePayload parses a base64 data URI ("data:image/png;base64,...")
// as submitted by clients for post and profile images.
func decodeImagePayload(payload string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(payload, "data:")
	if !ok {
		return nil, "", apperror.Validation("image must be a base64 data URI")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, "", apperror.Validation("image must be a base64 data URI")
	}
	contentType := strings.TrimSuffix(meta, ";base64")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", apperror.Validation("image payload must have an image content type")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", apperror.Validation("image payload is not valid base64")
	}
	return data, contentType, nil
}
