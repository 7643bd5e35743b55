package service

import (
	"context"
)

// ImageStore persists diary entry images and hands back client-facing URLs.
type ImageStore interface {
	// Put stores the image bytes under a content-derived key and returns the
	// public URL. Storing identical bytes twice yields the same URL.
	Put(ctx context.Context, data []byte, contentType string) (url string, err error)

	// Delete removes a previously stored image by its key.
	Delete(ctx context.Context, key string) error
}
