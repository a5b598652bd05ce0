package interfaces

import "context"

// ArtifactStorage writes generated documents to durable object storage
type ArtifactStorage interface {
	// Put stores data under key and returns the public location of the
	// stored object. Implementations must return an error wrapping a
	// configuration sentinel, without attempting any upload, when the
	// storage destination is not configured.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageFetcher retrieves a remote image resource by URL
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
