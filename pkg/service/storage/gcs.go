package storage

import (
	"context"
	"fmt"
	"path"

	gcs "cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/utils/safe"
)

// ErrNotConfigured marks a missing storage destination. It is a
// configuration error, distinct from transient upload failures, and is
// returned before any upload is attempted.
var ErrNotConfigured = goerr.New("artifact storage bucket is not configured")

// Client publishes generated documents to Google Cloud Storage
type Client struct {
	client *gcs.Client
	bucket string
	prefix string
}

var _ interfaces.ArtifactStorage = &Client{}

type Option func(*Client)

// WithPrefix prepends a key prefix to every stored object
func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = prefix
	}
}

// New creates a GCS-backed artifact store. An empty bucket is accepted
// here deliberately: the configuration check happens in Put, so that a
// misconfigured run fails at the publish step with ErrNotConfigured
// rather than at startup.
func New(ctx context.Context, bucket string, opts ...Option) (*Client, error) {
	c := &Client{bucket: bucket}

	for _, opt := range opts {
		opt(c)
	}

	if bucket != "" {
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
		}
		c.client = client
	}

	return c, nil
}

// Put uploads data under key and returns the public object URL
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if c.bucket == "" || c.client == nil {
		return "", goerr.Wrap(ErrNotConfigured, "cannot publish artifact", goerr.V("key", key))
	}

	objectKey := key
	if c.prefix != "" {
		objectKey = path.Join(c.prefix, key)
	}

	w := c.client.Bucket(c.bucket).Object(objectKey).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		safe.Close(ctx, w)
		return "", goerr.Wrap(err, "failed to write artifact",
			goerr.V("bucket", c.bucket),
			goerr.V("key", objectKey))
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize artifact",
			goerr.V("bucket", c.bucket),
			goerr.V("key", objectKey))
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, objectKey), nil
}

// Close releases the underlying client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
