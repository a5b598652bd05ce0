package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/service/storage"
	"github.com/secmon-lab/yearbound/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Storage holds CLI flags for artifact storage configuration
type Storage struct {
	bucket string
	prefix string
}

// Flags returns CLI flags for artifact storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for generated yearbooks",
			Sources:     cli.EnvVars("YEARBOUND_STORAGE_BUCKET"),
			Destination: &s.bucket,
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Key prefix prepended to every stored object",
			Sources:     cli.EnvVars("YEARBOUND_STORAGE_PREFIX"),
			Destination: &s.prefix,
		},
	}
}

// Bucket returns the configured bucket name
func (s *Storage) Bucket() string {
	return s.bucket
}

// Configure initializes the artifact storage client. An empty bucket is
// accepted here: generation then fails at the publish step, after the
// status record shows what was attempted.
func (s *Storage) Configure(ctx context.Context) (interfaces.ArtifactStorage, error) {
	client, err := storage.New(ctx, s.bucket, storage.WithPrefix(s.prefix))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize artifact storage", goerr.V("bucket", s.bucket))
	}

	if s.bucket == "" {
		logging.Default().Warn("No storage bucket configured, publishing will fail")
	} else {
		logging.Default().Info("Using Cloud Storage", "bucket", s.bucket, "prefix", s.prefix)
	}

	return client, nil
}
