package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

// ImageID is a UUID-based identifier for UploadedImage
type ImageID string

// NewImageID generates a new UUID v4 ImageID
func NewImageID() ImageID {
	return ImageID(uuid.New().String())
}

// UploadedImage is one photo uploaded by a user. Images sharing the same
// (Email, HeadTitle) pair belong to the same memory group; group membership
// is determined by HeadTitle equality at generation time, not by a stored
// group identifier.
type UploadedImage struct {
	ID        ImageID
	Email     types.Email
	HeadTitle string
	Caption   string
	SourceURL string
	CreatedAt time.Time
}
