package model

import (
	"time"

	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

// GeneratedYearbook is the persisted generation status record for one user.
// At most one record exists per email; writers upsert by email. The record
// is created on the first generation attempt, transitions to completed with
// an artifact location on success, and is overwritten with failed on error.
// The core never deletes records.
type GeneratedYearbook struct {
	Email       types.Email
	Status      types.GenerationStatus
	ObjectKey   string
	Location    string
	GeneratedAt time.Time
	UpdatedAt   time.Time
}
