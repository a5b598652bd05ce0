package interfaces

import (
	"context"

	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	User() UserRepository
	Image() ImageRepository
	Message() MessageRepository
	Yearbook() YearbookRepository

	Close() error
}

// UserRepository provides access to cohort member records
type UserRepository interface {
	Put(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email types.Email) (*model.User, error)
	// ListCompleted returns users who have completed their preferences,
	// the eligibility condition for yearbook generation.
	ListCompleted(ctx context.Context) ([]*model.User, error)
}

// ImageRepository provides access to uploaded images
type ImageRepository interface {
	Put(ctx context.Context, image *model.UploadedImage) error
	// ListByEmail returns the user's images ordered by head title so that
	// images of the same memory group are adjacent.
	ListByEmail(ctx context.Context, email types.Email) ([]*model.UploadedImage, error)
}

// MessageRepository provides access to yearbook messages
type MessageRepository interface {
	Put(ctx context.Context, message *model.Message) error
	// ListSent returns messages authored by the user, ordered by timestamp.
	ListSent(ctx context.Context, email types.Email) ([]*model.Message, error)
	// ListReceived returns messages addressed to the user, ordered by timestamp.
	ListReceived(ctx context.Context, email types.Email) ([]*model.Message, error)
}

// YearbookRepository persists generation status records, one per email
type YearbookRepository interface {
	// Upsert writes the record for the record's email, replacing any
	// previous record. Idempotent per email.
	Upsert(ctx context.Context, record *model.GeneratedYearbook) error
	Get(ctx context.Context, email types.Email) (*model.GeneratedYearbook, error)
}
