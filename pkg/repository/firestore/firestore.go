package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
)

type Firestore struct {
	client   *firestore.Client
	user     *userRepository
	image    *imageRepository
	message  *messageRepository
	yearbook *yearbookRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests that
// share a Firestore database.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.user.collectionPrefix = prefix
		f.image.collectionPrefix = prefix
		f.message.collectionPrefix = prefix
		f.yearbook.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:   client,
		user:     newUserRepository(client),
		image:    newImageRepository(client),
		message:  newMessageRepository(client),
		yearbook: newYearbookRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Image() interfaces.ImageRepository {
	return f.image
}

func (f *Firestore) Message() interfaces.MessageRepository {
	return f.message
}

func (f *Firestore) Yearbook() interfaces.YearbookRepository {
	return f.yearbook
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
