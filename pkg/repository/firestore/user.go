package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// userDoc is the Firestore document representation of model.User
type userDoc struct {
	Email                string    `firestore:"Email"`
	Name                 string    `firestore:"Name"`
	PhotoURL             string    `firestore:"PhotoURL,omitempty"`
	Quote                string    `firestore:"Quote,omitempty"`
	PreferencesCompleted bool      `firestore:"PreferencesCompleted"`
	CreatedAt            time.Time `firestore:"CreatedAt"`
	UpdatedAt            time.Time `firestore:"UpdatedAt"`
}

func toUserDoc(u *model.User) *userDoc {
	return &userDoc{
		Email:                u.Email.String(),
		Name:                 u.Name,
		PhotoURL:             u.PhotoURL,
		Quote:                u.Quote,
		PreferencesCompleted: u.PreferencesCompleted,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

func fromUserDoc(d *userDoc) *model.User {
	return &model.User{
		Email:                types.Email(d.Email),
		Name:                 d.Name,
		PhotoURL:             d.PhotoURL,
		Quote:                d.Quote,
		PreferencesCompleted: d.PreferencesCompleted,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func docToUser(doc *firestore.DocumentSnapshot) (*model.User, error) {
	var d userDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromUserDoc(&d), nil
}

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *userRepository) usersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_users"
	}
	return "users"
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	docRef := r.client.Collection(r.usersCollection()).Doc(user.Email.String())
	if _, err := docRef.Set(ctx, toUserDoc(user)); err != nil {
		return goerr.Wrap(err, "failed to put user", goerr.V("email", user.Email))
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email types.Email) (*model.User, error) {
	docRef := r.client.Collection(r.usersCollection()).Doc(email.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("email", email))
		}
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("email", email))
	}

	u, err := docToUser(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal user", goerr.V("email", email))
	}

	return u, nil
}

func (r *userRepository) ListCompleted(ctx context.Context) ([]*model.User, error) {
	iter := r.client.Collection(r.usersCollection()).
		Where("PreferencesCompleted", "==", true).
		Documents(ctx)
	defer iter.Stop()

	users := make([]*model.User, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate users")
		}

		u, err := docToUser(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal user")
		}

		users = append(users, u)
	}

	return users, nil
}
