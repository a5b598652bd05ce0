package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// yearbookDoc is the Firestore document representation of
// model.GeneratedYearbook. The document ID is the user's email, which
// makes Upsert a plain Set and guarantees at most one record per email.
type yearbookDoc struct {
	Email       string    `firestore:"Email"`
	Status      string    `firestore:"Status"`
	ObjectKey   string    `firestore:"ObjectKey,omitempty"`
	Location    string    `firestore:"Location,omitempty"`
	GeneratedAt time.Time `firestore:"GeneratedAt"`
	UpdatedAt   time.Time `firestore:"UpdatedAt"`
}

func toYearbookDoc(y *model.GeneratedYearbook) *yearbookDoc {
	return &yearbookDoc{
		Email:       y.Email.String(),
		Status:      y.Status.String(),
		ObjectKey:   y.ObjectKey,
		Location:    y.Location,
		GeneratedAt: y.GeneratedAt,
		UpdatedAt:   y.UpdatedAt,
	}
}

func docToYearbook(doc *firestore.DocumentSnapshot) (*model.GeneratedYearbook, error) {
	var d yearbookDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return &model.GeneratedYearbook{
		Email:       types.Email(d.Email),
		Status:      types.GenerationStatus(d.Status),
		ObjectKey:   d.ObjectKey,
		Location:    d.Location,
		GeneratedAt: d.GeneratedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

type yearbookRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newYearbookRepository(client *firestore.Client) *yearbookRepository {
	return &yearbookRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *yearbookRepository) yearbooksCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_yearbooks"
	}
	return "yearbooks"
}

func (r *yearbookRepository) Upsert(ctx context.Context, record *model.GeneratedYearbook) error {
	record.UpdatedAt = time.Now().UTC()

	docRef := r.client.Collection(r.yearbooksCollection()).Doc(record.Email.String())
	if _, err := docRef.Set(ctx, toYearbookDoc(record)); err != nil {
		return goerr.Wrap(err, "failed to upsert yearbook record",
			goerr.V("email", record.Email),
			goerr.V("status", record.Status))
	}

	return nil
}

func (r *yearbookRepository) Get(ctx context.Context, email types.Email) (*model.GeneratedYearbook, error) {
	docRef := r.client.Collection(r.yearbooksCollection()).Doc(email.String())
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "yearbook record not found", goerr.V("email", email))
		}
		return nil, goerr.Wrap(err, "failed to get yearbook record", goerr.V("email", email))
	}

	y, err := docToYearbook(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal yearbook record", goerr.V("email", email))
	}

	return y, nil
}
