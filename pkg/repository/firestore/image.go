package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
	"google.golang.org/api/iterator"
)

// imageDoc is the Firestore document representation of model.UploadedImage
type imageDoc struct {
	ID        string    `firestore:"ID"`
	Email     string    `firestore:"Email"`
	HeadTitle string    `firestore:"HeadTitle"`
	Caption   string    `firestore:"Caption"`
	SourceURL string    `firestore:"SourceURL"`
	CreatedAt time.Time `firestore:"CreatedAt"`
}

func toImageDoc(img *model.UploadedImage) *imageDoc {
	return &imageDoc{
		ID:        string(img.ID),
		Email:     img.Email.String(),
		HeadTitle: img.HeadTitle,
		Caption:   img.Caption,
		SourceURL: img.SourceURL,
		CreatedAt: img.CreatedAt,
	}
}

func docToImage(doc *firestore.DocumentSnapshot) (*model.UploadedImage, error) {
	var d imageDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return &model.UploadedImage{
		ID:        model.ImageID(d.ID),
		Email:     types.Email(d.Email),
		HeadTitle: d.HeadTitle,
		Caption:   d.Caption,
		SourceURL: d.SourceURL,
		CreatedAt: d.CreatedAt,
	}, nil
}

type imageRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newImageRepository(client *firestore.Client) *imageRepository {
	return &imageRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *imageRepository) imagesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_images"
	}
	return "images"
}

func (r *imageRepository) Put(ctx context.Context, image *model.UploadedImage) error {
	if image.ID == "" {
		image.ID = model.NewImageID()
	}
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC()
	}

	docRef := r.client.Collection(r.imagesCollection()).Doc(string(image.ID))
	if _, err := docRef.Set(ctx, toImageDoc(image)); err != nil {
		return goerr.Wrap(err, "failed to put image",
			goerr.V("id", image.ID),
			goerr.V("email", image.Email))
	}

	return nil
}

// ListByEmail requires the composite index (Email ASC, HeadTitle ASC),
// managed by the migrate command.
func (r *imageRepository) ListByEmail(ctx context.Context, email types.Email) ([]*model.UploadedImage, error) {
	iter := r.client.Collection(r.imagesCollection()).
		Where("Email", "==", email.String()).
		OrderBy("HeadTitle", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	images := make([]*model.UploadedImage, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate images", goerr.V("email", email))
		}

		img, err := docToImage(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal image")
		}

		images = append(images, img)
	}

	return images, nil
}
