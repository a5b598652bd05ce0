package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

type imageRepository struct {
	mu     sync.RWMutex
	images []*model.UploadedImage
}

func newImageRepository() *imageRepository {
	return &imageRepository{
		images: make([]*model.UploadedImage, 0),
	}
}

func copyImage(img *model.UploadedImage) *model.UploadedImage {
	copied := *img
	return &copied
}

func (r *imageRepository) Put(ctx context.Context, image *model.UploadedImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyImage(image)
	if stored.ID == "" {
		stored.ID = model.NewImageID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	image.ID = stored.ID

	r.images = append(r.images, stored)
	return nil
}

func (r *imageRepository) ListByEmail(ctx context.Context, email types.Email) ([]*model.UploadedImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	images := make([]*model.UploadedImage, 0)
	for _, img := range r.images {
		if img.Email == email {
			images = append(images, copyImage(img))
		}
	}

	// Match the Firestore ordering: head title ascending, insertion order
	// preserved within a title.
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].HeadTitle < images[j].HeadTitle
	})

	return images, nil
}
