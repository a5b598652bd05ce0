package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

type yearbookRepository struct {
	mu      sync.RWMutex
	records map[types.Email]*model.GeneratedYearbook
}

func newYearbookRepository() *yearbookRepository {
	return &yearbookRepository{
		records: make(map[types.Email]*model.GeneratedYearbook),
	}
}

func copyYearbook(y *model.GeneratedYearbook) *model.GeneratedYearbook {
	copied := *y
	return &copied
}

func (r *yearbookRepository) Upsert(ctx context.Context, record *model.GeneratedYearbook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyYearbook(record)
	stored.UpdatedAt = time.Now().UTC()

	r.records[stored.Email] = stored
	return nil
}

func (r *yearbookRepository) Get(ctx context.Context, email types.Email) (*model.GeneratedYearbook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	y, ok := r.records[email]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "yearbook record not found", goerr.V("email", email))
	}

	return copyYearbook(y), nil
}
