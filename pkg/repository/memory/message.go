package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

type messageRepository struct {
	mu       sync.RWMutex
	messages []*model.Message
}

func newMessageRepository() *messageRepository {
	return &messageRepository{
		messages: make([]*model.Message, 0),
	}
}

func copyMessage(m *model.Message) *model.Message {
	copied := *m
	return &copied
}

func (r *messageRepository) Put(ctx context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyMessage(message)
	if stored.ID == "" {
		stored.ID = model.NewMessageID()
	}
	if stored.Timestamp.IsZero() {
		stored.Timestamp = time.Now().UTC()
	}
	message.ID = stored.ID

	r.messages = append(r.messages, stored)
	return nil
}

func (r *messageRepository) list(match func(*model.Message) bool) []*model.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*model.Message, 0)
	for _, m := range r.messages {
		if match(m) {
			messages = append(messages, copyMessage(m))
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return messages
}

func (r *messageRepository) ListSent(ctx context.Context, email types.Email) ([]*model.Message, error) {
	return r.list(func(m *model.Message) bool { return m.Sender == email }), nil
}

func (r *messageRepository) ListReceived(ctx context.Context, email types.Email) ([]*model.Message, error) {
	return r.list(func(m *model.Message) bool { return m.Receiver == email }), nil
}
