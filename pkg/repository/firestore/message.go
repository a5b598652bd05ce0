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

// messageDoc is the Firestore document representation of model.Message
type messageDoc struct {
	ID        string    `firestore:"ID"`
	Sender    string    `firestore:"Sender"`
	Receiver  string    `firestore:"Receiver"`
	Text      string    `firestore:"Text"`
	Timestamp time.Time `firestore:"Timestamp"`
}

func toMessageDoc(m *model.Message) *messageDoc {
	return &messageDoc{
		ID:        string(m.ID),
		Sender:    m.Sender.String(),
		Receiver:  m.Receiver.String(),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func docToMessage(doc *firestore.DocumentSnapshot) (*model.Message, error) {
	var d messageDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return &model.Message{
		ID:        model.MessageID(d.ID),
		Sender:    types.Email(d.Sender),
		Receiver:  types.Email(d.Receiver),
		Text:      d.Text,
		Timestamp: d.Timestamp,
	}, nil
}

type messageRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMessageRepository(client *firestore.Client) *messageRepository {
	return &messageRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *messageRepository) messagesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_messages"
	}
	return "messages"
}

func (r *messageRepository) Put(ctx context.Context, message *model.Message) error {
	if message.ID == "" {
		message.ID = model.NewMessageID()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	docRef := r.client.Collection(r.messagesCollection()).Doc(string(message.ID))
	if _, err := docRef.Set(ctx, toMessageDoc(message)); err != nil {
		return goerr.Wrap(err, "failed to put message", goerr.V("id", message.ID))
	}

	return nil
}

func (r *messageRepository) listByField(ctx context.Context, field string, email types.Email) ([]*model.Message, error) {
	iter := r.client.Collection(r.messagesCollection()).
		Where(field, "==", email.String()).
		OrderBy("Timestamp", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	messages := make([]*model.Message, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate messages",
				goerr.V("field", field),
				goerr.V("email", email))
		}

		m, err := docToMessage(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal message")
		}

		messages = append(messages, m)
	}

	return messages, nil
}

// ListSent requires the composite index (Sender ASC, Timestamp ASC),
// managed by the migrate command.
func (r *messageRepository) ListSent(ctx context.Context, email types.Email) ([]*model.Message, error) {
	return r.listByField(ctx, "Sender", email)
}

// ListReceived requires the composite index (Receiver ASC, Timestamp ASC),
// managed by the migrate command.
func (r *messageRepository) ListReceived(ctx context.Context, email types.Email) ([]*model.Message, error) {
	return r.listByField(ctx, "Receiver", email)
}
