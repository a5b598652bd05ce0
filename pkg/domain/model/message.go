package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

// MessageID is a UUID-based identifier for Message
type MessageID string

// NewMessageID generates a new UUID v4 MessageID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

// Message is one yearbook message exchanged between two cohort members
type Message struct {
	ID        MessageID
	Sender    types.Email
	Receiver  types.Email
	Text      string
	Timestamp time.Time
}

// ThreadMessage is one message viewed from the thread owner's perspective
type ThreadMessage struct {
	ID        MessageID
	Text      string
	Sent      bool // true when the thread owner authored the message
	Timestamp time.Time
}

// Thread is the merged, time-ordered conversation between the viewing user
// and one counterpart. Threads are keyed by counterpart email: messages
// to and from that email always merge into a single thread.
type Thread struct {
	CounterpartEmail types.Email
	CounterpartName  string
	Messages         []ThreadMessage
}

// BuildThreads merges sent and received messages into per-counterpart
// threads. Counterpart order follows the first appearance across the two
// inputs (sent scanned first). Messages within a thread are sorted by
// (Timestamp, ID), a total order invariant to the storage order of the
// input lists. Counterpart display names are left empty; the caller
// resolves them.
func BuildThreads(viewer types.Email, sent, received []*Message) []*Thread {
	byEmail := make(map[types.Email]*Thread)
	threads := make([]*Thread, 0)

	thread := func(counterpart types.Email) *Thread {
		th, ok := byEmail[counterpart]
		if !ok {
			th = &Thread{CounterpartEmail: counterpart}
			byEmail[counterpart] = th
			threads = append(threads, th)
		}
		return th
	}

	for _, msg := range sent {
		th := thread(msg.Receiver)
		th.Messages = append(th.Messages, ThreadMessage{
			ID:        msg.ID,
			Text:      msg.Text,
			Sent:      true,
			Timestamp: msg.Timestamp,
		})
	}

	for _, msg := range received {
		th := thread(msg.Sender)
		th.Messages = append(th.Messages, ThreadMessage{
			ID:        msg.ID,
			Text:      msg.Text,
			Sent:      false,
			Timestamp: msg.Timestamp,
		})
	}

	for _, th := range threads {
		msgs := th.Messages
		sort.SliceStable(msgs, func(i, j int) bool {
			if !msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
				return msgs[i].Timestamp.Before(msgs[j].Timestamp)
			}
			return msgs[i].ID < msgs[j].ID
		})
	}

	return threads
}
