package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

func msg(id, sender, receiver, text string, at time.Time) *model.Message {
	return &model.Message{
		ID:        model.MessageID(id),
		Sender:    types.Email(sender),
		Receiver:  types.Email(receiver),
		Text:      text,
		Timestamp: at,
	}
}

func TestBuildThreads(t *testing.T) {
	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	viewer := types.Email("a@x.com")

	t.Run("merges sent and received chronologically", func(t *testing.T) {
		sent := []*model.Message{
			msg("m2", "a@x.com", "b@x.com", "see you around", base.Add(2*time.Minute)),
		}
		received := []*model.Message{
			msg("m1", "b@x.com", "a@x.com", "good luck!", base.Add(1*time.Minute)),
			msg("m3", "b@x.com", "a@x.com", "keep in touch", base.Add(3*time.Minute)),
		}

		threads := model.BuildThreads(viewer, sent, received)
		gt.A(t, threads).Length(1)

		th := threads[0]
		gt.V(t, th.CounterpartEmail).Equal(types.Email("b@x.com"))
		gt.A(t, th.Messages).Length(3)
		gt.V(t, th.Messages[0].Text).Equal("good luck!")
		gt.B(t, th.Messages[0].Sent).False()
		gt.V(t, th.Messages[1].Text).Equal("see you around")
		gt.B(t, th.Messages[1].Sent).True()
		gt.V(t, th.Messages[2].Text).Equal("keep in touch")
	})

	t.Run("order is invariant to input storage order", func(t *testing.T) {
		m1 := msg("m1", "b@x.com", "a@x.com", "first", base)
		m2 := msg("m2", "a@x.com", "b@x.com", "second", base.Add(time.Minute))
		m3 := msg("m3", "b@x.com", "a@x.com", "third", base.Add(2*time.Minute))

		forward := model.BuildThreads(viewer, []*model.Message{m2}, []*model.Message{m1, m3})
		reversed := model.BuildThreads(viewer, []*model.Message{m2}, []*model.Message{m3, m1})

		gt.A(t, forward).Length(1)
		gt.A(t, reversed).Length(1)
		gt.A(t, forward[0].Messages).Length(3)
		for i := range forward[0].Messages {
			gt.V(t, reversed[0].Messages[i].ID).Equal(forward[0].Messages[i].ID)
		}
	})

	t.Run("equal timestamps break ties by message ID", func(t *testing.T) {
		m1 := msg("m1", "b@x.com", "a@x.com", "tie one", base)
		m2 := msg("m2", "a@x.com", "b@x.com", "tie two", base)

		threads := model.BuildThreads(viewer, []*model.Message{m2}, []*model.Message{m1})
		gt.A(t, threads).Length(1)
		gt.V(t, threads[0].Messages[0].ID).Equal(model.MessageID("m1"))
		gt.V(t, threads[0].Messages[1].ID).Equal(model.MessageID("m2"))
	})

	t.Run("separate counterparts yield separate threads", func(t *testing.T) {
		sent := []*model.Message{
			msg("m1", "a@x.com", "b@x.com", "hi b", base),
			msg("m2", "a@x.com", "c@x.com", "hi c", base.Add(time.Minute)),
		}
		received := []*model.Message{
			msg("m3", "b@x.com", "a@x.com", "hi a", base.Add(2*time.Minute)),
		}

		threads := model.BuildThreads(viewer, sent, received)
		gt.A(t, threads).Length(2)
		gt.V(t, threads[0].CounterpartEmail).Equal(types.Email("b@x.com"))
		gt.A(t, threads[0].Messages).Length(2)
		gt.V(t, threads[1].CounterpartEmail).Equal(types.Email("c@x.com"))
		gt.A(t, threads[1].Messages).Length(1)
	})

	t.Run("no messages yields no threads", func(t *testing.T) {
		threads := model.BuildThreads(viewer, nil, nil)
		gt.A(t, threads).Length(0)
	})
}
