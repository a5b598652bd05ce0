package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

func runMessageRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	alice := types.Email("alice@batch.edu")
	bob := types.Email("bob@batch.edu")
	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, repo interfaces.Repository) {
		t.Helper()
		ctx := context.Background()
		for _, m := range []*model.Message{
			{Sender: alice, Receiver: bob, Text: "second", Timestamp: base.Add(2 * time.Minute)},
			{Sender: alice, Receiver: bob, Text: "first", Timestamp: base.Add(1 * time.Minute)},
			{Sender: bob, Receiver: alice, Text: "reply", Timestamp: base.Add(3 * time.Minute)},
		} {
			gt.NoError(t, repo.Message().Put(ctx, m)).Required()
		}
	}

	t.Run("ListSent returns sender's messages timestamp-ordered", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		sent, err := repo.Message().ListSent(ctx, alice)
		gt.NoError(t, err).Required()
		gt.Array(t, sent).Length(2)
		gt.Value(t, sent[0].Text).Equal("first")
		gt.Value(t, sent[1].Text).Equal("second")
	})

	t.Run("ListReceived returns receiver's messages", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		received, err := repo.Message().ListReceived(ctx, alice)
		gt.NoError(t, err).Required()
		gt.Array(t, received).Length(1)
		gt.Value(t, received[0].Text).Equal("reply")
		gt.Value(t, received[0].Sender).Equal(bob)
	})

	t.Run("no messages yields empty lists", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		sent, err := repo.Message().ListSent(ctx, types.Email("nobody@batch.edu"))
		gt.NoError(t, err).Required()
		gt.Array(t, sent).Length(0)
	})
}

func TestMemoryMessageRepository(t *testing.T) {
	runMessageRepositoryTest(t, newMemoryRepo)
}

func TestFirestoreMessageRepository(t *testing.T) {
	runMessageRepositoryTest(t, newFirestoreRepo)
}
