package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	"batepapo-uol-api/internal/pkg/room/persistence/repository/adapter"
)

func seedMessages(t *testing.T, repo *adapter.MemoryRoomRepository, msgs ...room.Message) {
	t.Helper()
	for _, m := range msgs {
		_, err := repo.SaveMessage(context.Background(), m)
		require.NoError(t, err)
	}
}

func TestListMessagesUseCase_PrivateVisibility(t *testing.T) {
	req := require.New(t)
	repo := adapter.NewMemoryRoomRepository()
	seedMessages(t, repo,
		room.NewMessage("alice", room.MessageFields{To: room.BroadcastTarget, Text: "hello room", Type: room.MessageTypeBroadcast}),
		room.NewMessage("alice", room.MessageFields{To: "bob", Text: "psst", Type: room.MessageTypePrivate}),
	)
	uc := NewListMessagesUseCase(repo)

	// Sender and addressee see the private message
	for _, viewer := range []string{"alice", "bob"} {
		msgs, err := uc.Execute(context.Background(), ListMessagesInput{Viewer: viewer})
		req.NoError(err)
		req.Len(msgs, 2)
	}

	// Anyone else only sees the broadcast
	msgs, err := uc.Execute(context.Background(), ListMessagesInput{Viewer: "carol"})
	req.NoError(err)
	req.Len(msgs, 1)
	req.Equal("hello room", msgs[0].Text)
}

func TestListMessagesUseCase_LimitKeepsNewestInOrder(t *testing.T) {
	req := require.New(t)
	repo := adapter.NewMemoryRoomRepository()
	seedMessages(t, repo,
		room.NewMessage("alice", room.MessageFields{To: room.BroadcastTarget, Text: "first", Type: room.MessageTypeBroadcast}),
		room.NewMessage("alice", room.MessageFields{To: room.BroadcastTarget, Text: "second", Type: room.MessageTypeBroadcast}),
		room.NewMessage("alice", room.MessageFields{To: room.BroadcastTarget, Text: "third", Type: room.MessageTypeBroadcast}),
	)
	uc := NewListMessagesUseCase(repo)

	msgs, err := uc.Execute(context.Background(), ListMessagesInput{Viewer: "bob", Limit: 2})
	req.NoError(err)
	req.Len(msgs, 2)
	req.Equal("second", msgs[0].Text)
	req.Equal("third", msgs[1].Text)

	// Limit <= 0 returns the whole visible log
	msgs, err = uc.Execute(context.Background(), ListMessagesInput{Viewer: "bob"})
	req.NoError(err)
	req.Len(msgs, 3)
}
