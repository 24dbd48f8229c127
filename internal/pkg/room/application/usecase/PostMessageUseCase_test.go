package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	"batepapo-uol-api/internal/pkg/room/persistence/repository/adapter"
)

func TestPostMessageUseCase_SavesAndAssignsID(t *testing.T) {
	req := require.New(t)
	repo := adapter.NewMemoryRoomRepository()
	req.NoError(repo.AddParticipant(context.Background(), room.NewParticipant("alice")))

	uc := NewPostMessageUseCase(repo)
	msg, err := uc.Execute(context.Background(), PostMessageInput{
		From:   "alice",
		Fields: room.MessageFields{To: room.BroadcastTarget, Text: "hi", Type: room.MessageTypeBroadcast},
	})
	req.NoError(err)
	req.NotEmpty(msg.ID)
	req.Equal("alice", msg.From)

	msgs, err := repo.ListMessagesVisibleTo(context.Background(), "bob", 0)
	req.NoError(err)
	req.Len(msgs, 1)
	req.Equal("hi", msgs[0].Text)
}

func TestPostMessageUseCase_UnknownSenderRejected(t *testing.T) {
	req := require.New(t)
	uc := NewPostMessageUseCase(adapter.NewMemoryRoomRepository())

	fields := room.MessageFields{To: room.BroadcastTarget, Text: "hi", Type: room.MessageTypeBroadcast}

	_, err := uc.Execute(context.Background(), PostMessageInput{From: "ghost", Fields: fields})
	req.ErrorIs(err, room.ErrUnknownParticipant)

	_, err = uc.Execute(context.Background(), PostMessageInput{From: "", Fields: fields})
	req.ErrorIs(err, room.ErrUnknownParticipant)
}

func TestPostMessageUseCase_PostingCountsAsHeartbeat(t *testing.T) {
	req := require.New(t)
	repo := adapter.NewMemoryRoomRepository()

	stale := time.Now().Add(-time.Minute)
	req.NoError(repo.AddParticipant(context.Background(), room.Participant{
		Name:       "alice",
		LastStatus: stale.UnixMilli(),
	}))

	uc := NewPostMessageUseCase(repo)
	_, err := uc.Execute(context.Background(), PostMessageInput{
		From:   "alice",
		Fields: room.MessageFields{To: "bob", Text: "oi", Type: room.MessageTypePrivate},
	})
	req.NoError(err)

	ps, err := repo.ListParticipants(context.Background())
	req.NoError(err)
	req.Greater(ps[0].LastStatus, stale.UnixMilli())
}
