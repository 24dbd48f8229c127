package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	"batepapo-uol-api/internal/pkg/room/persistence/repository/adapter"
)

func TestEditMessageUseCase_OnlyOwnerMayEdit(t *testing.T) {
	req := require.New(t)
	repo := adapter.NewMemoryRoomRepository()
	original := room.NewMessage("alice", room.MessageFields{To: room.BroadcastTarget, Text: "hi", Type: room.MessageTypeBroadcast})
	id, err := repo.SaveMessage(context.Background(), original)
	req.NoError(err)

	uc := NewEditMessageUseCase(repo)
	newFields := room.MessageFields{To: "bob", Text: "edited", Type: room.MessageTypePrivate}

	// A non-owner is rejected and nothing changes
	err = uc.Execute(context.Background(), EditMessageInput{ID: id, Editor: "bob", Fields: newFields})
	req.ErrorIs(err, room.ErrNotMessageOwner)

	msgs, err := repo.ListMessagesVisibleTo(context.Background(), "alice", 0)
	req.NoError(err)
	req.Equal("hi", msgs[0].Text)

	// The owner succeeds; From, ID and Time are untouched
	err = uc.Execute(context.Background(), EditMessageInput{ID: id, Editor: "alice", Fields: newFields})
	req.NoError(err)

	msgs, err = repo.ListMessagesVisibleTo(context.Background(), "alice", 0)
	req.NoError(err)
	req.Equal("edited", msgs[0].Text)
	req.Equal("bob", msgs[0].To)
	req.Equal(room.MessageTypePrivate, msgs[0].Type)
	req.Equal("alice", msgs[0].From)
	req.Equal(id, msgs[0].ID)
	req.Equal(original.Time, msgs[0].Time)
}

func TestEditMessageUseCase_UnknownID(t *testing.T) {
	req := require.New(t)
	uc := NewEditMessageUseCase(adapter.NewMemoryRoomRepository())

	err := uc.Execute(context.Background(), EditMessageInput{
		ID:     "64f000000000000000000000",
		Editor: "alice",
		Fields: room.MessageFields{To: "bob", Text: "x", Type: room.MessageTypeBroadcast},
	})
	req.ErrorIs(err, room.ErrMessageNotFound)
}

func TestDeleteMessageUseCase_AuthorizationMirrorsEdit(t *testing.T) {
	req := require.New(t)
	repo := adapter.NewMemoryRoomRepository()
	id, err := repo.SaveMessage(context.Background(),
		room.NewMessage("alice", room.MessageFields{To: room.BroadcastTarget, Text: "hi", Type: room.MessageTypeBroadcast}))
	req.NoError(err)

	uc := NewDeleteMessageUseCase(repo)

	err = uc.Execute(context.Background(), DeleteMessageInput{ID: id, Requester: "bob"})
	req.ErrorIs(err, room.ErrNotMessageOwner)

	err = uc.Execute(context.Background(), DeleteMessageInput{ID: "64f000000000000000000000", Requester: "alice"})
	req.ErrorIs(err, room.ErrMessageNotFound)

	err = uc.Execute(context.Background(), DeleteMessageInput{ID: id, Requester: "alice"})
	req.NoError(err)

	// Deleting again loses the race it already won
	err = uc.Execute(context.Background(), DeleteMessageInput{ID: id, Requester: "alice"})
	req.ErrorIs(err, room.ErrMessageNotFound)
}
