package usecase

import (
	"context"
	"fmt"
	"time"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// PostMessageInput carries the sender identity and the message payload.
type PostMessageInput struct {
	From   string
	Fields room.MessageFields
}

// PostMessageUseCase appends a chat message after verifying the sender is
// actually in the room. Posting also counts as an implicit heartbeat.
type PostMessageUseCase struct {
	Repo repository.RoomRepository
}

func NewPostMessageUseCase(repo repository.RoomRepository) *PostMessageUseCase {
	return &PostMessageUseCase{Repo: repo}
}

func (uc *PostMessageUseCase) Execute(ctx context.Context, in PostMessageInput) (*room.Message, error) {
	if in.From == "" {
		return nil, room.ErrUnknownParticipant
	}

	present, err := uc.Repo.HasParticipant(ctx, in.From)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !present {
		return nil, room.ErrUnknownParticipant
	}

	msg := room.NewMessage(in.From, in.Fields)
	id, err := uc.Repo.SaveMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	// Best effort: a participant actively talking should not be swept out.
	_ = uc.Repo.TouchParticipant(ctx, in.From, time.Now())

	return &msg, nil
}
