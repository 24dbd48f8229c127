package usecase

import (
	"context"
	"errors"
	"fmt"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// EditMessageInput identifies the message, the caller, and the replacement
// fields. The caller must be the message's original sender.
type EditMessageInput struct {
	ID     string
	Editor string
	Fields room.MessageFields
}

// EditMessageUseCase replaces the sender-controlled fields of a message.
// From, ID and Time are never touched. Concurrent edits on the same id are
// last-writer-wins; losing a race against a delete surfaces as NotFound.
type EditMessageUseCase struct {
	Repo repository.RoomRepository
}

func NewEditMessageUseCase(repo repository.RoomRepository) *EditMessageUseCase {
	return &EditMessageUseCase{Repo: repo}
}

func (uc *EditMessageUseCase) Execute(ctx context.Context, in EditMessageInput) error {
	if in.ID == "" || in.Editor == "" {
		return fmt.Errorf("message id and editor are required")
	}

	err := uc.Repo.UpdateMessage(ctx, in.ID, in.Editor, in.Fields)
	if err != nil {
		if errors.Is(err, room.ErrMessageNotFound) || errors.Is(err, room.ErrNotMessageOwner) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
