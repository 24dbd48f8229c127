package usecase

import (
	"context"
	"errors"
	"fmt"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// DeleteMessageInput identifies the message and the caller, who must be the
// message's original sender.
type DeleteMessageInput struct {
	ID        string
	Requester string
}

// DeleteMessageUseCase permanently removes a message.
type DeleteMessageUseCase struct {
	Repo repository.RoomRepository
}

func NewDeleteMessageUseCase(repo repository.RoomRepository) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{Repo: repo}
}

func (uc *DeleteMessageUseCase) Execute(ctx context.Context, in DeleteMessageInput) error {
	if in.ID == "" || in.Requester == "" {
		return fmt.Errorf("message id and requester are required")
	}

	err := uc.Repo.DeleteMessage(ctx, in.ID, in.Requester)
	if err != nil {
		if errors.Is(err, room.ErrMessageNotFound) || errors.Is(err, room.ErrNotMessageOwner) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
