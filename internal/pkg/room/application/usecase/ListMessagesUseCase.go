package usecase

import (
	"context"
	"fmt"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// ListMessagesInput names the viewer and an optional cap on the result size.
// Limit <= 0 means no cap.
type ListMessagesInput struct {
	Viewer string
	Limit  int
}

// ListMessagesUseCase returns the chat log as seen by one viewer: every
// broadcast and status event, plus private messages they sent or received.
// With a limit, only the most recent visible entries are kept, still in
// creation order.
type ListMessagesUseCase struct {
	Repo repository.RoomRepository
}

func NewListMessagesUseCase(repo repository.RoomRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{Repo: repo}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, in ListMessagesInput) ([]room.Message, error) {
	msgs, err := uc.Repo.ListMessagesVisibleTo(ctx, in.Viewer, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
