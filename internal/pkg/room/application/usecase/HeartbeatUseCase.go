package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// HeartbeatInput identifies the participant refreshing their presence.
type HeartbeatInput struct {
	Name string
}

// HeartbeatUseCase refreshes a participant's lastStatus timestamp so the
// presence sweeper keeps them in the room.
type HeartbeatUseCase struct {
	Repo repository.RoomRepository
}

func NewHeartbeatUseCase(repo repository.RoomRepository) *HeartbeatUseCase {
	return &HeartbeatUseCase{Repo: repo}
}

func (uc *HeartbeatUseCase) Execute(ctx context.Context, in HeartbeatInput) error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}

	if err := uc.Repo.TouchParticipant(ctx, in.Name, time.Now()); err != nil {
		if errors.Is(err, room.ErrUnknownParticipant) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
