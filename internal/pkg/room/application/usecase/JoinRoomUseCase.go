package usecase

import (
	"context"
	"errors"
	"fmt"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// JoinRoomInput carries the display name of the participant entering the room.
type JoinRoomInput struct {
	Name string
}

// JoinRoomUseCase registers a participant and announces the arrival to the room.
// The store's unique index arbitrates concurrent joins with the same name, so
// at most one of them succeeds.
type JoinRoomUseCase struct {
	Repo repository.RoomRepository
}

func NewJoinRoomUseCase(repo repository.RoomRepository) *JoinRoomUseCase {
	return &JoinRoomUseCase{Repo: repo}
}

func (uc *JoinRoomUseCase) Execute(ctx context.Context, in JoinRoomInput) error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}

	if err := uc.Repo.AddParticipant(ctx, room.NewParticipant(in.Name)); err != nil {
		if errors.Is(err, room.ErrNameTaken) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if _, err := uc.Repo.SaveMessage(ctx, room.NewEnterMessage(in.Name)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
