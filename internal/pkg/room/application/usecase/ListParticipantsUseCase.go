package usecase

import (
	"context"
	"fmt"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// ListParticipantsUseCase returns everyone currently present in the room.
type ListParticipantsUseCase struct {
	Repo repository.RoomRepository
}

func NewListParticipantsUseCase(repo repository.RoomRepository) *ListParticipantsUseCase {
	return &ListParticipantsUseCase{Repo: repo}
}

func (uc *ListParticipantsUseCase) Execute(ctx context.Context) ([]room.Participant, error) {
	ps, err := uc.Repo.ListParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return ps, nil
}
