package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// ExpireParticipantsUseCase evicts participants whose heartbeat is older than
// the idle threshold and appends one departure status event per eviction.
//
// The candidate set is snapshotted before any deletion, since the scan and the
// removals target the same collection. Each eviction is a delete followed by a
// message insert; the pair is sequenced but not transactional, so a crash in
// between can lose the departure event. That is the accepted best-effort
// guarantee. The departure event is only written when this sweep's delete won,
// which keeps it to exactly one per evicted name even with overlapping sweeps.
type ExpireParticipantsUseCase struct {
	Repo repository.RoomRepository
}

func NewExpireParticipantsUseCase(repo repository.RoomRepository) *ExpireParticipantsUseCase {
	return &ExpireParticipantsUseCase{Repo: repo}
}

// Execute returns the names evicted by this pass. A failure on one participant
// does not stop the others; errors are joined and reported together.
func (uc *ExpireParticipantsUseCase) Execute(ctx context.Context, idleAfter time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-idleAfter)

	idle, err := uc.Repo.ListIdleParticipants(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var evicted []string
	var errs []error
	for _, p := range idle {
		removed, err := uc.Repo.RemoveParticipant(ctx, p.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", p.Name, err))
			continue
		}
		if !removed {
			// Already gone, evicted by a concurrent pass.
			continue
		}
		if _, err := uc.Repo.SaveMessage(ctx, room.NewLeaveMessage(p.Name)); err != nil {
			errs = append(errs, fmt.Errorf("departure event for %s: %w", p.Name, err))
		}
		evicted = append(evicted, p.Name)
	}

	return evicted, errors.Join(errs...)
}
