package adapter

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
	repository "batepapo-uol-api/internal/pkg/room/persistence/repository/port"
)

// MemoryRoomRepository keeps the room state in process memory. It implements
// the same contract as the Mongo adapter, including error sentinels and
// creation-order listing, and backs the test suites and storeless local runs.
type MemoryRoomRepository struct {
	mu           sync.Mutex
	participants map[string]room.Participant
	messages     []room.Message
}

func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{
		participants: make(map[string]room.Participant),
	}
}

// Ensure interface is satisfied
var _ repository.RoomRepository = (*MemoryRoomRepository)(nil)

func (r *MemoryRoomRepository) AddParticipant(_ context.Context, p room.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[p.Name]; ok {
		return room.ErrNameTaken
	}
	r.participants[p.Name] = p
	return nil
}

func (r *MemoryRoomRepository) TouchParticipant(_ context.Context, name string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.participants[name]
	if !ok {
		return room.ErrUnknownParticipant
	}
	p.LastStatus = at.UnixMilli()
	r.participants[name] = p
	return nil
}

func (r *MemoryRoomRepository) HasParticipant(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.participants[name]
	return ok, nil
}

func (r *MemoryRoomRepository) ListParticipants(_ context.Context) ([]room.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ps := make([]room.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		ps = append(ps, p)
	}
	return ps, nil
}

func (r *MemoryRoomRepository) ListIdleParticipants(_ context.Context, cutoff time.Time) ([]room.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var idle []room.Participant
	for _, p := range r.participants {
		if p.IdleSince(cutoff) {
			idle = append(idle, p)
		}
	}
	return idle, nil
}

func (r *MemoryRoomRepository) RemoveParticipant(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[name]; !ok {
		return false, nil
	}
	delete(r.participants, name)
	return true, nil
}

func (r *MemoryRoomRepository) SaveMessage(_ context.Context, m room.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = primitive.NewObjectID().Hex()
	r.messages = append(r.messages, m)
	return m.ID, nil
}

func (r *MemoryRoomRepository) ListMessagesVisibleTo(_ context.Context, viewer string, limit int) ([]room.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var visible []room.Message
	for _, m := range r.messages {
		if m.VisibleTo(viewer) {
			visible = append(visible, m)
		}
	}
	if limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	return visible, nil
}

func (r *MemoryRoomRepository) UpdateMessage(_ context.Context, id string, editor string, f room.MessageFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.messages {
		if m.ID != id {
			continue
		}
		if m.From != editor {
			return room.ErrNotMessageOwner
		}
		m.To, m.Text, m.Type = f.To, f.Text, f.Type
		r.messages[i] = m
		return nil
	}
	return room.ErrMessageNotFound
}

func (r *MemoryRoomRepository) DeleteMessage(_ context.Context, id string, requester string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.messages {
		if m.ID != id {
			continue
		}
		if m.From != requester {
			return room.ErrNotMessageOwner
		}
		r.messages = append(r.messages[:i], r.messages[i+1:]...)
		return nil
	}
	return room.ErrMessageNotFound
}
