package repository

import (
	"context"
	"time"

	room "batepapo-uol-api/internal/pkg/room/application/domain"
)

// RoomRepository defines persistence operations for the room domain.
// Implementations must be safe for concurrent use: request handlers and the
// presence sweeper share a single instance. Uniqueness and ownership checks
// are delegated to the store itself (unique index, filtered writes) rather
// than in-process locks, since handlers keep no state between requests.
type RoomRepository interface {
	// AddParticipant inserts a new participant. Returns room.ErrNameTaken if
	// the name is already registered.
	AddParticipant(ctx context.Context, p room.Participant) error

	// TouchParticipant refreshes the participant's lastStatus timestamp.
	// Returns room.ErrUnknownParticipant if the name is not registered.
	TouchParticipant(ctx context.Context, name string, at time.Time) error

	// HasParticipant reports whether the name is currently registered.
	HasParticipant(ctx context.Context, name string) (bool, error)

	// ListParticipants returns every current participant, in no guaranteed order.
	ListParticipants(ctx context.Context) ([]room.Participant, error)

	// ListIdleParticipants returns participants whose lastStatus is older than
	// the cutoff. Used by the sweeper to snapshot eviction candidates before
	// mutating the collection.
	ListIdleParticipants(ctx context.Context, cutoff time.Time) ([]room.Participant, error)

	// RemoveParticipant deletes the participant and reports whether this call
	// performed the deletion (false if the name was already gone).
	RemoveParticipant(ctx context.Context, name string) (bool, error)

	// SaveMessage appends a message, letting the store assign its id, and
	// returns the assigned id.
	SaveMessage(ctx context.Context, m room.Message) (string, error)

	// ListMessagesVisibleTo returns messages visible to viewer in creation
	// order. A positive limit keeps only the most recent entries; limit <= 0
	// returns everything visible.
	ListMessagesVisibleTo(ctx context.Context, viewer string, limit int) ([]room.Message, error)

	// UpdateMessage replaces the sender-controlled fields of the message,
	// provided editor is its original sender. Returns room.ErrMessageNotFound
	// or room.ErrNotMessageOwner accordingly.
	UpdateMessage(ctx context.Context, id string, editor string, f room.MessageFields) error

	// DeleteMessage permanently removes the message, provided requester is its
	// original sender. Same error contract as UpdateMessage.
	DeleteMessage(ctx context.Context, id string, requester string) error
}
