package room

import "errors"

var (
	// ErrNameTaken signals a join attempt with a name already present.
	ErrNameTaken = errors.New("participant name already taken")

	// ErrUnknownParticipant signals an operation on a name not in the room.
	ErrUnknownParticipant = errors.New("participant not in the room")

	// ErrMessageNotFound signals an edit/delete against a nonexistent message id.
	ErrMessageNotFound = errors.New("message not found")

	// ErrNotMessageOwner signals an edit/delete by someone other than the
	// message's original sender.
	ErrNotMessageOwner = errors.New("not the message owner")
)
