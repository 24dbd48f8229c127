package room

import "time"

// Participant is a named identity currently present in the room.
// Primary key: Name (unique in the store).
type Participant struct {
	Name       string `bson:"name" json:"name"`
	LastStatus int64  `bson:"lastStatus" json:"lastStatus"` // unix milliseconds of last heartbeat
}

// NewParticipant builds a participant whose presence starts now.
func NewParticipant(name string) Participant {
	return Participant{
		Name:       name,
		LastStatus: time.Now().UnixMilli(),
	}
}

// IdleSince reports whether the participant has not heartbeated since the cutoff.
func (p Participant) IdleSince(cutoff time.Time) bool {
	return p.LastStatus < cutoff.UnixMilli()
}
