package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessage_StampsWallClockTime(t *testing.T) {
	req := require.New(t)

	msg := NewMessage("alice", MessageFields{To: BroadcastTarget, Text: "hi", Type: MessageTypeBroadcast})

	req.Equal("alice", msg.From)
	req.Equal(BroadcastTarget, msg.To)
	req.Equal("hi", msg.Text)
	req.Equal(MessageTypeBroadcast, msg.Type)
	req.Empty(msg.ID)

	parsed, err := time.Parse(TimeLayout, msg.Time)
	req.NoError(err)
	req.False(parsed.IsZero())
}

func TestStatusMessages(t *testing.T) {
	req := require.New(t)

	enter := NewEnterMessage("alice")
	req.Equal("alice", enter.From)
	req.Equal(BroadcastTarget, enter.To)
	req.Equal(MessageTypeStatus, enter.Type)
	req.Equal("alice entra na sala...", enter.Text)

	leave := NewLeaveMessage("alice")
	req.Equal("alice sai da sala...", leave.Text)
	req.Equal(MessageTypeStatus, leave.Type)
	req.Equal(BroadcastTarget, leave.To)
}

func TestMessage_VisibleTo(t *testing.T) {
	private := Message{From: "alice", To: "bob", Type: MessageTypePrivate}
	broadcast := Message{From: "alice", To: BroadcastTarget, Type: MessageTypeBroadcast}
	status := Message{From: "alice", To: BroadcastTarget, Type: MessageTypeStatus}

	req := require.New(t)

	// Private messages only reach sender and addressee
	req.True(private.VisibleTo("alice"))
	req.True(private.VisibleTo("bob"))
	req.False(private.VisibleTo("carol"))
	req.False(private.VisibleTo(""))

	// Everything else is public
	req.True(broadcast.VisibleTo("carol"))
	req.True(status.VisibleTo("carol"))
	req.True(broadcast.VisibleTo(""))
}

func TestParticipant_IdleSince(t *testing.T) {
	req := require.New(t)

	p := NewParticipant("alice")
	req.False(p.IdleSince(time.Now().Add(-10 * time.Second)))

	p.LastStatus = time.Now().Add(-30 * time.Second).UnixMilli()
	req.True(p.IdleSince(time.Now().Add(-10 * time.Second)))
}
