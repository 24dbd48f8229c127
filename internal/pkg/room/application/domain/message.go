package room

import (
	"fmt"
	"time"
)

// Message types as persisted and exposed on the wire.
// "message" is a broadcast, "private_message" is visible only to its sender
// and addressee, "status" marks a system-generated join/leave event.
const (
	MessageTypeBroadcast = "message"
	MessageTypePrivate   = "private_message"
	MessageTypeStatus    = "status"
)

// BroadcastTarget is the addressee of messages meant for the whole room.
const BroadcastTarget = "everyone"

// TimeLayout is the wall-clock format stored in Message.Time.
const TimeLayout = "15:04:05"

// Message is one entry in the room's chat log.
type Message struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// MessageFields are the sender-controlled fields of a message. They are the
// payload of both creation and edits; From, ID and Time never come from here.
type MessageFields struct {
	To   string
	Text string
	Type string
}

// NewMessage stamps a fresh message from the given sender. The ID is assigned
// by the store on insert.
func NewMessage(from string, f MessageFields) Message {
	return Message{
		From: from,
		To:   f.To,
		Text: f.Text,
		Type: f.Type,
		Time: time.Now().Format(TimeLayout),
	}
}

// NewEnterMessage is the status event appended when a participant joins.
func NewEnterMessage(name string) Message {
	return NewMessage(name, MessageFields{
		To:   BroadcastTarget,
		Text: fmt.Sprintf("%s entra na sala...", name),
		Type: MessageTypeStatus,
	})
}

// NewLeaveMessage is the status event appended when the sweeper evicts a
// participant.
func NewLeaveMessage(name string) Message {
	return NewMessage(name, MessageFields{
		To:   BroadcastTarget,
		Text: fmt.Sprintf("%s sai da sala...", name),
		Type: MessageTypeStatus,
	})
}

// VisibleTo reports whether viewer may see the message: private messages are
// restricted to their sender and addressee, every other type is public.
func (m Message) VisibleTo(viewer string) bool {
	if m.Type != MessageTypePrivate {
		return true
	}
	return m.From == viewer || m.To == viewer
}
