package bot

import (
	"context"
	"fmt"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
)

// Event is one inbound message considered for dispatch.
type Event struct {
	SenderID        int64
	ChatID          int64
	MessageID       int64
	Text            string
	IsReply         bool
	IsPrivate       bool
	SenderFirstName string

	replyFetch func(ctx context.Context) (telegram.Message, error)
	replied    *telegram.Message
}

// ReplyTarget fetches the message this event replies to, lazily and at
// most once.
func (e *Event) ReplyTarget(ctx context.Context) (telegram.Message, error) {
	if !e.IsReply || e.replyFetch == nil {
		return telegram.Message{}, fmt.Errorf("event is not a reply")
	}
	if e.replied != nil {
		return *e.replied, nil
	}
	msg, err := e.replyFetch(ctx)
	if err != nil {
		return telegram.Message{}, err
	}
	e.replied = &msg
	return msg, nil
}

func eventFromUpdate(transport Transport, u telegram.Update) (Event, bool) {
	if u.Message == nil || u.Message.Text == "" {
		return Event{}, false
	}
	msg := *u.Message
	ev := Event{
		SenderID:        msg.SenderID,
		ChatID:          msg.ChatID,
		MessageID:       msg.ID,
		Text:            msg.Text,
		IsReply:         u.ReplyToMessageID > 0,
		IsPrivate:       u.IsPrivate,
		SenderFirstName: u.SenderFirstName,
	}
	if ev.IsReply {
		replyTo := u.ReplyToMessageID
		ev.replyFetch = func(ctx context.Context) (telegram.Message, error) {
			return transport.GetMessage(ctx, msg.ChatID, replyTo)
		}
	}
	return ev, true
}
