package accounts

import (
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/internal/relativetime"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
)

// Kind is the closed classification of a conversation partner. Exactly
// one tag holds for every record.
type Kind string

const (
	KindPerson  Kind = "person"
	KindGroup   Kind = "group"
	KindChannel Kind = "channel"
)

// ClassifyEntity maps the gateway's heterogeneous entity shapes onto the
// closed Kind set at the transport boundary. Anything that is not a
// group chat or a channel is treated as a person.
func ClassifyEntity(e telegram.Entity) Kind {
	switch e.Type {
	case telegram.EntityChannel:
		return KindChannel
	case telegram.EntityChat:
		return KindGroup
	default:
		return KindPerson
	}
}

// ChatRecord is one remote conversation as seen from one registered
// account. ChatID is unique only within an account's scope.
type ChatRecord struct {
	AccountID         int64
	AccountName       string
	ChatID            int64
	Title             string
	Username          string
	Kind              Kind
	UnreadCount       int
	UnreadMentions    int
	LastMessageAt     *time.Time
	Archived          bool
	Pinned            bool
	ParticipantsCount int
}

func recordFromDialog(accountID int64, accountName string, d telegram.Dialog) ChatRecord {
	title := d.Name
	if title == "" {
		title = d.Entity.Title
	}
	if title == "" {
		title = "Unknown"
	}

	kind := ClassifyEntity(d.Entity)

	rec := ChatRecord{
		AccountID:      accountID,
		AccountName:    accountName,
		ChatID:         d.ID,
		Title:          title,
		Username:       d.Entity.Username,
		Kind:           kind,
		UnreadCount:    d.UnreadCount,
		UnreadMentions: d.UnreadMentionsCount,
		Archived:       d.Archived,
		Pinned:         d.Pinned,
	}
	if d.LastMessageAt != nil {
		// Strip zone info so later subtraction is consistent across
		// sources that may or may not attach it.
		naive := relativetime.Naive(*d.LastMessageAt)
		rec.LastMessageAt = &naive
	}
	if kind == KindGroup || kind == KindChannel {
		rec.ParticipantsCount = d.Entity.ParticipantsCount
	}
	return rec
}
