package telegram

import "time"

// Entity types as reported by the gateway.
const (
	EntityUser    = "user"
	EntityChat    = "chat"
	EntityChannel = "channel"
)

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsBot     bool   `json:"is_bot,omitempty"`
}

// Entity is the heterogeneous conversation partner behind a dialog:
// a user, a small group chat or a channel/supergroup.
type Entity struct {
	Type              string `json:"type"`
	ID                int64  `json:"id"`
	Title             string `json:"title,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	Username          string `json:"username,omitempty"`
	ParticipantsCount int    `json:"participants_count,omitempty"`
}

// Dialog is one conversation thread in the account's dialog list.
type Dialog struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name,omitempty"`
	Entity              Entity     `json:"entity"`
	UnreadCount         int        `json:"unread_count,omitempty"`
	UnreadMentionsCount int        `json:"unread_mentions_count,omitempty"`
	LastMessageAt       *time.Time `json:"last_message_at,omitempty"`
	Archived            bool       `json:"archived,omitempty"`
	Pinned              bool       `json:"pinned,omitempty"`
}

type Message struct {
	ID       int64      `json:"id"`
	ChatID   int64      `json:"chat_id"`
	SenderID int64      `json:"sender_id,omitempty"`
	Text     string     `json:"text,omitempty"`
	HasPhoto bool       `json:"has_photo,omitempty"`
	SentAt   *time.Time `json:"sent_at,omitempty"`
}

// Update is one inbound event from the long-poll stream.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`

	IsPrivate        bool   `json:"is_private,omitempty"`
	SenderFirstName  string `json:"sender_first_name,omitempty"`
	ReplyToMessageID int64  `json:"reply_to_message_id,omitempty"`
}

// BannedRights mirrors the gateway's participant restriction flags.
// A zero UntilDate means the restriction has no expiry.
type BannedRights struct {
	UntilDate    *time.Time `json:"until_date,omitempty"`
	SendMessages bool       `json:"send_messages"`
	SendMedia    bool       `json:"send_media"`
	SendStickers bool       `json:"send_stickers"`
	SendGifs     bool       `json:"send_gifs"`
	SendGames    bool       `json:"send_games"`
	SendInline   bool       `json:"send_inline"`
	EmbedLinks   bool       `json:"embed_links"`
}

// Profile photo reference returned by GetProfilePhotos.
type Photo struct {
	ID int64 `json:"id"`
}

// Typing action names accepted by SendChatAction.
const ActionTyping = "typing"

// Archive folder ids: 0 is the main list, 1 the archive.
const (
	FolderMain    = 0
	FolderArchive = 1
)
