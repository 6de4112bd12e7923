package models

import "time"

// Chat is one remote conversation as observed by one registered account.
// (ChatID, AccountID) is the external upsert key; ChatID alone is only
// unique within a single account's scope.
type Chat struct {
	ID                uint  `gorm:"primaryKey"`
	ChatID            int64 `gorm:"uniqueIndex:idx_chats_chat_account"`
	AccountID         int64 `gorm:"uniqueIndex:idx_chats_chat_account"`
	AccountName       string
	Title             string
	Username          string
	Kind              string
	ParticipantsCount int
	UnreadCount       int
	UnreadMentions    int
	LastMessageAt     *time.Time
	Archived          bool
	Pinned            bool
	Deleted           bool
	LastAccessed      time.Time
	Metadata          string
}
