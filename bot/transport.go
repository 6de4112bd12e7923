package bot

import (
	"context"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
)

// Messenger covers plain message traffic.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) (telegram.Message, error)
	ReplyMessage(ctx context.Context, chatID, replyTo int64, text string) (telegram.Message, error)
	EditMessage(ctx context.Context, chatID, messageID int64, text string) error
	DeleteMessages(ctx context.Context, chatID int64, messageIDs []int64) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
	GetMessage(ctx context.Context, chatID, messageID int64) (telegram.Message, error)
	ListMessages(ctx context.Context, chatID int64, limit int, minID int64) ([]telegram.Message, error)
	SendPoll(ctx context.Context, chatID int64, question string, options []string) error
}

// FileSender covers attachment uploads.
type FileSender interface {
	SendFile(ctx context.Context, chatID int64, path string) error
	SendFileURL(ctx context.Context, chatID int64, fileURL string) error
	SendVoice(ctx context.Context, chatID int64, path string) error
}

// ProfileManager covers the account's own profile.
type ProfileManager interface {
	UpdateProfileName(ctx context.Context, first, last string) error
	UpdateProfileAbout(ctx context.Context, about string) error
	GetProfilePhotos(ctx context.Context) ([]telegram.Photo, error)
	SetProfilePhotoFromMessage(ctx context.Context, chatID, messageID int64) error
	DeleteProfilePhoto(ctx context.Context, photoID int64) error
	SendProfilePhoto(ctx context.Context, chatID, photoID int64) error
}

// Moderator covers group and channel management.
type Moderator interface {
	InviteUser(ctx context.Context, chatID, userID int64) error
	KickParticipant(ctx context.Context, chatID, userID int64) error
	SetBannedRights(ctx context.Context, chatID, userID int64, rights telegram.BannedRights) error
	PinMessage(ctx context.Context, chatID, messageID int64) error
	UnpinMessages(ctx context.Context, chatID int64) error
	EditFolder(ctx context.Context, chatID int64, folderID int) error
}

// UserDirectory resolves identities.
type UserDirectory interface {
	ResolveUsername(ctx context.Context, username string) (telegram.User, error)
	GetUser(ctx context.Context, userID int64) (telegram.User, error)
}

// Transport is everything the command handlers may ask of the
// connected session. *telegram.Client implements it.
type Transport interface {
	Messenger
	FileSender
	ProfileManager
	Moderator
	UserDirectory
	Close(ctx context.Context) error
}

// UpdateSource is the long-poll side of the transport consumed by the
// dispatch loop.
type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.Update, int64, error)
}
