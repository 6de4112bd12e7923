// Package telegram is an HTTP client for an MTProto gateway: a sidecar
// that holds the authenticated user session and exposes the account over
// a JSON API (getMe, getUpdates long-poll, dialog listing, messaging and
// moderation calls). Everything downstream consumes narrow interfaces,
// so the concrete wire protocol stays contained here.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	http    *http.Client
	baseURL string
	token   string
	session string
}

func NewClient(httpClient *http.Client, baseURL, token, session string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	token = strings.TrimSpace(token)
	session = strings.TrimSpace(session)
	if baseURL == "" {
		return nil, fmt.Errorf("telegram base url is required")
	}
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if session == "" {
		return nil, fmt.Errorf("telegram session is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		token:   token,
		session: session,
	}, nil
}

type envelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
}

// call POSTs a JSON body to one gateway method and decodes the result
// into out (which may be nil for fire-and-forget calls).
func (c *Client) call(ctx context.Context, method string, in, out any) error {
	if ctx == nil {
		return fmt.Errorf("context is required")
	}
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	endpoint := fmt.Sprintf("%s/session/%s/%s", c.baseURL, url.PathEscape(c.session), method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8*1024*1024))
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	if !env.OK {
		desc := strings.TrimSpace(env.Description)
		if desc == "" {
			desc = "ok=false"
		}
		return fmt.Errorf("telegram %s: %s", method, desc)
	}
	if out != nil {
		if len(env.Result) == 0 {
			return fmt.Errorf("telegram %s: empty result", method)
		}
		if err := json.Unmarshal(env.Result, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) GetMe(ctx context.Context) (User, error) {
	var me User
	if err := c.call(ctx, "getMe", nil, &me); err != nil {
		return User{}, err
	}
	if me.ID == 0 {
		return User{}, fmt.Errorf("telegram getMe: missing id")
	}
	return me, nil
}

type getUpdatesRequest struct {
	Offset         int64 `json:"offset,omitempty"`
	TimeoutSeconds int   `json:"timeout_seconds"`
}

// GetUpdates long-polls the gateway for inbound message events and
// returns the updates plus the next offset to poll from.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, int64, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout+5*time.Second)
	defer cancel()

	var updates []Update
	err := c.call(reqCtx, "getUpdates", getUpdatesRequest{Offset: offset, TimeoutSeconds: secs}, &updates)
	if err != nil {
		return nil, offset, err
	}
	next := offset
	for _, u := range updates {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}
	}
	return updates, next, nil
}

// IsPollTimeout reports whether err is the benign long-poll expiry.
func IsPollTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	return strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "client.timeout exceeded")
}

type sendMessageRequest struct {
	ChatID           int64  `json:"chat_id"`
	Text             string `json:"text"`
	ReplyToMessageID int64  `json:"reply_to_message_id,omitempty"`
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) (Message, error) {
	var msg Message
	err := c.call(ctx, "sendMessage", sendMessageRequest{ChatID: chatID, Text: text}, &msg)
	return msg, err
}

func (c *Client) ReplyMessage(ctx context.Context, chatID, replyTo int64, text string) (Message, error) {
	var msg Message
	err := c.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:           chatID,
		Text:             text,
		ReplyToMessageID: replyTo,
	}, &msg)
	return msg, err
}

type editMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	MessageID int64  `json:"message_id"`
	Text      string `json:"text"`
}

func (c *Client) EditMessage(ctx context.Context, chatID, messageID int64, text string) error {
	return c.call(ctx, "editMessage", editMessageRequest{ChatID: chatID, MessageID: messageID, Text: text}, nil)
}

type deleteMessagesRequest struct {
	ChatID     int64   `json:"chat_id"`
	MessageIDs []int64 `json:"message_ids"`
}

func (c *Client) DeleteMessages(ctx context.Context, chatID int64, messageIDs []int64) error {
	if len(messageIDs) == 0 {
		return fmt.Errorf("message_ids are required")
	}
	return c.call(ctx, "deleteMessages", deleteMessagesRequest{ChatID: chatID, MessageIDs: messageIDs}, nil)
}

type chatActionRequest struct {
	ChatID int64  `json:"chat_id"`
	Action string `json:"action"`
}

func (c *Client) SendChatAction(ctx context.Context, chatID int64, action string) error {
	return c.call(ctx, "sendChatAction", chatActionRequest{ChatID: chatID, Action: action}, nil)
}

type getMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// GetMessage fetches one message, used to resolve the replied-to message
// of an inbound command.
func (c *Client) GetMessage(ctx context.Context, chatID, messageID int64) (Message, error) {
	var msg Message
	err := c.call(ctx, "getMessage", getMessageRequest{ChatID: chatID, MessageID: messageID}, &msg)
	return msg, err
}

type listMessagesRequest struct {
	ChatID int64 `json:"chat_id"`
	Limit  int   `json:"limit,omitempty"`
	MinID  int64 `json:"min_id,omitempty"`
}

// ListMessages returns recent message ids in chatID, newest first. A
// non-zero minID bounds the range from below instead of by count.
func (c *Client) ListMessages(ctx context.Context, chatID int64, limit int, minID int64) ([]Message, error) {
	var msgs []Message
	err := c.call(ctx, "listMessages", listMessagesRequest{ChatID: chatID, Limit: limit, MinID: minID}, &msgs)
	return msgs, err
}

type listDialogsRequest struct {
	Limit int `json:"limit"`
}

// ListDialogs returns up to limit dialogs of the session's account.
func (c *Client) ListDialogs(ctx context.Context, limit int) ([]Dialog, error) {
	var dialogs []Dialog
	err := c.call(ctx, "listDialogs", listDialogsRequest{Limit: limit}, &dialogs)
	return dialogs, err
}

type sendFileRequest struct {
	ChatID    int64  `json:"chat_id"`
	Path      string `json:"path,omitempty"`
	URL       string `json:"url,omitempty"`
	VoiceNote bool   `json:"voice_note,omitempty"`
}

// SendFile uploads a local file as an attachment.
func (c *Client) SendFile(ctx context.Context, chatID int64, path string) error {
	return c.call(ctx, "sendFile", sendFileRequest{ChatID: chatID, Path: path}, nil)
}

// SendFileURL has the gateway fetch and forward a remote file.
func (c *Client) SendFileURL(ctx context.Context, chatID int64, fileURL string) error {
	return c.call(ctx, "sendFile", sendFileRequest{ChatID: chatID, URL: fileURL}, nil)
}

// SendVoice uploads a local audio file as a voice note.
func (c *Client) SendVoice(ctx context.Context, chatID int64, path string) error {
	return c.call(ctx, "sendFile", sendFileRequest{ChatID: chatID, Path: path, VoiceNote: true}, nil)
}

type sendPollRequest struct {
	ChatID   int64    `json:"chat_id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (c *Client) SendPoll(ctx context.Context, chatID int64, question string, options []string) error {
	if len(options) < 2 {
		return fmt.Errorf("poll needs at least two options")
	}
	return c.call(ctx, "sendPoll", sendPollRequest{ChatID: chatID, Question: question, Options: options}, nil)
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	About     *string `json:"about,omitempty"`
}

// UpdateProfileName changes the account's display name.
func (c *Client) UpdateProfileName(ctx context.Context, first, last string) error {
	return c.call(ctx, "updateProfile", updateProfileRequest{FirstName: &first, LastName: &last}, nil)
}

// UpdateProfileAbout changes the account's bio line.
func (c *Client) UpdateProfileAbout(ctx context.Context, about string) error {
	return c.call(ctx, "updateProfile", updateProfileRequest{About: &about}, nil)
}

func (c *Client) GetProfilePhotos(ctx context.Context) ([]Photo, error) {
	var photos []Photo
	err := c.call(ctx, "getProfilePhotos", nil, &photos)
	return photos, err
}

type setProfilePhotoRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// SetProfilePhotoFromMessage uploads the photo attached to an existing
// message as the new profile picture.
func (c *Client) SetProfilePhotoFromMessage(ctx context.Context, chatID, messageID int64) error {
	return c.call(ctx, "setProfilePhoto", setProfilePhotoRequest{ChatID: chatID, MessageID: messageID}, nil)
}

type deleteProfilePhotoRequest struct {
	PhotoID int64 `json:"photo_id"`
}

func (c *Client) DeleteProfilePhoto(ctx context.Context, photoID int64) error {
	return c.call(ctx, "deleteProfilePhoto", deleteProfilePhotoRequest{PhotoID: photoID}, nil)
}

type sendProfilePhotoRequest struct {
	ChatID  int64 `json:"chat_id"`
	PhotoID int64 `json:"photo_id"`
}

// SendProfilePhoto forwards one of the account's profile photos to a chat.
func (c *Client) SendProfilePhoto(ctx context.Context, chatID, photoID int64) error {
	return c.call(ctx, "sendProfilePhoto", sendProfilePhotoRequest{ChatID: chatID, PhotoID: photoID}, nil)
}

type resolveUsernameRequest struct {
	Username string `json:"username"`
}

// ResolveUsername looks a user up by @handle.
func (c *Client) ResolveUsername(ctx context.Context, username string) (User, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return User{}, fmt.Errorf("username is required")
	}
	var u User
	err := c.call(ctx, "resolveUsername", resolveUsernameRequest{Username: username}, &u)
	return u, err
}

type getUserRequest struct {
	UserID int64 `json:"user_id"`
}

func (c *Client) GetUser(ctx context.Context, userID int64) (User, error) {
	var u User
	err := c.call(ctx, "getUser", getUserRequest{UserID: userID}, &u)
	return u, err
}

type inviteUserRequest struct {
	ChatID int64 `json:"chat_id"`
	UserID int64 `json:"user_id"`
}

func (c *Client) InviteUser(ctx context.Context, chatID, userID int64) error {
	return c.call(ctx, "inviteUser", inviteUserRequest{ChatID: chatID, UserID: userID}, nil)
}

type kickParticipantRequest struct {
	ChatID int64 `json:"chat_id"`
	UserID int64 `json:"user_id"`
}

func (c *Client) KickParticipant(ctx context.Context, chatID, userID int64) error {
	return c.call(ctx, "kickParticipant", kickParticipantRequest{ChatID: chatID, UserID: userID}, nil)
}

type setBannedRightsRequest struct {
	ChatID int64        `json:"chat_id"`
	UserID int64        `json:"user_id"`
	Rights BannedRights `json:"rights"`
}

// SetBannedRights applies (or lifts) messaging restrictions on one
// participant. Rights with a nil UntilDate apply indefinitely.
func (c *Client) SetBannedRights(ctx context.Context, chatID, userID int64, rights BannedRights) error {
	return c.call(ctx, "setBannedRights", setBannedRightsRequest{ChatID: chatID, UserID: userID, Rights: rights}, nil)
}

type pinMessageRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

func (c *Client) PinMessage(ctx context.Context, chatID, messageID int64) error {
	return c.call(ctx, "pinMessage", pinMessageRequest{ChatID: chatID, MessageID: messageID}, nil)
}

type unpinMessagesRequest struct {
	ChatID int64 `json:"chat_id"`
}

// UnpinMessages removes the chat's pinned messages.
func (c *Client) UnpinMessages(ctx context.Context, chatID int64) error {
	return c.call(ctx, "unpinMessages", unpinMessagesRequest{ChatID: chatID}, nil)
}

type editFolderRequest struct {
	ChatID   int64 `json:"chat_id"`
	FolderID int   `json:"folder_id"`
}

// EditFolder moves a chat between the main list and the archive.
func (c *Client) EditFolder(ctx context.Context, chatID int64, folderID int) error {
	return c.call(ctx, "editFolder", editFolderRequest{ChatID: chatID, FolderID: folderID}, nil)
}

// Close asks the gateway to disconnect the session gracefully.
func (c *Client) Close(ctx context.Context) error {
	return c.call(ctx, "disconnect", nil, nil)
}
