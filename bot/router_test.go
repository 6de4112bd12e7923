package bot

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
)

// fakeTransport records every outbound call and satisfies the full
// Transport surface. Methods not exercised by a test just succeed.
type fakeTransport struct {
	mu       sync.Mutex
	calls    []string
	replies  []string
	sent     []string
	edits    []string
	deleted  [][]int64
	banned   []telegram.BannedRights
	folders  []int
	fileURLs []string
	messages map[int64]telegram.Message

	nextID int64
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{messages: map[int64]telegram.Message{}}
}

func (f *fakeTransport) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeTransport) callNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeTransport) replyTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.replies))
	copy(out, f.replies)
	return out
}

func (f *fakeTransport) SendMessage(_ context.Context, _ int64, text string) (telegram.Message, error) {
	f.record("SendMessage")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	f.nextID++
	return telegram.Message{ID: f.nextID}, nil
}

func (f *fakeTransport) ReplyMessage(_ context.Context, _, _ int64, text string) (telegram.Message, error) {
	f.record("ReplyMessage")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, text)
	f.nextID++
	return telegram.Message{ID: f.nextID}, nil
}

func (f *fakeTransport) EditMessage(_ context.Context, _, _ int64, text string) error {
	f.record("EditMessage")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, text)
	return nil
}

func (f *fakeTransport) DeleteMessages(_ context.Context, _ int64, ids []int64) error {
	f.record("DeleteMessages")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ids)
	return nil
}

func (f *fakeTransport) SendChatAction(_ context.Context, _ int64, _ string) error {
	f.record("SendChatAction")
	return nil
}

func (f *fakeTransport) GetMessage(_ context.Context, _, messageID int64) (telegram.Message, error) {
	f.record("GetMessage")
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := f.messages[messageID]; ok {
		return msg, nil
	}
	return telegram.Message{ID: messageID}, nil
}

func (f *fakeTransport) ListMessages(_ context.Context, _ int64, limit int, _ int64) ([]telegram.Message, error) {
	f.record("ListMessages")
	out := make([]telegram.Message, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, telegram.Message{ID: int64(100 + i)})
	}
	return out, nil
}

func (f *fakeTransport) SendPoll(_ context.Context, _ int64, _ string, _ []string) error {
	f.record("SendPoll")
	return nil
}

func (f *fakeTransport) SendFile(_ context.Context, _ int64, _ string) error {
	f.record("SendFile")
	return nil
}

func (f *fakeTransport) SendFileURL(_ context.Context, _ int64, fileURL string) error {
	f.record("SendFileURL")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fileURLs = append(f.fileURLs, fileURL)
	return nil
}

func (f *fakeTransport) SendVoice(_ context.Context, _ int64, _ string) error {
	f.record("SendVoice")
	return nil
}

func (f *fakeTransport) UpdateProfileName(_ context.Context, _, _ string) error {
	f.record("UpdateProfileName")
	return nil
}

func (f *fakeTransport) UpdateProfileAbout(_ context.Context, _ string) error {
	f.record("UpdateProfileAbout")
	return nil
}

func (f *fakeTransport) GetProfilePhotos(_ context.Context) ([]telegram.Photo, error) {
	f.record("GetProfilePhotos")
	return nil, nil
}

func (f *fakeTransport) SetProfilePhotoFromMessage(_ context.Context, _, _ int64) error {
	f.record("SetProfilePhotoFromMessage")
	return nil
}

func (f *fakeTransport) DeleteProfilePhoto(_ context.Context, _ int64) error {
	f.record("DeleteProfilePhoto")
	return nil
}

func (f *fakeTransport) SendProfilePhoto(_ context.Context, _, _ int64) error {
	f.record("SendProfilePhoto")
	return nil
}

func (f *fakeTransport) InviteUser(_ context.Context, _, _ int64) error {
	f.record("InviteUser")
	return nil
}

func (f *fakeTransport) KickParticipant(_ context.Context, _, _ int64) error {
	f.record("KickParticipant")
	return nil
}

func (f *fakeTransport) SetBannedRights(_ context.Context, _, _ int64, rights telegram.BannedRights) error {
	f.record("SetBannedRights")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.banned = append(f.banned, rights)
	return nil
}

func (f *fakeTransport) PinMessage(_ context.Context, _, _ int64) error {
	f.record("PinMessage")
	return nil
}

func (f *fakeTransport) UnpinMessages(_ context.Context, _ int64) error {
	f.record("UnpinMessages")
	return nil
}

func (f *fakeTransport) EditFolder(_ context.Context, _ int64, folderID int) error {
	f.record("EditFolder")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.folders = append(f.folders, folderID)
	return nil
}

func (f *fakeTransport) ResolveUsername(_ context.Context, username string) (telegram.User, error) {
	f.record("ResolveUsername")
	return telegram.User{ID: 777, Username: username}, nil
}

func (f *fakeTransport) GetUser(_ context.Context, userID int64) (telegram.User, error) {
	f.record("GetUser")
	return telegram.User{ID: userID, FirstName: "Sam"}, nil
}

func (f *fakeTransport) Close(_ context.Context) error {
	f.record("Close")
	return nil
}

const testOwnerID = 42

func newTestRouter(t *testing.T, transport *fakeTransport) (*Router, *Handlers) {
	t.Helper()
	r, err := NewRouter(Options{
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Transport: transport,
		Sleep:     func(context.Context, time.Duration) {},
	})
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	r.SetOwner(testOwnerID)
	rt := &Runtime{
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Transport: transport,
		Sleep:     func(context.Context, time.Duration) {},
	}
	h := NewHandlers(rt)
	h.RegisterAll(r)
	return r, h
}

func ownerEvent(text string) Event {
	return Event{SenderID: testOwnerID, ChatID: 1, MessageID: 5, Text: text}
}

func TestDispatchNonOwnerGetsAuthReplyOnly(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	ev := Event{SenderID: 999, ChatID: 1, MessageID: 5, Text: ".ping"}
	r.Dispatch(context.Background(), ev)

	replies := transport.replyTexts()
	if len(replies) != 1 || replies[0] != "❌ You are not authorized to use this bot." {
		t.Fatalf("replies = %v, want single authorization notice", replies)
	}
	for _, call := range transport.callNames() {
		if call != "ReplyMessage" {
			t.Errorf("unexpected side effect %q for unauthorized sender", call)
		}
	}
}

func TestDispatchUnmatchedTextIsSilent(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"hello there",
		".unknowncmd",
		".ping extra",      // .ping takes no arguments
		".clearchats abc",  // malformed integer tail
		".exportchats xml", // format word outside csv|json
		".",
	} {
		transport := newFakeTransport()
		r, _ := newTestRouter(t, transport)
		r.Dispatch(context.Background(), Event{SenderID: 999, ChatID: 1, Text: text})
		if calls := transport.callNames(); len(calls) != 0 {
			t.Errorf("Dispatch(%q) produced calls %v, want none", text, calls)
		}
	}
}

func TestDispatchTypingPrecedesReply(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	r.Dispatch(context.Background(), ownerEvent(".dice"))

	calls := transport.callNames()
	if len(calls) < 2 || calls[0] != "SendChatAction" {
		t.Fatalf("calls = %v, want SendChatAction first", calls)
	}
	if calls[1] != "ReplyMessage" {
		t.Fatalf("calls = %v, want ReplyMessage after typing indicator", calls)
	}
}

func TestDispatchDiceReply(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	r.Dispatch(context.Background(), ownerEvent(".dice"))

	replies := transport.replyTexts()
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	valid := false
	for n := 1; n <= 6; n++ {
		if replies[0] == "🎲 Dice roll: **"+string(rune('0'+n))+"**" {
			valid = true
		}
	}
	if !valid {
		t.Errorf("dice reply %q not a face from 1 to 6", replies[0])
	}
}

func TestDispatchQRSendsEncodedImage(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	r.Dispatch(context.Background(), ownerEvent(".qr hello world"))

	if len(transport.fileURLs) != 1 {
		t.Fatalf("file sends = %v, want exactly one", transport.fileURLs)
	}
	got := transport.fileURLs[0]
	if !strings.HasPrefix(got, "https://api.qrserver.com/v1/create-qr-code/") {
		t.Errorf("file url = %q, want the qrserver endpoint", got)
	}
	if !strings.Contains(got, "data=hello+world") {
		t.Errorf("file url = %q, want the payload query-escaped", got)
	}
}

func TestDispatchChooseMembership(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	r.Dispatch(context.Background(), ownerEvent(".choose red, green, blue"))

	replies := transport.replyTexts()
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want 1", len(replies))
	}
	got := replies[0]
	if got != "🤔 I choose: **red**" && got != "🤔 I choose: **green**" && got != "🤔 I choose: **blue**" {
		t.Errorf("choose reply %q names an option outside the list", got)
	}
}

func TestMuteWithoutDurationSaysForever(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	ev := ownerEvent(".mute")
	ev.IsReply = true
	ev.replyFetch = func(context.Context) (telegram.Message, error) {
		return telegram.Message{ID: 3, SenderID: 555}, nil
	}
	r.Dispatch(context.Background(), ev)

	replies := transport.replyTexts()
	if len(replies) != 1 || replies[0] != "✅ Muted forever." {
		t.Fatalf("replies = %v, want forever notice", replies)
	}
	if len(transport.banned) != 1 {
		t.Fatalf("SetBannedRights calls = %d, want 1", len(transport.banned))
	}
	if transport.banned[0].UntilDate != nil {
		t.Errorf("UntilDate = %v, want nil for indefinite mute", transport.banned[0].UntilDate)
	}
	if !transport.banned[0].SendMessages {
		t.Errorf("SendMessages restriction not set")
	}
}

func TestMuteWithDurationSetsExpiry(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	ev := ownerEvent(".mute 30")
	ev.IsReply = true
	ev.replyFetch = func(context.Context) (telegram.Message, error) {
		return telegram.Message{ID: 3, SenderID: 555}, nil
	}
	r.Dispatch(context.Background(), ev)

	replies := transport.replyTexts()
	if len(replies) != 1 || replies[0] != "✅ Muted for 30 min." {
		t.Fatalf("replies = %v, want 30 min notice", replies)
	}
	if len(transport.banned) != 1 || transport.banned[0].UntilDate == nil {
		t.Fatalf("banned = %+v, want expiry set", transport.banned)
	}
}

func TestShutdownNonOwnerDoesNotTerminate(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, h := newTestRouter(t, transport)

	terminated := false
	h.rt.Shutdown = func() { terminated = true }

	r.Dispatch(context.Background(), Event{SenderID: 999, ChatID: 1, Text: ".shutdown"})

	if terminated {
		t.Fatal("shutdown hook ran for non-owner sender")
	}
	replies := transport.replyTexts()
	if len(replies) != 1 || !strings.Contains(replies[0], "not authorized") {
		t.Fatalf("replies = %v, want authorization notice", replies)
	}
}

func TestShutdownOwnerInvokesHook(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, h := newTestRouter(t, transport)

	terminated := false
	h.rt.Shutdown = func() { terminated = true }

	r.Dispatch(context.Background(), ownerEvent(".shutdown"))

	if !terminated {
		t.Fatal("shutdown hook not invoked for owner")
	}
	replies := transport.replyTexts()
	if len(replies) != 1 || replies[0] != "👋 Shutting down..." {
		t.Fatalf("replies = %v", replies)
	}
}

func TestDispatchHandlerErrorBecomesReply(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, err := NewRouter(Options{
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Transport: transport,
		Sleep:     func(context.Context, time.Duration) {},
	})
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	r.SetOwner(testOwnerID)
	r.Register(Trigger{
		Name: "boom",
		Arg:  ArgNone,
		Handle: func(context.Context, *Event, Args) error {
			return Validationf("something broke")
		},
	})

	r.Dispatch(context.Background(), ownerEvent(".boom"))

	replies := transport.replyTexts()
	if len(replies) != 1 || replies[0] != "❌ Error: something broke" {
		t.Fatalf("replies = %v, want error boundary reply", replies)
	}
}

func TestDispatchAliasMatches(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, err := NewRouter(Options{
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Transport: transport,
		Sleep:     func(context.Context, time.Duration) {},
	})
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	r.SetOwner(testOwnerID)
	var gotText string
	r.Register(Trigger{
		Name:    "google",
		Aliases: []string{"search"},
		Arg:     ArgText,
		Handle: func(_ context.Context, _ *Event, args Args) error {
			gotText = args.Text
			return nil
		},
	})

	r.Dispatch(context.Background(), ownerEvent(".search golang routers"))

	if gotText != "golang routers" {
		t.Fatalf("args.Text = %q, want query via alias", gotText)
	}
}

func TestUnmuteClearsAllRestrictions(t *testing.T) {
	t.Parallel()

	transport := newFakeTransport()
	r, _ := newTestRouter(t, transport)

	ev := ownerEvent(".unmute")
	ev.IsReply = true
	ev.replyFetch = func(context.Context) (telegram.Message, error) {
		return telegram.Message{ID: 3, SenderID: 555}, nil
	}
	r.Dispatch(context.Background(), ev)

	if len(transport.banned) != 1 {
		t.Fatalf("SetBannedRights calls = %d, want 1", len(transport.banned))
	}
	if transport.banned[0] != (telegram.BannedRights{}) {
		t.Errorf("rights = %+v, want all restrictions cleared", transport.banned[0])
	}
}
