package bot

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/accounts"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/db"
)

// Runtime is the application context built once at startup and shared
// by every handler: the connected transport, the account registry, the
// store and the process-control hooks.
type Runtime struct {
	Log       *slog.Logger
	Transport Transport
	Registry  *accounts.Registry
	Store     *db.Store
	// HTTP is the client for third-party lookups; its timeout is the
	// per-call bound, there are no retries.
	HTTP *http.Client

	Now func() time.Time
	// Sleep paces broadcasts, reminders and timers; tests swap it out.
	Sleep   func(ctx context.Context, d time.Duration)
	LogPath string

	// Restart re-execs the process; Shutdown cancels the root context
	// after a graceful disconnect.
	Restart  func() error
	Shutdown func()
}

func (rt *Runtime) now() time.Time {
	if rt.Now != nil {
		return rt.Now()
	}
	return time.Now()
}

func (rt *Runtime) log() *slog.Logger {
	if rt.Log != nil {
		return rt.Log
	}
	return slog.Default()
}

func (rt *Runtime) sleep(ctx context.Context, d time.Duration) {
	if rt.Sleep != nil {
		rt.Sleep(ctx, d)
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (rt *Runtime) httpClient() *http.Client {
	if rt.HTTP != nil {
		return rt.HTTP
	}
	return &http.Client{Timeout: 10 * time.Second}
}

// Handlers binds the command catalogue to one runtime.
type Handlers struct {
	rt *Runtime
}

func NewHandlers(rt *Runtime) *Handlers {
	return &Handlers{rt: rt}
}

// reply answers the triggering message.
func (h *Handlers) reply(ctx context.Context, ev *Event, text string) error {
	_, err := h.rt.Transport.ReplyMessage(ctx, ev.ChatID, ev.MessageID, text)
	return err
}

// replyMsg answers and returns the sent message for later edits.
func (h *Handlers) replyMsg(ctx context.Context, ev *Event, text string) (int64, error) {
	msg, err := h.rt.Transport.ReplyMessage(ctx, ev.ChatID, ev.MessageID, text)
	return msg.ID, err
}
