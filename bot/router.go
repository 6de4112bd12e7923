// Package bot is the command router: it matches inbound text against
// the trigger catalogue, enforces the single-owner authorization and
// runs every handler behind the same typing-then-reply pipeline.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
	"github.com/google/uuid"
)

const notAuthorizedReply = "❌ You are not authorized to use this bot."

// HandlerFunc executes one matched command. A returned error surfaces
// to the operator as a textual reply and never propagates further.
type HandlerFunc func(ctx context.Context, ev *Event, args Args) error

// Trigger is one entry of the catalogue: a literal command word, the
// argument grammar of its tail and the pacing delay of its typing
// indicator.
type Trigger struct {
	Name    string
	Aliases []string
	Arg     ArgKind
	Delay   time.Duration
	Handle  HandlerFunc
}

type Options struct {
	Log       *slog.Logger
	Transport Transport
	// TypingScale scales every trigger's pacing delay; zero disables
	// the wait (the indicator itself is still sent first).
	TypingScale float64
	Now         func() time.Time
	Sleep       func(ctx context.Context, d time.Duration)
}

type Router struct {
	log         *slog.Logger
	transport   Transport
	typingScale float64
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration)

	ownerID  int64
	triggers []Trigger
}

func NewRouter(opts Options) (*Router, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("transport is required")
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = func(ctx context.Context, d time.Duration) {
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-ctx.Done():
			case <-t.C:
			}
		}
	}
	return &Router{
		log:         log,
		transport:   opts.Transport,
		typingScale: opts.TypingScale,
		now:         now,
		sleep:       sleep,
	}, nil
}

// SetOwner fixes the authorized identity. Called once after the
// transport authenticates, before the dispatch loop starts.
func (r *Router) SetOwner(id int64) { r.ownerID = id }

func (r *Router) OwnerID() int64 { return r.ownerID }

// Register appends a trigger to the catalogue. Order matters only in
// that the first structural match wins; command words are distinct by
// construction.
func (r *Router) Register(t Trigger) {
	r.triggers = append(r.triggers, t)
}

// match finds the trigger whose command word and argument shape fit
// text. Unmatched text, including a known word with a malformed tail,
// yields ok=false and stays silent.
func (r *Router) match(text string) (*Trigger, Args, bool) {
	word, tail, _ := strings.Cut(text, " ")
	if !strings.HasPrefix(word, ".") || len(word) < 2 {
		return nil, Args{}, false
	}
	word = word[1:]
	tail = strings.TrimSpace(tail)

	for i := range r.triggers {
		trig := &r.triggers[i]
		if trig.Name != word && !containsString(trig.Aliases, word) {
			continue
		}
		args, ok := parseArgs(trig.Arg, tail)
		if !ok {
			continue
		}
		return trig, args, true
	}
	return nil, Args{}, false
}

// Dispatch runs the full pipeline for one inbound event: structural
// match, owner check, typing indicator, handler, error boundary.
func (r *Router) Dispatch(ctx context.Context, ev Event) {
	trig, args, ok := r.match(ev.Text)
	if !ok {
		return
	}

	dispatchID := uuid.NewString()
	log := r.log.With("dispatch_id", dispatchID, "command", trig.Name, "chat_id", ev.ChatID)

	if ev.SenderID != r.ownerID {
		log.Warn("unauthorized command ignored", "sender_id", ev.SenderID)
		r.replyText(ctx, &ev, notAuthorizedReply)
		return
	}

	// Indicator first, then the reply; the wait is cosmetic pacing.
	if err := r.transport.SendChatAction(ctx, ev.ChatID, telegram.ActionTyping); err != nil {
		log.Debug("typing indicator failed", "error", err)
	}
	if r.typingScale > 0 && trig.Delay > 0 {
		r.sleep(ctx, time.Duration(float64(trig.Delay)*r.typingScale))
	}

	started := r.now()
	if err := trig.Handle(ctx, &ev, args); err != nil {
		log.Error("command failed", "error", err, "elapsed", r.now().Sub(started))
		r.replyText(ctx, &ev, "❌ Error: "+err.Error())
		return
	}
	log.Debug("command handled", "elapsed", r.now().Sub(started))
}

func (r *Router) replyText(ctx context.Context, ev *Event, text string) {
	if _, err := r.transport.ReplyMessage(ctx, ev.ChatID, ev.MessageID, text); err != nil {
		r.log.Warn("reply failed", "chat_id", ev.ChatID, "error", err)
	}
}

// Run consumes the update stream until ctx is cancelled. Each matched
// event is dispatched on its own goroutine so a long handler (timer,
// broadcast, reminder) never blocks the loop.
func (r *Router) Run(ctx context.Context, src UpdateSource) error {
	var offset int64
	for {
		updates, next, err := src.GetUpdates(ctx, offset, 30*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !telegram.IsPollTimeout(err) {
				r.log.Warn("update poll failed", "error", err)
				r.sleep(ctx, time.Second)
			}
			continue
		}
		offset = next
		for _, u := range updates {
			ev, ok := eventFromUpdate(r.transport, u)
			if !ok {
				continue
			}
			go r.Dispatch(ctx, ev)
		}
	}
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
