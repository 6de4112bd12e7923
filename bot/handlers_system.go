package bot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const maxCommandOutput = 3500

func (h *Handlers) Restart(ctx context.Context, ev *Event, _ Args) error {
	if err := h.reply(ctx, ev, "🔄 Restarting..."); err != nil {
		return err
	}
	if h.rt.Restart == nil {
		return Validationf("restart is not available")
	}
	return h.rt.Restart()
}

func (h *Handlers) ShutdownCmd(ctx context.Context, ev *Event, _ Args) error {
	if err := h.reply(ctx, ev, "👋 Shutting down..."); err != nil {
		return err
	}
	if h.rt.Shutdown != nil {
		h.rt.Shutdown()
	}
	return nil
}

// Logs replies with the last n lines of the log file, default 50.
func (h *Handlers) Logs(ctx context.Context, ev *Event, args Args) error {
	n := 50
	if args.HasInt && args.Int > 0 {
		n = args.Int
	}
	if h.rt.LogPath == "" {
		return h.reply(ctx, ev, "❌ Log file not found.")
	}
	data, err := os.ReadFile(h.rt.LogPath)
	if err != nil {
		return h.reply(ctx, ev, "❌ Log file not found.")
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	tail := strings.Join(lines, "\n")
	if len(tail) > maxCommandOutput {
		tail = tail[:maxCommandOutput]
	}
	return h.reply(ctx, ev, fmt.Sprintf("**Last %d lines:**\n```%s```", len(lines), tail))
}

// Exec runs a shell command as the bot's own user. The command word is
// owner-gated like everything else; that gate is the whole trust
// boundary here.
func (h *Handlers) Exec(ctx context.Context, ev *Event, args Args) error {
	out, err := exec.CommandContext(ctx, "sh", "-c", args.Text).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if output == "" && err != nil {
		output = err.Error()
	}
	if output == "" {
		output = "Command executed (no output)."
	}
	if len(output) > maxCommandOutput {
		output = output[:maxCommandOutput] + "..."
	}
	return h.reply(ctx, ev, fmt.Sprintf("**Output:**\n```%s```", output))
}

func (h *Handlers) SetVar(ctx context.Context, ev *Event, args Args) error {
	if h.rt.Store == nil {
		return Validationf("no store configured")
	}
	if err := h.rt.Store.SetVariable(ctx, args.Key, args.Text); err != nil {
		return err
	}
	return h.reply(ctx, ev, fmt.Sprintf("✅ Variable `%s` set.", args.Key))
}

func (h *Handlers) GetVar(ctx context.Context, ev *Event, args Args) error {
	if h.rt.Store == nil {
		return Validationf("no store configured")
	}
	value, ok, err := h.rt.Store.GetVariable(ctx, args.Key)
	if err != nil {
		return err
	}
	if !ok {
		value = "Not set"
	}
	return h.reply(ctx, ev, fmt.Sprintf("`%s` = `%s`", args.Key, value))
}
