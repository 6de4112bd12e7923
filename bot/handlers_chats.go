package bot

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/accounts"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/internal/relativetime"
)

func kindEmoji(k accounts.Kind) string {
	switch k {
	case accounts.KindGroup:
		return "👥"
	case accounts.KindChannel:
		return "📢"
	default:
		return "👤"
	}
}

func (h *Handlers) MyChats(ctx context.Context, ev *Event, _ Args) error {
	all, err := h.rt.Registry.ListChats(ctx, 0, 40)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return h.reply(ctx, ev, "❌ No chats found.")
	}

	// Per-account counts in registration order.
	counts := map[string]int{}
	var order []string
	for _, rec := range all {
		if _, seen := counts[rec.AccountName]; !seen {
			order = append(order, rec.AccountName)
		}
		counts[rec.AccountName]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**📊 Your Chats Summary**\n**Total chats:** %d\n\n", len(all))
	for _, name := range order {
		fmt.Fprintf(&b, "**%s:** %d chats\n", name, counts[name])
	}

	recent := accounts.SortByRecency(all)
	if len(recent) > 5 {
		recent = recent[:5]
	}
	b.WriteString("\n**🕐 Recent Chats:**\n")
	for i, rec := range recent {
		title := rec.Title
		if len(title) > 20 {
			title = title[:20] + "..."
		}
		fmt.Fprintf(&b, "%d. %s **%s**\n", i+1, kindEmoji(rec.Kind), title)
	}
	return h.reply(ctx, ev, b.String())
}

func (h *Handlers) ListAccounts(ctx context.Context, ev *Event, _ Args) error {
	regs := h.rt.Registry.Accounts()
	if len(regs) == 0 {
		return h.reply(ctx, ev, "❌ No accounts found.")
	}
	var b strings.Builder
	b.WriteString("**👥 Managed Accounts:**\n\n")
	for _, reg := range regs {
		fmt.Fprintf(&b, "**%s**\n• ID: `%d`\n• Username: @%s\n\n", reg.Name, reg.AccountID, reg.Username)
	}
	return h.reply(ctx, ev, b.String())
}

func (h *Handlers) BackupChats(ctx context.Context, ev *Event, _ Args) error {
	id, err := h.replyMsg(ctx, ev, "💾 Backing up chat metadata...")
	if err != nil {
		return err
	}
	count, err := h.rt.Registry.SyncToStore(ctx)
	if err != nil {
		return err
	}
	return h.rt.Transport.EditMessage(ctx, ev.ChatID, id,
		fmt.Sprintf("✅ Backed up %d chats to database!", count))
}

func (h *Handlers) ExportChats(ctx context.Context, ev *Event, args Args) error {
	format := args.Word
	id, err := h.replyMsg(ctx, ev, fmt.Sprintf("📤 Exporting chats to %s...", strings.ToUpper(format)))
	if err != nil {
		return err
	}
	all, err := h.rt.Registry.ListChats(ctx, 0, 100)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return h.rt.Transport.EditMessage(ctx, ev.ChatID, id, "❌ No chats to export.")
	}

	path, err := accounts.ExportSnapshot(os.TempDir(), all, format, h.rt.now())
	if err != nil {
		return err
	}
	defer os.Remove(path)
	if err := h.rt.Transport.SendFile(ctx, ev.ChatID, path); err != nil {
		return TransportErr("send export", err)
	}
	return h.rt.Transport.EditMessage(ctx, ev.ChatID, id,
		fmt.Sprintf("✅ Exported %d chats to %s!", len(all), strings.ToUpper(format)))
}

func (h *Handlers) FindChat(ctx context.Context, ev *Event, args Args) error {
	all, err := h.rt.Registry.ListChats(ctx, 0, 80)
	if err != nil {
		return err
	}
	found := accounts.FilterByName(all, args.Text)
	if len(found) == 0 {
		return h.reply(ctx, ev, "❌ No matching chats.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d chats:**\n", len(found))
	show := found
	if len(show) > 10 {
		show = show[:10]
	}
	for i, rec := range show {
		fmt.Fprintf(&b, "%d. **%s** (Account: %s)\n", i+1, rec.Title, rec.AccountName)
	}
	if len(found) > 10 {
		fmt.Fprintf(&b, "... and %d more", len(found)-10)
	}
	return h.reply(ctx, ev, b.String())
}

func (h *Handlers) ChatStats(ctx context.Context, ev *Event, _ Args) error {
	all, err := h.rt.Registry.ListChats(ctx, 0, 100)
	if err != nil {
		return err
	}
	b := accounts.CountByKind(all)
	return h.reply(ctx, ev, fmt.Sprintf(
		"**📈 Chat Statistics**\nTotal chats: %d\nPrivate: %d\nGroups: %d\nChannels: %d\nUnread messages: %d",
		b.Total, b.People, b.Groups, b.Channels, b.Unread))
}

func (h *Handlers) ChatInfo(ctx context.Context, ev *Event, args Args) error {
	all, err := h.rt.Registry.ListChats(ctx, 0, 80)
	if err != nil {
		return err
	}
	ident := strings.TrimSpace(args.Text)
	for _, rec := range all {
		if strconv.FormatInt(rec.ChatID, 10) != ident &&
			!(rec.Username != "" && strings.EqualFold(rec.Username, ident)) {
			continue
		}
		var b strings.Builder
		b.WriteString("**📄 Chat Info**\n")
		fmt.Fprintf(&b, "Title: %s\n", rec.Title)
		fmt.Fprintf(&b, "ID: `%d`\n", rec.ChatID)
		fmt.Fprintf(&b, "Account: %s\n", rec.AccountName)
		fmt.Fprintf(&b, "Type: %s\n", chatTypeLabel(rec.Kind))
		if rec.Username != "" {
			fmt.Fprintf(&b, "Username: @%s\n", rec.Username)
		}
		if rec.ParticipantsCount > 0 {
			fmt.Fprintf(&b, "Members: %d\n", rec.ParticipantsCount)
		}
		if rec.LastMessageAt != nil {
			fmt.Fprintf(&b, "Last active: %s\n", relativetime.Format(h.rt.now(), *rec.LastMessageAt))
		}
		return h.reply(ctx, ev, b.String())
	}
	return h.reply(ctx, ev, "❌ Chat not found.")
}

func chatTypeLabel(k accounts.Kind) string {
	switch k {
	case accounts.KindGroup:
		return "Group"
	case accounts.KindChannel:
		return "Channel"
	default:
		return "Private"
	}
}

func (h *Handlers) ClearChats(ctx context.Context, ev *Event, args Args) error {
	all, err := h.rt.Registry.ListChats(ctx, 0, 100)
	if err != nil {
		return err
	}
	now := h.rt.now()
	inactive := accounts.FilterOlderThan(all, now, args.Int)
	if len(inactive) == 0 {
		return h.reply(ctx, ev, "✅ No inactive chats found.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Inactive chats (> %d days):**\n", args.Int)
	show := inactive
	if len(show) > 10 {
		show = show[:10]
	}
	for i, rec := range show {
		fmt.Fprintf(&b, "%d. %s (last: %s)\n", i+1, rec.Title, relativetime.Format(now, *rec.LastMessageAt))
	}
	if len(inactive) > 10 {
		fmt.Fprintf(&b, "... and %d more", len(inactive)-10)
	}
	return h.reply(ctx, ev, b.String())
}

// Broadcast delivers text to every known chat with one-second pacing.
// Individual sends may fail without aborting the run; the status reply
// is edited with the final tally.
func (h *Handlers) Broadcast(ctx context.Context, ev *Event, args Args) error {
	statusID, err := h.replyMsg(ctx, ev, "📢 Broadcasting...")
	if err != nil {
		return err
	}
	all, err := h.rt.Registry.ListChats(ctx, 0, 100)
	if err != nil {
		return err
	}

	sent, failed := 0, 0
	for _, rec := range all {
		if ctx.Err() != nil {
			break
		}
		if _, err := h.rt.Transport.SendMessage(ctx, rec.ChatID, args.Text); err != nil {
			failed++
			h.rt.log().Debug("broadcast send failed", "chat_id", rec.ChatID, "error", err)
			continue
		}
		sent++
		h.rt.sleep(ctx, time.Second)
	}
	return h.rt.Transport.EditMessage(ctx, ev.ChatID, statusID,
		fmt.Sprintf("✅ Broadcast sent to %d chats, failed: %d.", sent, failed))
}
