package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
)

// Purge deletes from the replied message onward, or the last n
// messages (default 10) when the command is not a reply.
func (h *Handlers) Purge(ctx context.Context, ev *Event, args Args) error {
	if ev.IsReply {
		target, err := ev.ReplyTarget(ctx)
		if err != nil {
			return err
		}
		msgs, err := h.rt.Transport.ListMessages(ctx, ev.ChatID, 0, target.ID-1)
		if err != nil {
			return err
		}
		ids := []int64{target.ID}
		for _, m := range msgs {
			if m.ID != target.ID {
				ids = append(ids, m.ID)
			}
		}
		if err := h.rt.Transport.DeleteMessages(ctx, ev.ChatID, ids); err != nil {
			return err
		}
		return h.reply(ctx, ev, fmt.Sprintf("✅ Purged %d messages.", len(ids)))
	}

	n := 10
	if args.HasInt {
		n = args.Int
	}
	msgs, err := h.rt.Transport.ListMessages(ctx, ev.ChatID, n, 0)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return h.reply(ctx, ev, "❌ No messages to delete.")
	}
	ids := make([]int64, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	if err := h.rt.Transport.DeleteMessages(ctx, ev.ChatID, ids); err != nil {
		return err
	}
	return h.reply(ctx, ev, fmt.Sprintf("✅ Deleted last %d messages.", len(ids)))
}

// DeleteReplied removes both the replied message and the command itself.
func (h *Handlers) DeleteReplied(ctx context.Context, ev *Event, _ Args) error {
	if !ev.IsReply {
		return h.reply(ctx, ev, "❌ Reply to a message.")
	}
	target, err := ev.ReplyTarget(ctx)
	if err != nil {
		return err
	}
	return h.rt.Transport.DeleteMessages(ctx, ev.ChatID, []int64{target.ID, ev.MessageID})
}

func (h *Handlers) Pin(ctx context.Context, ev *Event, _ Args) error {
	if !ev.IsReply {
		return h.reply(ctx, ev, "❌ Reply to a message.")
	}
	target, err := ev.ReplyTarget(ctx)
	if err != nil {
		return err
	}
	if err := h.rt.Transport.PinMessage(ctx, ev.ChatID, target.ID); err != nil {
		return err
	}
	return h.reply(ctx, ev, "📌 Pinned.")
}

func (h *Handlers) Unpin(ctx context.Context, ev *Event, _ Args) error {
	if err := h.rt.Transport.UnpinMessages(ctx, ev.ChatID); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Unpinned.")
}

func (h *Handlers) Kick(ctx context.Context, ev *Event, _ Args) error {
	if !ev.IsReply {
		return h.reply(ctx, ev, "❌ Reply to a user.")
	}
	target, err := ev.ReplyTarget(ctx)
	if err != nil {
		return err
	}
	if err := h.rt.Transport.KickParticipant(ctx, ev.ChatID, target.SenderID); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Kicked.")
}

func (h *Handlers) Invite(ctx context.Context, ev *Event, args Args) error {
	user, err := h.rt.Transport.ResolveUsername(ctx, strings.TrimPrefix(args.Handle, "@"))
	if err != nil {
		return err
	}
	if err := h.rt.Transport.InviteUser(ctx, ev.ChatID, user.ID); err != nil {
		return err
	}
	return h.reply(ctx, ev, fmt.Sprintf("✅ Invited %s.", args.Handle))
}

// Mute restricts the replied user for n minutes; without a duration
// the restriction has no expiry.
func (h *Handlers) Mute(ctx context.Context, ev *Event, args Args) error {
	if !ev.IsReply {
		return h.reply(ctx, ev, "❌ Reply to a user.")
	}
	target, err := ev.ReplyTarget(ctx)
	if err != nil {
		return err
	}

	rights := telegram.BannedRights{
		SendMessages: true,
		SendMedia:    true,
		SendStickers: true,
		SendGifs:     true,
		SendGames:    true,
		SendInline:   true,
		EmbedLinks:   true,
	}
	minutes := 0
	if args.HasInt {
		minutes = args.Int
	}
	if minutes > 0 {
		until := h.rt.now().Add(time.Duration(minutes) * time.Minute)
		rights.UntilDate = &until
	}
	if err := h.rt.Transport.SetBannedRights(ctx, ev.ChatID, target.SenderID, rights); err != nil {
		return err
	}
	if minutes > 0 {
		return h.reply(ctx, ev, fmt.Sprintf("✅ Muted for %d min.", minutes))
	}
	return h.reply(ctx, ev, "✅ Muted forever.")
}

func (h *Handlers) Unmute(ctx context.Context, ev *Event, _ Args) error {
	if !ev.IsReply {
		return h.reply(ctx, ev, "❌ Reply to a user.")
	}
	target, err := ev.ReplyTarget(ctx)
	if err != nil {
		return err
	}
	if err := h.rt.Transport.SetBannedRights(ctx, ev.ChatID, target.SenderID, telegram.BannedRights{}); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Unmuted.")
}

func (h *Handlers) Archive(ctx context.Context, ev *Event, _ Args) error {
	if err := h.rt.Transport.EditFolder(ctx, ev.ChatID, telegram.FolderArchive); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Chat archived.")
}

func (h *Handlers) Unarchive(ctx context.Context, ev *Event, _ Args) error {
	if err := h.rt.Transport.EditFolder(ctx, ev.ChatID, telegram.FolderMain); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Chat unarchived.")
}
