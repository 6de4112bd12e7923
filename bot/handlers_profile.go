package bot

import (
	"context"
	"fmt"
	"strings"
)

func (h *Handlers) SetName(ctx context.Context, ev *Event, args Args) error {
	first, last, _ := strings.Cut(args.Text, " ")
	if err := h.rt.Transport.UpdateProfileName(ctx, first, last); err != nil {
		return err
	}
	return h.reply(ctx, ev, fmt.Sprintf("✅ Name changed to **%s %s**", first, last))
}

func (h *Handlers) SetBio(ctx context.Context, ev *Event, args Args) error {
	if err := h.rt.Transport.UpdateProfileAbout(ctx, args.Text); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Bio updated!")
}

// SetProfilePhoto promotes the photo of the replied message.
func (h *Handlers) SetProfilePhoto(ctx context.Context, ev *Event, _ Args) error {
	if !ev.IsReply {
		return h.reply(ctx, ev, "❌ Reply to an image.")
	}
	target, err := ev.ReplyTarget(ctx)
	if err != nil {
		return err
	}
	if !target.HasPhoto {
		return h.reply(ctx, ev, "❌ Reply must be an image.")
	}
	if err := h.rt.Transport.SetProfilePhotoFromMessage(ctx, ev.ChatID, target.ID); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Profile picture updated!")
}

// DeleteProfilePhoto removes the newest profile photo.
func (h *Handlers) DeleteProfilePhoto(ctx context.Context, ev *Event, _ Args) error {
	photos, err := h.rt.Transport.GetProfilePhotos(ctx)
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		return h.reply(ctx, ev, "❌ No profile picture to delete.")
	}
	if err := h.rt.Transport.DeleteProfilePhoto(ctx, photos[0].ID); err != nil {
		return err
	}
	return h.reply(ctx, ev, "✅ Profile picture deleted.")
}

func (h *Handlers) SendProfilePhoto(ctx context.Context, ev *Event, _ Args) error {
	photos, err := h.rt.Transport.GetProfilePhotos(ctx)
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		return h.reply(ctx, ev, "❌ No profile photo.")
	}
	return h.rt.Transport.SendProfilePhoto(ctx, ev.ChatID, photos[0].ID)
}
