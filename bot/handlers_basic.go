package bot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/telegram"
)

func (h *Handlers) Ping(ctx context.Context, ev *Event, _ Args) error {
	start := h.rt.now()
	id, err := h.replyMsg(ctx, ev, "🏓 Pong!")
	if err != nil {
		return err
	}
	elapsed := h.rt.now().Sub(start)
	return h.rt.Transport.EditMessage(ctx, ev.ChatID, id,
		fmt.Sprintf("🏓 Pong! `%.3fms`", float64(elapsed.Microseconds())/1000))
}

func (h *Handlers) Alive(ctx context.Context, ev *Event, _ Args) error {
	return h.reply(ctx, ev, "**Kira V1 is alive!** ✨\nMulti-File Edition with AI & Auto-Typing")
}

const helpText = `**🤖 Kira V1 Commands (Owner Only)**

**🌐 Web Search & AI:**
` + "`.google <query>`" + ` - Search the web
` + "`.ai <message>`" + ` - Chat with AI

**📊 Account & Chats:**
` + "`.mychats`" + ` - View all chats
` + "`.listaccounts`" + ` - List managed accounts
` + "`.backupchats`" + ` - Backup chat data
` + "`.exportchats csv/json`" + ` - Export chats
` + "`.findchat name`" + ` - Search chats
` + "`.chatstats`" + ` - Chat statistics
` + "`.chatinfo id/name`" + ` - Detailed chat info
` + "`.clearchats days`" + ` - Find inactive chats

**👤 Profile:**
` + "`.name first last`" + ` - Change profile name
` + "`.bio text`" + ` - Change profile bio
` + "`.setpfp`" + ` - Set profile picture (reply to image)
` + "`.delpfp`" + ` - Delete profile picture
` + "`.pfp`" + ` - Get your profile photo

**📱 Chat Management:**
` + "`.purge [n]`" + ` - Delete last n messages (or reply to start)
` + "`.del`" + ` - Delete replied message
` + "`.pin`" + ` - Pin replied message
` + "`.unpin`" + ` - Unpin last pinned message
` + "`.kick`" + ` - Kick replied user (need admin)
` + "`.invite @username`" + ` - Invite user to group
` + "`.mute [duration]`" + ` - Mute user (duration in minutes)
` + "`.unmute`" + ` - Unmute replied user
` + "`.archive`" + ` - Archive current chat
` + "`.unarchive`" + ` - Unarchive current chat

**🔧 Utilities:**
` + "`.weather <city>`" + ` - Get weather
` + "`.wiki <query>`" + ` - Wikipedia summary
` + "`.define <word>`" + ` - Dictionary definition
` + "`.lyrics <song>`" + ` - Get song lyrics
` + "`.qr <text>`" + ` - Generate QR code
` + "`.shorten <url>`" + ` - Shorten URL
` + "`.crypto <coin>`" + ` - Cryptocurrency price
` + "`.stock <symbol>`" + ` - Stock price
` + "`.yt <query>`" + ` - YouTube search link
` + "`.translate <lang> <text>`" + ` - Translate text
` + "`.tts <text>`" + ` - Text to speech (audio)
` + "`.remind <time> <message>`" + ` - Set reminder (time in minutes)
` + "`.poll question|opt1|opt2...`" + ` - Create poll
` + "`.timer <seconds>`" + ` - Simple timer

**✨ Fun:**
` + "`.mock <text>`" + ` - mOcKiNg TeXt
` + "`.vaporwave <text>`" + ` - ｖａｐｏｒｗａｖｅ
` + "`.reverse <text>`" + ` - Reverse text
` + "`.flip`" + ` - Flip a coin
` + "`.choose a,b,c`" + ` - Choose randomly
` + "`.rps rock/paper/scissors`" + ` - Play Rock Paper Scissors
` + "`.slot`" + ` - Slot machine
` + "`.cat`" + ` - Random cat picture
` + "`.dog`" + ` - Random dog picture
` + "`.fact`" + ` - Random fact
` + "`.joke`" + ` - Random joke
` + "`.quote`" + ` - Random quote
` + "`.anime <query>`" + ` - Anime search

**⚙️ System (Owner only):**
` + "`.restart`" + ` - Restart bot
` + "`.shutdown`" + ` - Stop bot
` + "`.logs [lines]`" + ` - Show recent logs
` + "`.exec <command>`" + ` - Execute shell command
` + "`.setvar <key> <value>`" + ` - Set persistent variable
` + "`.getvar <key>`" + ` - Get persistent variable
` + "`.broadcast <message>`" + ` - Send message to all chats

**Other:**
` + "`.id`" + ` - Get your ID
` + "`.info [@user]`" + ` - Get user info
` + "`.dice`" + ` - Roll dice
` + "`.dart`" + ` - Throw dart
` + "`.8ball <question>`" + ` - Magic 8-ball
` + "`.love`" + ` - Love calculator
` + "`.calc <expression>`" + ` - Calculator
` + "`.time`" + ` - Current time`

func (h *Handlers) Help(ctx context.Context, ev *Event, _ Args) error {
	return h.reply(ctx, ev, helpText)
}

func (h *Handlers) ID(ctx context.Context, ev *Event, _ Args) error {
	if ev.IsPrivate {
		return h.reply(ctx, ev, fmt.Sprintf("**Your ID:** `%d`", ev.SenderID))
	}
	return h.reply(ctx, ev, fmt.Sprintf("**Chat ID:** `%d`\n**Your ID:** `%d`", ev.ChatID, ev.SenderID))
}

func (h *Handlers) Time(ctx context.Context, ev *Event, _ Args) error {
	now := h.rt.now().Format("2006-01-02 15:04:05")
	return h.reply(ctx, ev, fmt.Sprintf("🕐 **Current Time:**\n`%s`", now))
}

// Info describes @handle, the replied sender, or the caller.
func (h *Handlers) Info(ctx context.Context, ev *Event, args Args) error {
	var (
		user telegram.User
		err  error
	)
	switch {
	case args.Handle != "":
		user, err = h.rt.Transport.ResolveUsername(ctx, strings.TrimPrefix(args.Handle, "@"))
	case ev.IsReply:
		target, terr := ev.ReplyTarget(ctx)
		if terr != nil {
			return terr
		}
		user, err = h.rt.Transport.GetUser(ctx, target.SenderID)
	default:
		user, err = h.rt.Transport.GetUser(ctx, ev.SenderID)
	}
	if err != nil {
		return err
	}

	bot := "No"
	if user.IsBot {
		bot = "Yes"
	}
	username := user.Username
	if username == "" {
		username = "None"
	}
	return h.reply(ctx, ev, fmt.Sprintf(
		"**👤 User Information:**\n**ID:** `%d`\n**Name:** `%s`\n**Username:** @%s\n**Bot:** %s",
		user.ID, strings.TrimSpace(user.FirstName+" "+user.LastName), username, bot))
}

// aiResponses pairs trigger substrings with canned replies. The first
// matching key in order wins.
var aiResponses = []struct {
	key     string
	replies []string
}{
	{"hello", []string{"Hello!", "Hi there!", "Hey! How can I help?", "Greetings!"}},
	{"how are you", []string{"I'm doing great!", "All systems operational!", "Ready to help!", "Feeling chatty!"}},
	{"who are you", []string{"I'm Kira V1, your Telegram assistant!", "Kira V1 - Created by Thomas Samuel", "Your friendly neighborhood bot!"}},
	{"what can you do", []string{"I can search the web, manage chats, and more! Try .help"}},
	{"thanks", []string{"You're welcome!", "Happy to help!", "Anytime!", "My pleasure!"}},
	{"bye", []string{"Goodbye!", "See you later!", "Take care!", "Bye! 👋"}},
}

var aiDefaults = []string{
	"Interesting! Tell me more.",
	"I see. What else?",
	"That's cool!",
	"Thanks for sharing!",
	"I'm listening...",
	"Got it!",
}

func aiResponseFor(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range aiResponses {
		if strings.Contains(lower, entry.key) {
			return entry.replies[rand.Intn(len(entry.replies))]
		}
	}
	return aiDefaults[rand.Intn(len(aiDefaults))]
}

func (h *Handlers) AI(ctx context.Context, ev *Event, args Args) error {
	response := aiResponseFor(args.Text)
	prefixes := []string{"🤖 ", "💭 ", "✨ "}
	return h.reply(ctx, ev, prefixes[rand.Intn(len(prefixes))]+response)
}
