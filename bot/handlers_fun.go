package bot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/internal/calc"
	"github.com/Thomassamuel5/QUEEN-KIRA-V1/internal/textfmt"
)

func (h *Handlers) Mock(ctx context.Context, ev *Event, args Args) error {
	return h.reply(ctx, ev, textfmt.Mock(args.Text))
}

func (h *Handlers) Vaporwave(ctx context.Context, ev *Event, args Args) error {
	return h.reply(ctx, ev, textfmt.Vaporwave(args.Text))
}

func (h *Handlers) Reverse(ctx context.Context, ev *Event, args Args) error {
	return h.reply(ctx, ev, textfmt.Reverse(args.Text))
}

func (h *Handlers) Flip(ctx context.Context, ev *Event, _ Args) error {
	result := "Heads"
	if rand.Intn(2) == 1 {
		result = "Tails"
	}
	return h.reply(ctx, ev, "🪙 "+result)
}

func (h *Handlers) Choose(ctx context.Context, ev *Event, args Args) error {
	items := textfmt.SplitChoices(args.Text)
	if len(items) == 0 {
		return Validationf("nothing to choose from")
	}
	return h.reply(ctx, ev, fmt.Sprintf("🤔 I choose: **%s**", items[rand.Intn(len(items))]))
}

var rpsChoices = []string{"rock", "paper", "scissors"}

func rpsBeats(a, b string) bool {
	return (a == "rock" && b == "scissors") ||
		(a == "paper" && b == "rock") ||
		(a == "scissors" && b == "paper")
}

func (h *Handlers) RockPaperScissors(ctx context.Context, ev *Event, args Args) error {
	user := strings.ToLower(args.Word)
	valid := false
	for _, c := range rpsChoices {
		if user == c {
			valid = true
			break
		}
	}
	if !valid {
		return h.reply(ctx, ev, "❌ Choose rock, paper, or scissors.")
	}
	bot := rpsChoices[rand.Intn(len(rpsChoices))]
	var result string
	switch {
	case user == bot:
		result = "It's a tie!"
	case rpsBeats(user, bot):
		result = "You win! 🎉"
	default:
		result = "I win! 🤖"
	}
	return h.reply(ctx, ev, fmt.Sprintf("You: %s\nMe: %s\n\n%s", user, bot, result))
}

func (h *Handlers) Slot(ctx context.Context, ev *Event, _ Args) error {
	emojis := []string{"🍒", "🍋", "🍊", "🍇", "🔔", "💎", "7️⃣"}
	spin := []string{
		emojis[rand.Intn(len(emojis))],
		emojis[rand.Intn(len(emojis))],
		emojis[rand.Intn(len(emojis))],
	}
	outcome := "Try again!"
	if spin[0] == spin[1] && spin[1] == spin[2] {
		outcome = "🎉 JACKPOT!"
	}
	return h.reply(ctx, ev, fmt.Sprintf("🎰 %s\n\n%s", strings.Join(spin, " | "), outcome))
}

func (h *Handlers) Dice(ctx context.Context, ev *Event, _ Args) error {
	return h.reply(ctx, ev, fmt.Sprintf("🎲 Dice roll: **%d**", rand.Intn(6)+1))
}

func (h *Handlers) Dart(ctx context.Context, ev *Event, _ Args) error {
	return h.reply(ctx, ev, fmt.Sprintf("🎯 Dart score: **%d**", rand.Intn(20)+1))
}

var eightBallResponses = []string{
	"It is certain", "It is decidedly so", "Without a doubt",
	"Yes definitely", "As I see it, yes", "Most likely",
	"Outlook good", "Yes", "Signs point to yes",
	"Reply hazy try again", "Ask again later", "Better not tell you now",
	"Cannot predict now", "Concentrate and ask again", "Don't count on it",
	"My reply is no", "My sources say no", "Outlook not so good",
	"Very doubtful",
}

func (h *Handlers) EightBall(ctx context.Context, ev *Event, _ Args) error {
	return h.reply(ctx, ev, "🎱 **Magic 8-ball says:** "+eightBallResponses[rand.Intn(len(eightBallResponses))])
}

func (h *Handlers) Love(ctx context.Context, ev *Event, _ Args) error {
	user1 := ev.SenderFirstName
	if user1 == "" {
		user1 = "You"
	}
	user2 := "someone"
	if ev.IsReply {
		if target, err := ev.ReplyTarget(ctx); err == nil {
			if u, err := h.rt.Transport.GetUser(ctx, target.SenderID); err == nil && u.FirstName != "" {
				user2 = u.FirstName
			} else {
				user2 = "Them"
			}
		}
	}
	love := rand.Intn(100) + 1
	hearts := strings.Repeat("❤️", love/10) + strings.Repeat("🤍", 10-love/10)
	return h.reply(ctx, ev, fmt.Sprintf(
		"💖 **Love Calculator** 💖\n\n**%s** ❤️ **%s**\n\nLove: **%d%%**\n%s",
		user1, user2, love, hearts))
}

func (h *Handlers) Calc(ctx context.Context, ev *Event, args Args) error {
	result, err := calc.Eval(args.Text)
	if err != nil {
		return Validationf("%v", err)
	}
	return h.reply(ctx, ev, fmt.Sprintf("🧮 **Result:** `%s`", calc.FormatResult(result)))
}

// Remind acknowledges immediately and delivers the reminder after the
// requested number of minutes. The wait runs inside the dispatch
// goroutine, so other commands keep flowing meanwhile.
func (h *Handlers) Remind(ctx context.Context, ev *Event, args Args) error {
	if args.Int <= 0 {
		return Validationf("reminder time must be at least 1 minute")
	}
	if err := h.reply(ctx, ev, fmt.Sprintf("⏰ Reminder set for %d minutes.", args.Int)); err != nil {
		return err
	}
	h.rt.sleep(ctx, time.Duration(args.Int)*time.Minute)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	_, err := h.rt.Transport.SendMessage(ctx, ev.ChatID, "⏰ **Reminder:** "+args.Text)
	return err
}

// Timer counts down in-place, editing the status every five seconds
// and each of the last five.
func (h *Handlers) Timer(ctx context.Context, ev *Event, args Args) error {
	seconds := args.Int
	if seconds <= 0 {
		return Validationf("timer must be at least 1 second")
	}
	id, err := h.replyMsg(ctx, ev, fmt.Sprintf("⏱ Timer set for %d seconds.", seconds))
	if err != nil {
		return err
	}
	for i := seconds; i > 0; i-- {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if i%5 == 0 || i <= 5 {
			if err := h.rt.Transport.EditMessage(ctx, ev.ChatID, id, fmt.Sprintf("⏱ %d seconds remaining...", i)); err != nil {
				return err
			}
		}
		h.rt.sleep(ctx, time.Second)
	}
	return h.rt.Transport.EditMessage(ctx, ev.ChatID, id, "⏰ **Time's up!**")
}

// Poll expects "Question|Option1|Option2|..." with at least two options.
func (h *Handlers) Poll(ctx context.Context, ev *Event, args Args) error {
	parts := strings.Split(args.Text, "|")
	if len(parts) < 3 {
		return h.reply(ctx, ev, "❌ Usage: .poll Question|Option1|Option2|...")
	}
	question := strings.TrimSpace(parts[0])
	options := make([]string, 0, len(parts)-1)
	for _, opt := range parts[1:] {
		options = append(options, strings.TrimSpace(opt))
	}
	return h.rt.Transport.SendPoll(ctx, ev.ChatID, question, options)
}
