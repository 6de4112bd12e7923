package bot

import "time"

// RegisterAll installs the full command catalogue. Pacing delays carry
// over from the original tuning per command.
func (h *Handlers) RegisterAll(r *Router) {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	for _, t := range []Trigger{
		// Basic.
		{Name: "ping", Arg: ArgNone, Delay: ms(500), Handle: h.Ping},
		{Name: "alive", Arg: ArgNone, Delay: ms(1000), Handle: h.Alive},
		{Name: "help", Arg: ArgNone, Delay: ms(1500), Handle: h.Help},
		{Name: "id", Arg: ArgNone, Delay: ms(500), Handle: h.ID},
		{Name: "time", Arg: ArgNone, Delay: ms(500), Handle: h.Time},
		{Name: "info", Arg: ArgOptHandle, Delay: ms(1000), Handle: h.Info},

		// Account & chats.
		{Name: "mychats", Arg: ArgNone, Delay: ms(2000), Handle: h.MyChats},
		{Name: "listaccounts", Arg: ArgNone, Delay: ms(1000), Handle: h.ListAccounts},
		{Name: "backupchats", Arg: ArgNone, Delay: ms(1500), Handle: h.BackupChats},
		{Name: "exportchats", Arg: ArgFormat, Delay: ms(2000), Handle: h.ExportChats},
		{Name: "findchat", Arg: ArgText, Delay: ms(2000), Handle: h.FindChat},
		{Name: "chatstats", Arg: ArgNone, Delay: ms(2000), Handle: h.ChatStats},
		{Name: "chatinfo", Arg: ArgText, Delay: ms(2000), Handle: h.ChatInfo},
		{Name: "clearchats", Arg: ArgInt, Delay: ms(2000), Handle: h.ClearChats},

		// Profile.
		{Name: "name", Arg: ArgText, Delay: ms(1500), Handle: h.SetName},
		{Name: "bio", Arg: ArgText, Delay: ms(1500), Handle: h.SetBio},
		{Name: "setpfp", Arg: ArgNone, Delay: ms(2000), Handle: h.SetProfilePhoto},
		{Name: "delpfp", Arg: ArgNone, Delay: ms(1500), Handle: h.DeleteProfilePhoto},
		{Name: "pfp", Arg: ArgNone, Delay: ms(1000), Handle: h.SendProfilePhoto},

		// Moderation.
		{Name: "purge", Arg: ArgOptInt, Delay: ms(2000), Handle: h.Purge},
		{Name: "del", Arg: ArgNone, Delay: ms(1000), Handle: h.DeleteReplied},
		{Name: "pin", Arg: ArgNone, Delay: ms(1500), Handle: h.Pin},
		{Name: "unpin", Arg: ArgNone, Delay: ms(1500), Handle: h.Unpin},
		{Name: "kick", Arg: ArgNone, Delay: ms(1500), Handle: h.Kick},
		{Name: "invite", Arg: ArgHandle, Delay: ms(1500), Handle: h.Invite},
		{Name: "mute", Arg: ArgOptInt, Delay: ms(1500), Handle: h.Mute},
		{Name: "unmute", Arg: ArgNone, Delay: ms(1500), Handle: h.Unmute},
		{Name: "archive", Arg: ArgNone, Delay: ms(1000), Handle: h.Archive},
		{Name: "unarchive", Arg: ArgNone, Delay: ms(1000), Handle: h.Unarchive},

		// Lookups.
		{Name: "google", Aliases: []string{"search"}, Arg: ArgText, Delay: ms(1500), Handle: h.Search},
		{Name: "ai", Arg: ArgText, Delay: ms(2000), Handle: h.AI},
		{Name: "weather", Arg: ArgText, Delay: ms(2000), Handle: h.Weather},
		{Name: "wiki", Arg: ArgText, Delay: ms(2000), Handle: h.Wiki},
		{Name: "define", Arg: ArgText, Delay: ms(2000), Handle: h.Define},
		{Name: "lyrics", Arg: ArgText, Delay: ms(2500), Handle: h.Lyrics},
		{Name: "qr", Arg: ArgText, Delay: ms(2500), Handle: h.QRCode},
		{Name: "shorten", Arg: ArgText, Delay: ms(2000), Handle: h.Shorten},
		{Name: "crypto", Arg: ArgWord, Delay: ms(2000), Handle: h.Crypto},
		{Name: "stock", Arg: ArgWord, Delay: ms(2000), Handle: h.Stock},
		{Name: "yt", Arg: ArgText, Delay: ms(1000), Handle: h.YouTube},
		{Name: "translate", Arg: ArgLangText, Delay: ms(2500), Handle: h.Translate},
		{Name: "tts", Arg: ArgText, Delay: ms(3000), Handle: h.TextToSpeech},
		{Name: "anime", Arg: ArgText, Delay: ms(2000), Handle: h.Anime},

		// Timed.
		{Name: "remind", Arg: ArgIntText, Delay: ms(1000), Handle: h.Remind},
		{Name: "timer", Arg: ArgInt, Delay: ms(1000), Handle: h.Timer},
		{Name: "poll", Arg: ArgText, Delay: ms(2000), Handle: h.Poll},

		// Fun.
		{Name: "mock", Arg: ArgText, Delay: ms(1500), Handle: h.Mock},
		{Name: "vaporwave", Arg: ArgText, Delay: ms(1500), Handle: h.Vaporwave},
		{Name: "reverse", Arg: ArgText, Delay: ms(1500), Handle: h.Reverse},
		{Name: "flip", Arg: ArgNone, Delay: ms(1000), Handle: h.Flip},
		{Name: "choose", Arg: ArgText, Delay: ms(1500), Handle: h.Choose},
		{Name: "rps", Arg: ArgWord, Delay: ms(1500), Handle: h.RockPaperScissors},
		{Name: "slot", Arg: ArgNone, Delay: ms(2000), Handle: h.Slot},
		{Name: "cat", Arg: ArgNone, Delay: ms(2000), Handle: h.Cat},
		{Name: "dog", Arg: ArgNone, Delay: ms(2000), Handle: h.Dog},
		{Name: "fact", Arg: ArgNone, Delay: ms(1500), Handle: h.Fact},
		{Name: "joke", Arg: ArgNone, Delay: ms(1500), Handle: h.Joke},
		{Name: "quote", Arg: ArgNone, Delay: ms(1500), Handle: h.Quote},
		{Name: "dice", Arg: ArgNone, Delay: ms(1000), Handle: h.Dice},
		{Name: "dart", Arg: ArgNone, Delay: ms(1000), Handle: h.Dart},
		{Name: "8ball", Arg: ArgText, Delay: ms(2000), Handle: h.EightBall},
		{Name: "love", Arg: ArgNone, Delay: ms(2000), Handle: h.Love},
		{Name: "calc", Arg: ArgText, Delay: ms(1500), Handle: h.Calc},

		// System.
		{Name: "restart", Arg: ArgNone, Delay: ms(1000), Handle: h.Restart},
		{Name: "shutdown", Arg: ArgNone, Delay: ms(1000), Handle: h.ShutdownCmd},
		{Name: "logs", Arg: ArgOptInt, Delay: ms(2000), Handle: h.Logs},
		{Name: "exec", Arg: ArgText, Delay: ms(2000), Handle: h.Exec},
		{Name: "setvar", Arg: ArgKeyText, Delay: ms(1000), Handle: h.SetVar},
		{Name: "getvar", Arg: ArgKey, Delay: ms(1000), Handle: h.GetVar},
		{Name: "broadcast", Arg: ArgText, Delay: ms(3000), Handle: h.Broadcast},
	} {
		r.Register(t)
	}
}
