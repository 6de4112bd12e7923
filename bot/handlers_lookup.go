package bot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/internal/webapi"
)

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Search queries the DuckDuckGo instant-answer API and falls back to a
// plain Google link when there is no abstract or related topics.
func (h *Handlers) Search(ctx context.Context, ev *Event, args Args) error {
	query := args.Text
	api := "https://api.duckduckgo.com/?q=" + url.QueryEscape(query) + "&format=json&no_html=1&skip_disambig=1"
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("search failed: %v", err)
	}

	if abstract := data.Get("AbstractText").String(); abstract != "" {
		var b strings.Builder
		fmt.Fprintf(&b, "**🔎 %s**\n\n%s\n", query, abstract)
		if src := data.Get("AbstractSource").String(); src != "" {
			fmt.Fprintf(&b, "\n📚 Source: %s", src)
		}
		if link := data.Get("AbstractURL").String(); link != "" {
			fmt.Fprintf(&b, "\n🔗 [Read more](%s)", link)
		}
		return h.reply(ctx, ev, b.String())
	}

	if topics := data.Get("RelatedTopics").Array(); len(topics) > 0 {
		if len(topics) > 5 {
			topics = topics[:5]
		}
		var b strings.Builder
		fmt.Fprintf(&b, "**🔎 Search results for:** `%s`\n\n", query)
		for i, t := range topics {
			fmt.Fprintf(&b, "%d. **%s**\n", i+1, truncate(t.Get("Text").String(), 100))
		}
		return h.reply(ctx, ev, b.String())
	}

	google := "https://www.google.com/search?q=" + url.QueryEscape(query)
	return h.reply(ctx, ev, fmt.Sprintf("**🔎 No instant results.**\n[Search Google](%s)", google))
}

func (h *Handlers) Weather(ctx context.Context, ev *Event, args Args) error {
	city := args.Text
	api := "https://wttr.in/" + url.PathEscape(city) + "?format=%c+%t+%w+%h&m"
	body, err := webapi.Get(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("could not fetch weather: %v", err)
	}
	return h.reply(ctx, ev, fmt.Sprintf("**Weather in %s:**\n%s", city, strings.TrimSpace(string(body))))
}

func (h *Handlers) Wiki(ctx context.Context, ev *Event, args Args) error {
	api := "https://en.wikipedia.org/api/rest_v1/page/summary/" + url.PathEscape(args.Text)
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("not found: %v", err)
	}
	summary := data.Get("extract").String()
	if summary == "" {
		summary = "No summary available."
	}
	title := data.Get("title").String()
	if title == "" {
		title = args.Text
	}
	page := data.Get("content_urls.desktop.page").String()
	return h.reply(ctx, ev, fmt.Sprintf("**%s**\n%s\n\nRead more: %s", title, truncate(summary, 1000), page))
}

func (h *Handlers) Define(ctx context.Context, ev *Event, args Args) error {
	word := args.Text
	api := "https://api.dictionaryapi.dev/api/v2/entries/en/" + url.PathEscape(word)
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("word not found: %v", err)
	}
	meaning := data.Get("0.meanings.0")
	definition := meaning.Get("definitions.0.definition").String()
	if definition == "" {
		return ExternalAPIf("word not found")
	}
	example := meaning.Get("definitions.0.example").String()
	if example == "" {
		example = "No example"
	}
	return h.reply(ctx, ev, fmt.Sprintf("**%s**\n*%s*\n📖 %s\n📝 Example: %s",
		word, meaning.Get("partOfSpeech").String(), definition, example))
}

func (h *Handlers) Lyrics(ctx context.Context, ev *Event, args Args) error {
	song := args.Text
	api := "https://api.lyrics.ovh/v1/" + url.PathEscape(song)
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("lyrics not found: %v", err)
	}
	lyrics := data.Get("lyrics").String()
	if lyrics == "" {
		return ExternalAPIf("lyrics not found")
	}
	return h.reply(ctx, ev, fmt.Sprintf("**%s**\n\n%s", song, truncate(lyrics, 1000)))
}

// QRCode renders the given text as a QR image and sends it as a photo.
func (h *Handlers) QRCode(ctx context.Context, ev *Event, args Args) error {
	pic := "https://api.qrserver.com/v1/create-qr-code/?size=400x400&data=" + url.QueryEscape(args.Text)
	return h.rt.Transport.SendFileURL(ctx, ev.ChatID, pic)
}

func (h *Handlers) Shorten(ctx context.Context, ev *Event, args Args) error {
	api := "https://is.gd/create.php?format=simple&url=" + url.QueryEscape(args.Text)
	body, err := webapi.Get(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("failed to shorten: %v", err)
	}
	short := strings.TrimSpace(string(body))
	if strings.HasPrefix(short, "Error") {
		return ExternalAPIf("failed to shorten")
	}
	return h.reply(ctx, ev, "🔗 Shortened: "+short)
}

// Crypto looks a coin up by its CoinGecko id, e.g. bitcoin or ethereum.
func (h *Handlers) Crypto(ctx context.Context, ev *Event, args Args) error {
	coin := strings.ToLower(args.Word)
	api := "https://api.coingecko.com/api/v3/simple/price?ids=" + url.QueryEscape(coin) +
		"&vs_currencies=usd,eur,btc&include_24hr_change=true"
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("coin lookup failed: %v", err)
	}
	entry := data.Get(coin)
	if !entry.Exists() {
		return h.reply(ctx, ev, "❌ Coin not found. Use CoinGecko ID (e.g., bitcoin, ethereum).")
	}
	change := entry.Get("usd_24h_change").Float()
	arrow := "📉"
	if change > 0 {
		arrow = "📈"
	}
	return h.reply(ctx, ev, fmt.Sprintf("**%s**\nUSD: $%v\nEUR: €%v\nBTC: %v\n24h Change: %s %.2f%%",
		strings.ToUpper(coin), entry.Get("usd").Value(), entry.Get("eur").Value(), entry.Get("btc").Value(),
		arrow, change))
}

func (h *Handlers) Stock(ctx context.Context, ev *Event, args Args) error {
	symbol := strings.ToUpper(args.Word)
	api := "https://query1.finance.yahoo.com/v8/finance/chart/" + url.PathEscape(symbol) + "?range=1d&interval=1d"
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("stock lookup failed: %v", err)
	}
	meta := data.Get("chart.result.0.meta")
	if !meta.Exists() {
		return h.reply(ctx, ev, "❌ No data for that symbol.")
	}
	price := meta.Get("regularMarketPrice").Float()
	open := meta.Get("chartPreviousClose").Float()
	var change float64
	if open != 0 {
		change = (price - open) / open * 100
	}
	arrow := "📉"
	if change > 0 {
		arrow = "📈"
	}
	return h.reply(ctx, ev, fmt.Sprintf("**%s**\nPrice: $%.2f\nChange: %s %.2f%%", symbol, price, arrow, change))
}

func (h *Handlers) YouTube(ctx context.Context, ev *Event, args Args) error {
	search := "https://www.youtube.com/results?search_query=" + url.QueryEscape(args.Text)
	return h.reply(ctx, ev, fmt.Sprintf("🔍 YouTube search: [Click here](%s)", search))
}

func (h *Handlers) Translate(ctx context.Context, ev *Event, args Args) error {
	api := "https://api.mymemory.translated.net/get?q=" + url.QueryEscape(args.Text) +
		"&langpair=en|" + args.Lang
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("translation failed: %v", err)
	}
	translation := data.Get("responseData.translatedText").String()
	if translation == "" {
		return ExternalAPIf("translation failed")
	}
	return h.reply(ctx, ev, fmt.Sprintf("**Translation (%s):**\n%s", args.Lang, translation))
}

// TextToSpeech fetches spoken audio for the text and sends it as a
// voice note. The temp file is removed after the upload.
func (h *Handlers) TextToSpeech(ctx context.Context, ev *Event, args Args) error {
	api := "https://translate.google.com/translate_tts?ie=UTF-8&client=tw-ob&tl=en&q=" + url.QueryEscape(args.Text)
	audio, err := webapi.Get(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("tts failed: %v", err)
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("tts_%d.mp3", h.rt.now().UnixNano()))
	if err := os.WriteFile(path, audio, 0o600); err != nil {
		return err
	}
	defer os.Remove(path)
	return h.rt.Transport.SendVoice(ctx, ev.ChatID, path)
}

func (h *Handlers) Anime(ctx context.Context, ev *Event, args Args) error {
	api := "https://api.jikan.moe/v4/anime?q=" + url.QueryEscape(args.Text) + "&limit=1"
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), api)
	if err != nil {
		return ExternalAPIf("api error: %v", err)
	}
	a := data.Get("data.0")
	if !a.Exists() {
		return h.reply(ctx, ev, "❌ No results.")
	}
	aired := a.Get("aired.string").String()
	if aired == "" {
		aired = "N/A"
	}
	return h.reply(ctx, ev, fmt.Sprintf(
		"**%s** (%s)\n⭐ Score: %v | Episodes: %v\n📅 %s\n📖 %s\n🔗 [MyAnimeList](%s)",
		a.Get("title").String(), a.Get("type").String(),
		a.Get("score").Value(), a.Get("episodes").Value(),
		aired, truncate(a.Get("synopsis").String(), 500), a.Get("url").String()))
}

func (h *Handlers) Cat(ctx context.Context, ev *Event, _ Args) error {
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), "https://api.thecatapi.com/v1/images/search")
	if err != nil {
		return ExternalAPIf("could not fetch cat: %v", err)
	}
	pic := data.Get("0.url").String()
	if pic == "" {
		return ExternalAPIf("could not fetch cat")
	}
	return h.rt.Transport.SendFileURL(ctx, ev.ChatID, pic)
}

func (h *Handlers) Dog(ctx context.Context, ev *Event, _ Args) error {
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), "https://api.thedogapi.com/v1/images/search")
	if err != nil {
		return ExternalAPIf("could not fetch dog: %v", err)
	}
	pic := data.Get("0.url").String()
	if pic == "" {
		return ExternalAPIf("could not fetch dog")
	}
	return h.rt.Transport.SendFileURL(ctx, ev.ChatID, pic)
}

func (h *Handlers) Fact(ctx context.Context, ev *Event, _ Args) error {
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), "https://uselessfacts.jsph.pl/random.json?language=en")
	if err != nil {
		return ExternalAPIf("could not fetch fact: %v", err)
	}
	return h.reply(ctx, ev, "📌 **Did you know?**\n"+data.Get("text").String())
}

func (h *Handlers) Joke(ctx context.Context, ev *Event, _ Args) error {
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), "https://v2.jokeapi.dev/joke/Any?type=single")
	if err != nil {
		return ExternalAPIf("could not fetch joke: %v", err)
	}
	return h.reply(ctx, ev, "😂 "+data.Get("joke").String())
}

func (h *Handlers) Quote(ctx context.Context, ev *Event, _ Args) error {
	data, err := webapi.GetJSON(ctx, h.rt.httpClient(), "https://api.quotable.io/random")
	if err != nil {
		return ExternalAPIf("could not fetch quote: %v", err)
	}
	return h.reply(ctx, ev, fmt.Sprintf("💬 \"%s\"\n— **%s**",
		data.Get("content").String(), data.Get("author").String()))
}
