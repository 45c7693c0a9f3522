package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nayanapsychologist-spec/games/api/internal/service"
)

type Router struct {
	Bot *tgbotapi.BotAPI
	Svc *service.Service
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}

	word := strings.TrimSpace(upd.Message.Text)
	if word == "" || strings.ContainsAny(word, " \n\t") {
		r.send(cid, "Send me a single word and I will reply with its clue.")
		return
	}
	r.handleWord(cid, word)
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Send me a word — I will return a definition, an example sentence with the word hidden, and a picture.\nCommands: /health")
	case "health":
		r.send(cid, "✅ OK")
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) send(chatID int64, text string) {
	_, _ = r.Bot.Send(tgbotapi.NewMessage(chatID, text))
}
