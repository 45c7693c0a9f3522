package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nayanapsychologist-spec/games/api/internal/clue"
	"github.com/nayanapsychologist-spec/games/api/internal/service"
	"github.com/nayanapsychologist-spec/games/api/internal/util"
)

func (r *Router) handleWord(cid int64, word string) {
	r.send(cid, "Got it, generating a clue for "+strings.ToUpper(word)+"…")

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Second)
	defer cancel()

	out, err := r.Svc.Generate(ctx, word)
	if err != nil {
		var fe *clue.FormatError
		if errors.As(err, &fe) {
			log.Printf("unreadable model reply for %q: %s", word, fe.Raw)
			r.send(cid, "The model replied with something I could not read. Try again.")
			return
		}
		r.send(cid, "Could not generate a clue: "+err.Error())
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔤 %s\n\n📖 %s\n\n✍️ %s", out.OriginalWord, out.Definition, out.SentenceClue)
	r.send(cid, b.String())
	r.sendIllustration(cid, out)
}

func (r *Router) sendIllustration(cid int64, out service.Result) {
	if out.ImageURL == "" {
		return
	}
	if !strings.HasPrefix(out.ImageURL, "data:") {
		// Placeholder or any other plain URL.
		_, _ = r.Bot.Send(tgbotapi.NewPhoto(cid, tgbotapi.FileURL(out.ImageURL)))
		return
	}
	img, _, err := util.DecodeBase64MaybeDataURL(out.ImageURL)
	if err != nil {
		log.Printf("bad illustration data URL for %q: %v", out.OriginalWord, err)
		return
	}
	photo := tgbotapi.NewPhoto(cid, tgbotapi.FileBytes{
		Name:  strings.ToLower(out.OriginalWord) + ".png",
		Bytes: img,
	})
	if _, err := r.Bot.Send(photo); err != nil {
		log.Printf("send photo: %v", err)
	}
}
