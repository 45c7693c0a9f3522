package main

import (
	"log"
	"net/http"

	"github.com/nayanapsychologist-spec/games/api/internal/config"
	"github.com/nayanapsychologist-spec/games/api/internal/handle"
	"github.com/nayanapsychologist-spec/games/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	svc, err := service.FromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	h := handle.New(svc)
	mux.HandleFunc("/generate", h.Generate)

	addr := ":" + cfg.Port
	log.Printf("clue-proxy listening on %s (engine=%s model=%s image=%s)",
		addr, svc.Engine.Name(), svc.Engine.GetModel(), cfg.ImageProvider)
	log.Fatal(http.ListenAndServe(addr, mux))
}
