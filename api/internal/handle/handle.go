package handle

import (
	"encoding/json"
	"net/http"

	"github.com/nayanapsychologist-spec/games/api/internal/service"
)

type Handle struct {
	svc *service.Service
}

func New(svc *service.Service) *Handle {
	return &Handle{svc: svc}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
