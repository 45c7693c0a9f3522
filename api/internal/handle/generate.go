package handle

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nayanapsychologist-spec/games/api/internal/clue"
)

// Generate serves GET /generate?word=<token>.
func (h *Handle) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}

	word := r.URL.Query().Get("word")
	if strings.TrimSpace(word) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing word parameter"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 70*time.Second)
	defer cancel()

	out, err := h.svc.Generate(ctx, word)
	if err != nil {
		var fe *clue.FormatError
		if errors.As(err, &fe) {
			details := fe.Raw
			if details == "" {
				details = fe.Error()
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "Unexpected reply from the text model",
				Details: details,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to generate clue",
			Details: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, out)
}
