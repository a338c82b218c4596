package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Autocomplete handles GET /_autocomplete: a JSON array of all known
// artist names, consumed by the search form's suggestion list.
func (h *SearchHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.cat.ArtistNames()); err != nil {
		h.logger.Error("failed_to_encode_autocomplete", zap.Error(err))
	}
}
