package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jigsaw-gen/jigsaw/internal/memorable"
)

func (s *Server) handleMemorable(w http.ResponseWriter, r *http.Request) {
	count := 4
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			count = n
		}
	}
	sep := r.URL.Query().Get("sep")

	phrase, err := memorable.Generate(count, sep)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"phrase": phrase})
}
