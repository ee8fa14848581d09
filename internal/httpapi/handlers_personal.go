package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jigsaw-gen/jigsaw/internal/personal"
	"github.com/jigsaw-gen/jigsaw/internal/profile"
	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

// defaultAPIResultLimit bounds the candidate array returned by
// /api/personal/generate — the endpoint materializes a JSON array
// (spec.md §6), unlike the streaming endpoint, so it must cap how much
// it holds in memory and how much work it does.
const defaultAPIResultLimit = 5000

// cancelOnLineLimit wraps a writer and cancels cancel once at least
// limit newline-terminated lines have been written, so a bounded HTTP
// response doesn't pay for unbounded generation underneath it.
type cancelOnLineLimit struct {
	w      *bytes.Buffer
	limit  int
	cancel context.CancelFunc
	lines  int
}

func (c *cancelOnLineLimit) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	for _, b := range p {
		if b == '\n' {
			c.lines++
		}
	}
	if c.lines >= c.limit {
		c.cancel()
	}
	return n, err
}

func (s *Server) handlePersonalGenerate(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "malformed profile: "+err.Error(), http.StatusBadRequest)
		return
	}

	limit := defaultAPIResultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var buf bytes.Buffer
	out := &cancelOnLineLimit{w: &buf, limit: limit, cancel: cancel}
	snk := sink.New(out, 16)
	snk.Run()

	err := personal.Generate(ctx, &p, personal.Options{}, snk)
	snk.Close()
	waitErr := snk.Wait()
	if err != nil && err != context.Canceled {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if waitErr != nil && waitErr != context.Canceled {
		http.Error(w, waitErr.Error(), http.StatusInternalServerError)
		return
	}

	candidates := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(candidates)
}

func (s *Server) handleCheckPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Profile  profile.Profile `json:"profile"`
		Password string          `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := personal.Check(&req.Profile, req.Password, personal.Options{})

	resp := struct {
		Found   bool   `json:"found"`
		Pattern string `json:"pattern,omitempty"`
	}{Found: result.Found, Pattern: result.Pattern}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
