package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer() *Server {
	s := &Server{RateLimitRPS: 1000}
	s.limiter = newAddrLimiter(s.RateLimitRPS, int(s.RateLimitRPS))
	return s
}

func TestHandleMemorable(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/memorable/generate?count=3&sep=-", nil)
	rec := httptest.NewRecorder()

	s.handleMemorable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(strings.Split(body["phrase"], "-")) != 3 {
		t.Fatalf("expected 3 words, got %q", body["phrase"])
	}
}

func TestHandlePersonalGenerate(t *testing.T) {
	s := newTestServer()
	body := bytes.NewBufferString(`{"first_names":["john"],"dates":["2007"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/personal/generate?limit=50", body)
	rec := httptest.NewRecorder()

	s.handlePersonalGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var candidates []string
	if err := json.Unmarshal(rec.Body.Bytes(), &candidates); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(candidates) == 0 {
		t.Fatalf("expected at least one candidate")
	}
}

func TestHandlePersonalGenerateMalformedBody(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/personal/generate", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()

	s.handlePersonalGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCheckPassword(t *testing.T) {
	s := newTestServer()
	body := bytes.NewBufferString(`{"profile":{"first_names":["john"],"dates":["2007"]},"password":"john2007"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check-password", body)
	rec := httptest.NewRecorder()

	s.handleCheckPassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var result struct {
		Found   bool   `json:"found"`
		Pattern string `json:"pattern"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Found {
		t.Fatalf("expected found=true")
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRateLimiterBlocksBurst(t *testing.T) {
	lim := newAddrLimiter(0.001, 1)
	if !lim.allow("1.2.3.4") {
		t.Fatalf("expected first request to be allowed")
	}
	if lim.allow("1.2.3.4") {
		t.Fatalf("expected second immediate request to be rate limited")
	}
}
