package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompleteSendsRequestAndReturnsContent(t *testing.T) {
	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Success: true, Content: "98940 - Spinal adjustment - $45.00", Model: "test-model"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", zerolog.Nop())
	content, err := client.Complete(context.Background(), Request{
		Type:   "suggest-codes",
		Prompt: "lower back pain, two regions",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != "98940 - Spinal adjustment - $45.00" {
		t.Errorf("content = %q", content)
	}
	if got.Type != "suggest-codes" {
		t.Errorf("request type = %q", got.Type)
	}
}

func TestCompleteProxyFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(Response{Success: false, Error: "provider unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", zerolog.Nop())
	if _, err := client.Complete(context.Background(), Request{Type: "suggest-codes"}); err == nil {
		t.Error("expected error when success=false")
	}
}

func TestCompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", zerolog.Nop())
	if _, err := client.Complete(context.Background(), Request{Type: "suggest-codes"}); err == nil {
		t.Error("expected error on 502")
	}
}

func TestParseCodeSuggestions(t *testing.T) {
	content := `Here are some suggested codes:

98940 - Chiropractic manipulative treatment, 1-2 regions - $45.00
97110: Therapeutic exercises: 35
- 97140 - Manual therapy techniques - $50.5

Let me know if you need anything else.`

	got := ParseCodeSuggestions(content)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3: %+v", len(got), got)
	}

	want := []CodeSuggestion{
		{Code: "98940", Description: "Chiropractic manipulative treatment, 1-2 regions", Fee: 45},
		{Code: "97110", Description: "Therapeutic exercises", Fee: 35},
		{Code: "97140", Description: "Manual therapy techniques", Fee: 50.5},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseCodeSuggestionsNoMatches(t *testing.T) {
	if got := ParseCodeSuggestions("I cannot help with that."); len(got) != 0 {
		t.Errorf("got %+v, want none", got)
	}
}
