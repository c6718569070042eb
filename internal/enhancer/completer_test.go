package enhancer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAICompatible_Complete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer ds-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "deepseek-chat" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Fatalf("messages = %+v", req.Messages)
		}
		if req.Messages[0].Content != "sys" || req.Messages[1].Content != "usr" {
			t.Errorf("messages = %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"deepseek-chat",
			"choices":[{"index":0,"message":{"role":"assistant","content":"# Report"},"finish_reason":"stop"}]}`))
	}))
	defer ts.Close()

	c := NewOpenAICompatible(ts.URL+"/v1", "ds-key", "deepseek-chat")
	got, err := c.Complete(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "# Report" {
		t.Errorf("Complete() = %q", got)
	}
}

func TestOpenAICompatible_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`},
		{"no choices", http.StatusOK, `{"id":"c1","object":"chat.completion","choices":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c := NewOpenAICompatible(ts.URL, "k", "deepseek-chat")
			if _, err := c.Complete(context.Background(), "s", "u"); err == nil {
				t.Error("Complete() expected error")
			}
		})
	}
}

func TestGemini_Complete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash") {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"# Con"},{"text":"cepts"}]}}]}`))
	}))
	defer ts.Close()

	c, err := NewGemini(context.Background(), "g-key", "gemini-2.5-flash", ts.URL)
	if err != nil {
		t.Fatalf("NewGemini() error = %v", err)
	}
	got, err := c.Complete(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "# Concepts" {
		t.Errorf("Complete() = %q, want %q", got, "# Concepts")
	}
}
